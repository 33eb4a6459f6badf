package widget

// Focus tracks the single focused widget of a tree. Transitions are
// idempotent: requesting focus for the current owner or releasing for a
// non-owner does nothing and fires no handlers.
type Focus struct {
	owner *Widget
}

// NewFocus creates an independent focus owner for a separate tree.
func NewFocus() *Focus {
	return &Focus{}
}

var sharedFocus = NewFocus()

// SharedFocus returns the process-wide focus owner widgets bind to by
// default.
func SharedFocus() *Focus {
	return sharedFocus
}

// Current returns the focused widget, or nil.
func (f *Focus) Current() *Widget {
	return f.owner
}

// Request makes w the focused widget, notifying the previous owner of the
// loss first.
func (f *Focus) Request(w *Widget) {
	if f.owner == w {
		return
	}
	if f.owner != nil {
		prev := f.owner
		f.owner = nil
		prev.notifyFocusLost()
	}
	f.owner = w
	if w != nil {
		w.notifyFocusGained()
	}
}

// Release drops the focus if w owns it.
func (f *Focus) Release(w *Widget) {
	if f.owner != w || w == nil {
		return
	}
	f.owner = nil
	w.notifyFocusLost()
}

// Clear drops the focus unconditionally.
func (f *Focus) Clear() {
	if f.owner == nil {
		return
	}
	prev := f.owner
	f.owner = nil
	prev.notifyFocusLost()
}
