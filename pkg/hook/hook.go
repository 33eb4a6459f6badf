// Package hook provides the callback registry widgets expose for their
// actions, similar to a signal/slot system.
package hook

// Hook stores and emits callbacks for a single widget action.
//
// Callbacks are held in a set: emission order is deliberately unspecified
// and callbacks must not depend on it. Connect returns an unsubscribe
// function, which is the only way to disconnect.
//
// Hook is not safe for concurrent use; the toolkit is single-threaded and
// hooks are emitted synchronously during the update pass.
type Hook struct {
	callbacks map[int]func()
	nextID    int
}

// Connect attaches a callback and returns a function that disconnects it.
func (h *Hook) Connect(fn func()) func() {
	if h.callbacks == nil {
		h.callbacks = make(map[int]func())
	}
	id := h.nextID
	h.nextID++
	h.callbacks[id] = fn

	return func() {
		delete(h.callbacks, id)
	}
}

// Emit invokes every connected callback in unspecified order.
func (h *Hook) Emit() {
	for _, fn := range h.callbacks {
		fn()
	}
}

// Len returns the number of connected callbacks.
func (h *Hook) Len() int {
	return len(h.callbacks)
}
