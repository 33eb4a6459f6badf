package hook

import "testing"

func TestEmitInvokesAllCallbacks(t *testing.T) {
	var h Hook
	calls := 0
	h.Connect(func() { calls++ })
	h.Connect(func() { calls++ })

	h.Emit()

	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestDisconnectStopsDelivery(t *testing.T) {
	var h Hook
	calls := 0
	off := h.Connect(func() { calls++ })
	h.Connect(func() { calls++ })

	off()
	h.Emit()

	if calls != 1 {
		t.Errorf("expected 1 call after disconnect, got %d", calls)
	}
	if h.Len() != 1 {
		t.Errorf("expected 1 remaining callback, got %d", h.Len())
	}
}

func TestEmitOnEmptyHook(t *testing.T) {
	var h Hook
	h.Emit() // must not panic
}

func TestDisconnectIsIdempotent(t *testing.T) {
	var h Hook
	off := h.Connect(func() {})
	off()
	off() // second call must not panic or remove another callback
	if h.Len() != 0 {
		t.Errorf("expected empty hook, got %d callbacks", h.Len())
	}
}
