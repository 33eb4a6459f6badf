package platform

// Clipboard is the system clipboard collaborator. Implementations are
// best-effort: callers ignore failures, treating an errored read as empty
// and an errored write as a no-op.
type Clipboard interface {
	GetText() (string, error)
	SetText(text string) error
}

// MemoryClipboard is a process-local Clipboard for tests and headless use.
type MemoryClipboard struct {
	text string
}

// GetText returns the stored text. It never fails.
func (c *MemoryClipboard) GetText() (string, error) {
	return c.text, nil
}

// SetText stores the text. It never fails.
func (c *MemoryClipboard) SetText(text string) error {
	c.text = text
	return nil
}
