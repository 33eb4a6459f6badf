package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including error kinds.
	Verbose bool
}

// HandleError logs a LucidError to stderr.
func (h *LogHandler) HandleError(err *LucidError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[lucid error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[lucid error] %s: %v\n", err.Op, err.Err)
	}
}
