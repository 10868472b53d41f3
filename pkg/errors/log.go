package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs violations to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination; nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleViolation logs a ViolationError.
func (h *LogHandler) HandleViolation(err *ViolationError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[edwin violation] %s [%s]", err.Op, err.Kind)
		if err.Node != 0 {
			fmt.Fprintf(w, " node=%d", err.Node)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[edwin violation] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprint(w, "[edwin panic] ")
	if err.Op != "" {
		fmt.Fprint(w, err.Op)
		if err.Node != 0 {
			fmt.Fprintf(w, " node=%d", err.Node)
		}
		fmt.Fprint(w, ": ")
	}
	fmt.Fprintf(w, "%v\n", err.Value)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
