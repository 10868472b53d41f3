package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type handlerBox struct{ h ErrorHandler }

var current atomic.Value // handlerBox

func init() {
	current.Store(handlerBox{&LogHandler{}})
}

// Handler returns the handler that receives reported violations and
// recovered panics. It is a quiet LogHandler until SetHandler is called.
func Handler() ErrorHandler {
	return current.Load().(handlerBox).h
}

// SetHandler installs h and returns the previous handler, so tests can write
//
//	defer errors.SetHandler(errors.SetHandler(h))
//
// A nil h restores a quiet LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(handlerBox{h}).(handlerBox).h
}

// Report stamps err with the current time if it has none and passes it to
// the installed handler.
func Report(err *ViolationError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleViolation(err)
}

// ReportPanic passes err to the installed handler.
func ReportPanic(err *PanicError) {
	if err != nil {
		Handler().HandlePanic(err)
	}
}

// Recover reports a panic in progress as a PanicError for op and lets the
// caller continue. It must be deferred directly:
//
//	defer errors.Recover("ui.Tick")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanic(op, 0, r))
	}
}

// RecoverNode is Recover for callbacks owned by a node.
func RecoverNode(op string, node int) {
	if r := recover(); r != nil {
		ReportPanic(newPanic(op, node, r))
	}
}

func newPanic(op string, node int, v any) *PanicError {
	return &PanicError{Op: op, Node: node, Value: v, StackTrace: CaptureStack(), Timestamp: time.Now()}
}

// CaptureStack formats the stack of the calling goroutine, one
// "function file:line" line per frame. Runtime frames and the recovery
// helpers of this package are left out.
func CaptureStack() string {
	var pcs [48]uintptr
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs[:])])
	var sb strings.Builder
	for {
		f, more := frames.Next()
		if !internalFrame(f.Function) {
			fmt.Fprintf(&sb, "%s %s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

const pkgPrefix = "github.com/go-edwin/edwin/pkg/errors."

func internalFrame(fn string) bool {
	if strings.HasPrefix(fn, "runtime.") {
		return true
	}
	switch strings.TrimPrefix(fn, pkgPrefix) {
	case "CaptureStack", "Recover", "RecoverNode", "newPanic":
		return strings.HasPrefix(fn, pkgPrefix)
	}
	return false
}
