package report

import (
	"errors"
	"fmt"
)

// LocalCompileError is a compilation error that occurs in a context in which
// the file is known by the error handler and thus doesn't need to be passed
// along with the error.
type LocalCompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.  This may be nil.
	Span *TextSpan
}

func (lce *LocalCompileError) Error() string {
	if lce.Span == nil {
		return lce.Message
	}

	return fmt.Sprintf("%d:%d: %s", lce.Span.StartLine+1, lce.Span.StartCol+1, lce.Message)
}

// Raise creates a new local compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}

// ReportError reports an error returned by a stage of compilation.  Local
// compile errors, including any joined inside err, are reported with their
// spans; any other error is reported as a standard error.
func ReportError(absPath, reprPath string, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			ReportError(absPath, reprPath, e)
		}

		return
	}

	var lce *LocalCompileError
	if errors.As(err, &lce) {
		ReportCompileError(absPath, reprPath, lce.Span, "%s", lce.Message)
	} else {
		ReportStdError(reprPath, err)
	}
}

// CatchErrors catches any errors thrown by a `panic` during a stage of
// compilation. In effect, this handler determines when any errors
// "unrecoverable" within a given subsection of the compiler should stop
// bubbling.
// NB: This function must ALWAYS be deferred.
func CatchErrors(absPath, reprPath string) {
	if x := recover(); x != nil {
		if err, ok := x.(error); ok {
			ReportError(absPath, reprPath, err)
		} else {
			ReportICE("%v", x)
		}
	}
}
