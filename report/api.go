package report

import (
	"fmt"
	"os"
)

// -----------------------------------------------------------------------------
// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions will simply fail silently if below their
// appropriate log level.

// ReportCompileError reports a compilation error: ie. an erroneous input tree.
// The absPath is the absolute path to the erroneous tree file. The reprPath is
// the path that should be displayed to the user.  The span may be nil in which
// case no position information will be printed.
func ReportCompileError(absPath, reprPath string, span *TextSpan, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		rep.endPhase(false)
		rep.displayCompileMessage("error", absPath, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportCompileWarning reports a compilation warning.  The arguments are of the
// same form as those to ReportCompileError.
func ReportCompileWarning(absPath, reprPath string, span *TextSpan, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel > LogLevelError {
		rep.displayCompileMessage("warning", absPath, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		rep.endPhase(false)
		rep.displayStdError(reprPath, err)
	}
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: a malformed
// config file, an unreadable tree file, etc.
func ReportFatal(message string, args ...interface{}) {
	rep.m.Lock()

	if rep.logLevel > LogLevelSilent {
		rep.endPhase(false)
		rep.displayFatal(fmt.Sprintf(message, args...))
	}

	rep.m.Unlock()
	os.Exit(1)
}

// ReportICE reports an internal compiler error.  These are errors that
// specifically result for a bug or unexpected condition occurring with the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()

	rep.endPhase(false)
	rep.displayICE(fmt.Sprintf(message, args...))

	rep.m.Unlock()
	os.Exit(-1)
}

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount > 0
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that will only run if the
// log level is to verbose.  These provide additional information about the
// compilation process to the user so as to make the compiler more friendly.

// ReportCompileHeader reports the pre-compilation header: the compiler version
// and the selected profile.
func ReportCompileHeader(profile string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		rep.displayCompileHeader(profile)
	}
}

// ReportBeginPhase reports the beginning of a compilation phase.  Any phase
// still running is ended successfully first.
func ReportBeginPhase(phase string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		rep.endPhase(true)
		rep.beginPhase(phase)
	}
}

// ReportEndPhase reports the end of the current compilation phase.  Its
// success is determined by whether any errors were reported during it.
func ReportEndPhase() {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.endPhase(rep.errorCount == 0)
}

// ReportCompilationFinished reports the concluding message for compilation.
func ReportCompilationFinished() {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.endPhase(rep.errorCount == 0)

	if rep.logLevel == LogLevelVerbose {
		rep.displayCompilationFinished()
	}
}
