package report

import (
	"io"
	"os"
	"sync"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the set
// log level and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different error method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// out is where all messages are written.
	out io.Writer

	// interactive indicates that out is the terminal so phase spinners may be
	// displayed.
	interactive bool

	// The number of errors and warnings reported so far.
	errorCount, warningCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// LogLevelFromName converts a log level name as it is given on the command
// line or in the config file into its log level.  The boolean is false if the
// name is not recognized.
func LogLevelFromName(name string) (int, bool) {
	switch name {
	case "silent":
		return LogLevelSilent, true
	case "error":
		return LogLevelError, true
	case "warn", "warning":
		return LogLevelWarn, true
	case "verbose", "":
		return LogLevelVerbose, true
	}

	return LogLevelVerbose, false
}

// rep is the global reporter instance.
var rep = newReporter(os.Stdout, LogLevelVerbose)

func newReporter(w io.Writer, logLevel int) *Reporter {
	return &Reporter{
		m:           &sync.Mutex{},
		logLevel:    logLevel,
		out:         w,
		interactive: w == io.Writer(os.Stdout),
	}
}

// InitReporter initializes the global reporter to the given log level writing
// to standard out.
func InitReporter(logLevel int) {
	rep = newReporter(os.Stdout, logLevel)
}

// InitReporterTo initializes the global reporter to write to w instead of
// standard out.  Phase spinners are never shown on such a reporter.
func InitReporterTo(w io.Writer, logLevel int) {
	rep = newReporter(w, logLevel)
}
