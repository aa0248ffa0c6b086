package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"vslc/common"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// DisplayInfoMessage prints an informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	fmt.Fprintln(rep.out, InfoStyleBG.Sprint(tag), InfoColorFG.Sprint(msg))
}

// DisplayErrorMessage prints a standard Go error to the user under the given
// tag.  It does not count as a reported error.
func DisplayErrorMessage(tag string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	fmt.Fprintln(rep.out, ErrorStyleBG.Sprint(tag), ErrorColorFG.Sprint(err.Error()))
}

// -----------------------------------------------------------------------------

// displayICE displays an internal compiler error message.
func (r *Reporter) displayICE(message string) {
	fmt.Fprintf(r.out, "%s %s\n", ErrorStyleBG.Sprint("internal compiler error:"), message)
	fmt.Fprint(r.out, "This error was not supposed to happen: this is a bug in vslc.\n\n")
}

// displayFatal displays a fatal error message.
func (r *Reporter) displayFatal(message string) {
	fmt.Fprintf(r.out, "%s %s\n\n", ErrorStyleBG.Sprint("fatal error:"), message)
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func (r *Reporter) displayCompileMessage(label, absPath, reprPath string, span *TextSpan, message string) {
	var styledLabel string
	if label == "error" {
		styledLabel = ErrorColorFG.Sprint(label)
	} else {
		styledLabel = WarnColorFG.Sprint(label)
	}

	if span == nil {
		fmt.Fprintf(r.out, "%s: %s: %s\n\n", reprPath, styledLabel, message)
	} else {
		fmt.Fprintf(r.out, "%s:%d:%d: %s: %s\n\n", reprPath, span.StartLine+1, span.StartCol+1, styledLabel, message)
		r.displaySourceText(absPath, span)
	}
}

// displayStdError displays a standard Go error.
func (r *Reporter) displayStdError(reprPath string, err error) {
	fmt.Fprintf(r.out, "%s: %s: %s\n\n", reprPath, ErrorColorFG.Sprint("error"), err)
}

// displaySourceText displays a segment of source text defined by a text span.
// Nothing is displayed if the file cannot be read.
func (r *Reporter) displaySourceText(absPath string, span *TextSpan) {
	file, err := os.Open(absPath)
	if err != nil {
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Generate the format string for line numbers.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Fprint(r.out, InfoColorFG.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Fprintln(r.out, line[minIndent:])
		fmt.Fprint(r.out, strings.Repeat(" ", maxLineNumLen), " | ")

		// Underlining begins at the start column on the first line and at the
		// trimmed indentation on every other line.  It stops at the end column
		// on the last line and at the end of the line otherwise.
		start, end := minIndent, len(line)
		if i == 0 {
			start = clamp(span.StartCol, minIndent, len(line))
		}
		if i == len(lines)-1 {
			end = clamp(span.EndCol, start, len(line))
		}

		fmt.Fprint(r.out, strings.Repeat(" ", start-minIndent))
		fmt.Fprintln(r.out, ErrorColorFG.Sprint(strings.Repeat("^", end-start)))
	}

	fmt.Fprintln(r.out)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}

	return v
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays all the compiler information before starting
// compilation.
func (r *Reporter) displayCompileHeader(profile string) {
	fmt.Fprint(r.out, "vslc ", InfoColorFG.Sprint("v"+common.VslcVersion))
	if profile != "" {
		fmt.Fprint(r.out, " -- profile: ", InfoColorFG.Sprint(profile))
	}
	fmt.Fprintln(r.out)
}

// phaseState stores the state of the currently running phase.
type phaseState struct {
	name    string
	start   time.Time
	spinner *pterm.SpinnerPrinter
}

const maxPhaseLength = len("Simplifying")

// phase is the phase currently being displayed, if any.  It is only accessed
// with the reporter's mutex held.
var phase *phaseState

// beginPhase displays the beginning of a compilation phase.
func (r *Reporter) beginPhase(name string) {
	phase = &phaseState{name: name, start: time.Now()}

	if !r.interactive {
		return
	}

	phaseText := name + "..." + strings.Repeat(" ", padding(name))
	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phase.spinner, _ = spinner.Start(phaseText)
}

// endPhase displays the end of the current compilation phase if there is one.
func (r *Reporter) endPhase(success bool) {
	if phase == nil {
		return
	}

	elapsed := fmt.Sprintf("(%.3fs)", time.Since(phase.start).Seconds())
	label := phase.name + strings.Repeat(" ", padding(phase.name))

	switch {
	case phase.spinner != nil && success:
		phase.spinner.Success(label, elapsed)
	case phase.spinner != nil:
		phase.spinner.Fail(label)
	case r.logLevel == LogLevelVerbose && success:
		fmt.Fprintln(r.out, SuccessStyleBG.Sprint("Done"), label, elapsed)
	case r.logLevel == LogLevelVerbose:
		fmt.Fprintln(r.out, ErrorStyleBG.Sprint("Fail"), label)
	}

	phase = nil
}

func padding(name string) int {
	if len(name) > maxPhaseLength {
		return 2
	}

	return maxPhaseLength - len(name) + 2
}

// displayCompilationFinished displays a compilation finished message.
func (r *Reporter) displayCompilationFinished() {
	fmt.Fprintln(r.out)

	if r.errorCount == 0 {
		fmt.Fprint(r.out, SuccessColorFG.Sprint("All done! "))
	} else {
		fmt.Fprint(r.out, ErrorColorFG.Sprint("Oh no! "))
	}

	fmt.Fprint(r.out, "(")

	switch r.errorCount {
	case 0:
		fmt.Fprint(r.out, SuccessColorFG.Sprint(0), " errors, ")
	case 1:
		fmt.Fprint(r.out, ErrorColorFG.Sprint(1), " error, ")
	default:
		fmt.Fprint(r.out, ErrorColorFG.Sprint(r.errorCount), " errors, ")
	}

	switch r.warningCount {
	case 0:
		fmt.Fprint(r.out, SuccessColorFG.Sprint(0), " warnings)\n")
	case 1:
		fmt.Fprint(r.out, WarnColorFG.Sprint(1), " warning)\n")
	default:
		fmt.Fprint(r.out, WarnColorFG.Sprint(r.warningCount), " warnings)\n")
	}
}
