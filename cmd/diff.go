package cmd

import (
	"fmt"
	"io"
	"strings"

	"vslc/report"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffLine is one line of a line diff between two dumps.  Op is '+' for an
// inserted line, '-' for a deleted line and ' ' for an unchanged line.
type diffLine struct {
	Op   byte
	Text string
}

// diffDumps computes the line diff turning the dump before into the dump
// after.
func diffDumps(before, after string) []diffLine {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var lines []diffLine
	for _, diff := range diffs {
		var op byte
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			op = '+'
		case diffmatchpatch.DiffDelete:
			op = '-'
		default:
			op = ' '
		}

		for _, text := range strings.SplitAfter(diff.Text, "\n") {
			if text != "" {
				lines = append(lines, diffLine{Op: op, Text: strings.TrimSuffix(text, "\n")})
			}
		}
	}

	return lines
}

// displayDiff prints the line diff of two dumps with insertions and deletions
// highlighted.
func displayDiff(w io.Writer, before, after string) {
	for _, line := range diffDumps(before, after) {
		text := string(line.Op) + " " + line.Text
		switch line.Op {
		case '+':
			text = report.SuccessColorFG.Sprint(text)
		case '-':
			text = report.ErrorColorFG.Sprint(text)
		}

		fmt.Fprintln(w, text)
	}
}
