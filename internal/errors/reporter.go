package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorReporter formats diagnostics of one file for a terminal.
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders the diagnostic in the caret layout of
// Diagnostic.String, with the caret and message highlighted. With colour
// disabled the output is identical to Diagnostic.String.
func (er *ErrorReporter) FormatError(d Diagnostic) string {
	caret := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	return fmt.Sprintf("%s\n%s%s%s\n",
		d.LineText,
		strings.Repeat(" ", d.Column-1),
		caret("^ "+d.Message),
		dim(fmt.Sprintf(", in line %d", d.Line)))
}

// FormatPretty renders the diagnostic with a location header and one line
// of context on each side:
//
//	error[E0100]: Illegal character
//	    --> main.ember:1:16
//	    │
//	  1 │ let a = 1 == 1 ? 23 : 55;
//	    │                ^
func (er *ErrorReporter) FormatPretty(d Diagnostic) string {
	var result strings.Builder

	levelColor := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor("error["+d.Code+"]"), bold(d.Message)))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor("error"), bold(d.Message)))
	}

	lineNumberWidth := er.getLineNumberWidth(d.Line + 1)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, d.Line, d.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if d.Line > 1 && d.Line-2 < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, d.Line-1)), dim("│"), er.lines[d.Line-2]))
	}

	result.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", lineNumberWidth, d.Line)), dim("│"), d.LineText))
	result.WriteString(fmt.Sprintf("%s %s %s%s\n",
		indent, dim("│"), strings.Repeat(" ", d.Column-1), levelColor("^")))

	if d.Line < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, d.Line+1)), dim("│"), er.lines[d.Line]))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatAll renders every diagnostic of the set, pretty or caret style.
func (er *ErrorReporter) FormatAll(diags *Diagnostics, pretty bool) string {
	var b strings.Builder
	for _, d := range diags.entries {
		if pretty {
			b.WriteString(er.FormatPretty(d))
		} else {
			b.WriteString(er.FormatError(d))
		}
	}
	return b.String()
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
