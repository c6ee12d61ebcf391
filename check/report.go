package check

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Report is the outcome of [Check] for one source.
type Report struct {
	Filename    string
	Source      string
	Diagnostics []Diagnostic
}

// HasErrors reports whether any diagnostic has [SeverityError].
func (r Report) HasErrors() bool { return r.Count(SeverityError) > 0 }

// Count returns the number of diagnostics with severity sev.
func (r Report) Count(sev Severity) int {
	n := 0

	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			n++
		}
	}

	return n
}

// Format writes every diagnostic with the offending source line and a caret
// under the reported column, followed by a summary line. Colors follow
// [color.NoColor].
func (r Report) Format(w io.Writer) error {
	lines := strings.Split(r.Source, "\n")

	var b strings.Builder

	for _, d := range r.Diagnostics {
		r.formatOne(&b, lines, d)
	}

	if len(r.Diagnostics) > 0 {
		fmt.Fprintf(&b, "%s: %d error(s), %d warning(s), %d info\n",
			r.name(),
			r.Count(SeverityError),
			r.Count(SeverityWarning),
			r.Count(SeverityInfo))
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func (r Report) name() string {
	if r.Filename == "" {
		return "<input>"
	}

	return r.Filename
}

func severityColor(sev Severity) func(a ...any) string {
	switch sev {
	case SeverityError:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case SeverityWarning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgCyan, color.Bold).SprintFunc()
	}
}

func (r Report) formatOne(b *strings.Builder, lines []string, d Diagnostic) {
	sev := severityColor(d.Severity)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// error[E001]: message
	fmt.Fprintf(b, "%s%s %s\n", sev(string(d.Severity)), sev("["+d.Code+"]:"), bold(d.Message))

	width := len(strconv.Itoa(max(d.Pos.Line, 1)))
	gutter := strings.Repeat(" ", width)

	fmt.Fprintf(b, "%s %s %s:%d:%d\n", gutter, dim("-->"), r.name(), d.Pos.Line, d.Pos.Column)

	if d.Pos.Line < 1 || d.Pos.Line > len(lines) {
		return
	}

	line := strings.TrimSuffix(lines[d.Pos.Line-1], "\r")

	fmt.Fprintf(b, "%s %s\n", gutter, dim("|"))
	fmt.Fprintf(b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, d.Pos.Line)), dim("|"), line)
	fmt.Fprintf(b, "%s %s %s%s\n", gutter, dim("|"),
		strings.Repeat(" ", caretColumn(r.Source, d.Pos.Offset)), sev("^"))
}

// caretColumn counts the runes between the start of the line holding offset
// and offset itself.
func caretColumn(src string, offset int) int {
	if offset < 0 || offset > len(src) {
		return 0
	}

	start := strings.LastIndexByte(src[:offset], '\n') + 1

	return utf8.RuneCountInString(src[start:offset])
}
