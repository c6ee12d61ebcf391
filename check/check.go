// Package check validates definitions text against the strict grammar and
// reports lint diagnostics.
//
// The lenient parser in package def accepts any input. Check reports the
// places where that leniency hides a likely mistake: syntax the grammar
// rejects, empty parameter slots, duplicate names and names broken by
// blanks.
package check

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Severity ranks a [Diagnostic].
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Diagnostic codes.
const (
	CodeSyntax         = "E001"
	CodeEmptySlot      = "W001"
	CodeDuplicateDef   = "W002"
	CodeDuplicateParam = "W003"
	CodeEmptyType      = "W004"
	CodeSplitName      = "W005"
	CodeUntyped        = "I001"
)

// Diagnostic is one finding at a source position.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Pos      lexer.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s[%s]: %s", d.Pos, d.Severity, d.Code, d.Message)
}

// Option configures [Check].
type Option func(options) options

type options struct {
	untyped bool
}

// WithUntypedInfo reports every parameter declared without a type.
func WithUntypedInfo(enable bool) Option {
	return func(o options) options {
		o.untyped = enable

		return o
	}
}

// Check validates src, naming it filename in positions. Lint rules run only
// when the source is syntactically valid.
func Check(filename, src string, opts ...Option) Report {
	var o options
	for _, opt := range opts {
		o = opt(o)
	}

	r := Report{Filename: filename, Source: src}

	file, err := Parse(filename, src)
	if err != nil {
		r.Diagnostics = append(r.Diagnostics, syntaxDiagnostic(filename, err))

		return r
	}

	r.Diagnostics = lint(file, o)

	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		if a.Pos.Offset != b.Pos.Offset {
			return a.Pos.Offset - b.Pos.Offset
		}

		return a.Severity.rank() - b.Severity.rank()
	})

	return r
}

func syntaxDiagnostic(filename string, err error) Diagnostic {
	d := Diagnostic{Severity: SeverityError, Code: CodeSyntax, Message: err.Error()}

	var pe participle.Error
	if errors.As(err, &pe) {
		d.Message = pe.Message()
		d.Pos = pe.Position()
	}

	if d.Pos.Filename == "" {
		d.Pos.Filename = filename
	}

	return d
}

func lint(file *File, o options) []Diagnostic {
	var out []Diagnostic

	report := func(sev Severity, code string, pos lexer.Position, format string, args ...any) {
		out = append(out, Diagnostic{
			Severity: sev,
			Code:     code,
			Message:  fmt.Sprintf(format, args...),
			Pos:      pos,
		})
	}

	seen := make(map[string]lexer.Position, len(file.Entries))

	for _, e := range file.Entries {
		name := e.Name()

		if len(e.Words) > 1 {
			report(SeverityWarning, CodeSplitName, e.Pos,
				"blanks inside definition name; it reads as %q", name)
		}

		if prev, ok := seen[name]; ok {
			report(SeverityWarning, CodeDuplicateDef, e.Pos,
				"definition %q already declared at %d:%d", name, prev.Line, prev.Column)
		} else {
			seen[name] = e.Pos
		}

		if e.Params != nil {
			lintParams(e, o, report)
		}
	}

	return out
}

type reportFunc func(sev Severity, code string, pos lexer.Position, format string, args ...any)

func lintParams(e *Entry, o options, report reportFunc) {
	list := e.Params

	type slot struct {
		pos   lexer.Position
		param *Param
	}

	slots := make([]slot, 0, len(list.Rest)+1)
	slots = append(slots, slot{list.Pos, list.First})

	for _, s := range list.Rest {
		slots = append(slots, slot{s.Pos, s.Param})
	}

	seen := make(map[string]bool, len(slots))

	for i, s := range slots {
		p := s.param
		if p == nil {
			// "f()" has one empty slot and "f(a,)" a trailing one; both are fine.
			if len(slots) > 1 && i < len(slots)-1 {
				report(SeverityWarning, CodeEmptySlot, s.pos,
					"empty parameter in %q is ignored", e.Name())
			}

			continue
		}

		name := p.Name()

		if len(p.Words) > 1 {
			report(SeverityWarning, CodeSplitName, p.Pos,
				"blanks inside parameter name; it reads as %q", name)
		}

		if seen[name] {
			report(SeverityWarning, CodeDuplicateParam, p.Pos,
				"parameter %q repeated in %q", name, e.Name())
		}

		seen[name] = true

		switch {
		case p.Colon != "" && p.Type == nil:
			report(SeverityWarning, CodeEmptyType, p.Pos,
				"parameter %q has an empty type", name)
		case p.Colon == "" && o.untyped:
			report(SeverityInfo, CodeUntyped, p.Pos,
				"parameter %q has no type", name)
		}
	}
}
