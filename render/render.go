// Package render writes definitions in the supported output encodings.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/evdef/def"
)

// ErrInvalidFormat is returned for an unknown format name.
var ErrInvalidFormat = def.NewError("invalid format")

// Format selects an output encoding.
type Format int

const (
	FormatNative Format = iota
	FormatJSON
	FormatYAML
	FormatText
)

var formatNames = [...]string{
	FormatNative: "native",
	FormatJSON:   "json",
	FormatYAML:   "yaml",
	FormatText:   "text",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// Formats yields the names of all formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range formatNames {
			if !yield(name) {
				return
			}
		}
	}
}

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Format(i), nil
		}
	}

	return 0, ErrInvalidFormat.With(
		slog.String("format", s),
		slog.String("valid", strings.Join(formatNames[:], ", ")))
}

// Write encodes defs to w in format f. indent is the number of spaces per
// nesting level; zero selects the most compact form of the format.
func Write(ctx context.Context, w io.Writer, f Format, defs def.Definitions, indent int) error {
	switch f {
	case FormatNative:
		return Native(w, defs, indent)
	case FormatJSON:
		return JSON(w, defs, indent)
	case FormatYAML:
		return YAML(ctx, w, defs, indent)
	case FormatText:
		return Text(w, defs)
	default:
		return ErrInvalidFormat.With(slog.String("format", f.String()))
	}
}

// Native writes defs in canonical definitions notation, one per line, that
// parses back to the same definitions. With a positive indent every
// parameter goes on its own line.
func Native(w io.Writer, defs def.Definitions, indent int) error {
	var b strings.Builder

	for _, d := range defs {
		if indent <= 0 || len(d.Parameters) == 0 {
			b.WriteString(d.String())
			b.WriteByte('\n')

			continue
		}

		pad := strings.Repeat(" ", indent)

		b.WriteString(d.Name)
		b.WriteString("(\n")

		for i, p := range d.Parameters {
			b.WriteString(pad)
			b.WriteString(p.String())

			if i < len(d.Parameters)-1 {
				b.WriteByte(',')
			}

			b.WriteByte('\n')
		}

		b.WriteString(")\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// JSON writes defs as a JSON array followed by a newline.
func JSON(w io.Writer, defs def.Definitions, indent int) error {
	if defs == nil {
		defs = def.Definitions{}
	}

	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(defs, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(defs)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// YAML writes defs as a YAML sequence. A zero indent selects flow style.
func YAML(ctx context.Context, w io.Writer, defs def.Definitions, indent int) error {
	if defs == nil {
		defs = def.Definitions{}
	}

	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent), yaml.IndentSequence(true))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, defs, opts...)
	if err != nil {
		return err
	}

	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	_, err = w.Write(data)

	return err
}
