package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/evdef/def"
	"github.com/ardnew/evdef/log"
	"github.com/ardnew/evdef/query"
	"github.com/ardnew/evdef/render"
)

// Output holds the flags shared by commands that print definitions.
type Output struct {
	Format string `default:"native" enum:"${formatEnum}" help:"Output format (${enum})."                          short:"f"`
	Indent int    `default:"-1"                          help:"Indent width, or negative for the format default." short:"i"`
}

// write renders defs to the command output.
func (o Output) write(ctx context.Context, defs def.Definitions) error {
	format, err := render.ParseFormat(o.Format)
	if err != nil {
		return err
	}

	return render.Write(ctx, outputFrom(ctx), format, defs, indentFor(format, o.Indent))
}

// indentFor replaces a negative indent with the default of format: native
// output stays one definition per line, structured formats are indented.
func indentFor(format render.Format, indent int) int {
	if indent >= 0 {
		return indent
	}

	switch format {
	case render.FormatJSON, render.FormatYAML:
		return 2
	default:
		return 0
	}
}

// Parse prints the definitions of its inputs.
type Parse struct {
	Output `embed:""`

	Where  string   `help:"Print only definitions for which this expression is true." placeholder:"EXPR" short:"w"`
	Source []string `arg:"" help:"Input file(s) or '-' for stdin." optional:"" type:"existingfile"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) error {
	filter, err := query.Compile(p.Where)
	if err != nil {
		return ErrInvalidQuery.Wrap(err).With(slog.String("where", p.Where))
	}

	s, err := openStream(ctx, p.Source)
	if err != nil {
		return err
	}

	defs, err := s.All()
	if err != nil {
		return err
	}

	selected, err := filter.Select(defs)
	if err != nil {
		return ErrInvalidQuery.Wrap(err).With(slog.String("where", p.Where))
	}

	log.DebugContext(ctx, "selected definitions",
		slog.Int("parsed", len(defs)),
		slog.Int("selected", len(selected)),
		slog.String("where", filter.String()),
	)

	return p.write(ctx, selected)
}
