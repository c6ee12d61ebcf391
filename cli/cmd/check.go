package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/evdef/check"
	"github.com/ardnew/evdef/log"
)

// Check validates every input against the strict grammar and prints the
// diagnostics.
type Check struct {
	Untyped bool     `help:"Also report parameters declared without a type." short:"u"`
	Source  []string `arg:""                                                 help:"Input file(s) or '-' for stdin." optional:"" type:"existingfile"`
}

// Run executes the check command. It fails with [ErrCheckFailed] when any
// input has an error-severity diagnostic; warnings alone do not fail.
func (c *Check) Run(ctx context.Context) error {
	ins, err := inputsFrom(ctx, c.Source)
	if err != nil {
		return err
	}

	var failed []string

	for _, in := range ins {
		src, err := in.ReadString()
		if err != nil {
			return err
		}

		report := check.Check(in.Name, src, check.WithUntypedInfo(c.Untyped))

		log.DebugContext(ctx, "checked input",
			slog.String("source", in.Name),
			slog.Int("errors", report.Count(check.SeverityError)),
			slog.Int("warnings", report.Count(check.SeverityWarning)),
			slog.Int("info", report.Count(check.SeverityInfo)),
		)

		if err := report.Format(outputFrom(ctx)); err != nil {
			return err
		}

		if report.HasErrors() {
			failed = append(failed, in.Name)
		}
	}

	if len(failed) > 0 {
		return ErrCheckFailed.With(slog.Any("sources", failed))
	}

	return nil
}
