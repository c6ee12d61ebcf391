package cmd

import (
	"context"

	"github.com/ardnew/evdef/def"
)

// Get prints the definition with the given name.
type Get struct {
	Output `embed:""`

	Name   string   `arg:"" help:"Name of the definition."`
	Source []string `arg:"" help:"Input file(s) or '-' for stdin." optional:"" type:"existingfile"`
}

// Run executes the get command. An unknown name fails with
// [stream.ErrDefinitionNotFound], which lists the closest known names.
func (g *Get) Run(ctx context.Context) error {
	s, err := openStream(ctx, g.Source)
	if err != nil {
		return err
	}

	d, err := s.Get(g.Name)
	if err != nil {
		return err
	}

	return g.write(ctx, def.Definitions{d})
}
