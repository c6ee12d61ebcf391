package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/evdef/def"
	"github.com/ardnew/evdef/def/stream"
	"github.com/ardnew/evdef/log"
)

type (
	kongContextKey struct{}
	sourcesKey     struct{}
	outputKey      struct{}
)

// WithContext returns a copy of ctx carrying the parsed kong context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, kongContextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(kongContextKey{}).(*kong.Context)

	return ktx
}

// WithSources returns a copy of ctx carrying the paths given to the global
// --source flag.
func WithSources(ctx context.Context, paths []string) context.Context {
	return context.WithValue(ctx, sourcesKey{}, paths)
}

func sourcesFrom(ctx context.Context) []string {
	paths, _ := ctx.Value(sourcesKey{}).([]string)

	return paths
}

// WithOutput returns a copy of ctx whose commands write to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// inputsFrom resolves the global sources followed by the command's own.
func inputsFrom(ctx context.Context, paths []string) (Inputs, error) {
	return ResolveInputs(append(sourcesFrom(ctx), paths...)...)
}

// openStream reads every input into one [stream.Stream].
func openStream(ctx context.Context, paths []string) (*stream.Stream, error) {
	in, err := inputsFrom(ctx, paths)
	if err != nil {
		return nil, err
	}

	r, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s := stream.NewContext(ctx, r, def.WithLogger(log.Default()))

	// The stream reads lazily; force it while r is open.
	if _, err := s.All(); err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "loaded definitions",
		slog.Any("inputs", in.Names()),
		slog.String("key", s.Key()),
	)

	return s, nil
}
