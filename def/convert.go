package def

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"

	"github.com/ardnew/evdef/log"
)

// Convert parses definitions text. It never fails: comment-only or malformed
// input yields fewer definitions, possibly none. Definitions without a name
// are dropped.
func Convert(s string) Definitions {
	return parse(context.Background(), s, options{})
}

// Option configures [Parse] and [ParseReader].
type Option func(options) options

type options struct {
	logger log.Logger
}

// WithLogger traces each pipeline stage to logger. The result of parsing is
// unaffected.
func WithLogger(logger log.Logger) Option {
	return func(o options) options {
		o.logger = logger

		return o
	}
}

// Parse is [Convert] with options. ctx is passed to the logger only; parsing
// itself does not block.
func Parse(ctx context.Context, s string, opts ...Option) Definitions {
	var o options
	for _, opt := range opts {
		o = opt(o)
	}

	return parse(ctx, s, o)
}

// ParseReader reads r to the end and parses its content. The only possible
// error is a read failure, reported as [ErrReadInput].
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (Definitions, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.Int("bytes_read", len(data)))
	}

	return Parse(ctx, string(data), opts...), nil
}

func parse(ctx context.Context, s string, o options) Definitions {
	logger := o.logger

	text := Normalize(s)
	logger.TraceContext(ctx, "normalized",
		slog.Int("input_bytes", len(s)),
		slog.Int("bytes", len(text)))

	tokens := Tokenize(text)
	logger.TraceContext(ctx, "tokenized", slog.Int("tokens", len(tokens)))

	groups := Split(tokens)
	defs := make(Definitions, 0, len(groups))

	for i, group := range groups {
		d := Build(group)
		if d.Name == "" {
			if !isBlankGroup(group) {
				logger.DebugContext(ctx, "dropped definition without name",
					slog.Int("group", i),
					slog.Any("tokens", group))
			}

			continue
		}

		defs = append(defs, d)
	}

	logger.TraceContext(ctx, "built",
		slog.Int("groups", len(groups)),
		slog.Int("definitions", len(defs)))

	return defs
}

// isBlankGroup reports whether every token of group has blank text, as
// produced by empty lines between definitions.
func isBlankGroup(group []Token) bool {
	for _, t := range group {
		if t.Kind != KindName && t.Kind != KindEndParams {
			return false
		}

		for _, r := range t.Text {
			if !isBlank(r) {
				return false
			}
		}
	}

	return true
}
