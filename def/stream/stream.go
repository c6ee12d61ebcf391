// Package stream gives cached access to the definitions of a source.
//
// Sources are identified by the xxh3 hash of their text. The first [Stream]
// to touch a source parses it; every later Stream over the same text reuses
// the result. Callers always receive copies, so nothing they do can alter
// the cache.
package stream

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/sahilm/fuzzy"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/evdef/def"
)

// MaxSuggestions bounds the alternatives offered for an unknown name.
const MaxSuggestions = 3

// ErrDefinitionNotFound is returned by [Stream.Get] for an unknown name. It
// carries the attributes "name" and, when any exist, "suggestions".
var ErrDefinitionNotFound = def.NewError("definition not found")

// cache maps a source key to its *entry.
var cache sync.Map

type entry struct {
	once  sync.Once
	defs  def.Definitions
	index map[string]int
}

func (e *entry) load(ctx context.Context, source string, opts []def.Option) {
	e.once.Do(func() {
		e.defs = def.Parse(ctx, source, opts...)
		e.index = make(map[string]int, len(e.defs))

		for i, d := range e.defs {
			if _, ok := e.index[d.Name]; !ok {
				e.index[d.Name] = i
			}
		}
	})
}

// Stream reads one source of definitions on first use.
//
// Parsing runs once per distinct source. Its records go to the logger and
// context of the Stream that first loads the source; a later Stream over the
// same text is served from the cache and its own logger sees nothing.
type Stream struct {
	ctx    context.Context
	reader io.Reader
	source string
	opts   []def.Option

	once  sync.Once
	key   string
	entry *entry
	err   error
}

// New returns a Stream over the content of r. Nothing is read until a
// definition is requested.
func New(r io.Reader, opts ...def.Option) *Stream {
	return NewContext(context.Background(), r, opts...)
}

// NewContext is [New] with a context that is handed to the parser's logger.
func NewContext(ctx context.Context, r io.Reader, opts ...def.Option) *Stream {
	return &Stream{ctx: ctx, reader: r, opts: opts}
}

// NewFromString returns a Stream over source.
func NewFromString(source string, opts ...def.Option) *Stream {
	return &Stream{ctx: context.Background(), source: source, opts: opts}
}

// Key returns the cache key of the source, or "" if it could not be read.
func (s *Stream) Key() string {
	if s.load() != nil {
		return ""
	}

	return s.key
}

func (s *Stream) load() error {
	s.once.Do(func() {
		if s.reader != nil {
			ra := readahead.NewReader(s.reader)
			defer ra.Close()

			data, err := io.ReadAll(ra)
			if err != nil {
				s.err = def.ErrReadInput.Wrap(err).With(slog.String("source", "reader"))

				return
			}

			s.source = string(data)
			s.reader = nil
		}

		s.key = keyOf(s.source)

		v, _ := cache.LoadOrStore(s.key, new(entry))
		s.entry = v.(*entry)
		s.entry.load(s.ctx, s.source, s.opts)
	})

	return s.err
}

func keyOf(source string) string {
	return strconv.FormatUint(xxh3.HashString(source), 36)
}

// All returns every definition in source order.
func (s *Stream) All() (def.Definitions, error) {
	if err := s.load(); err != nil {
		return nil, err
	}

	return s.entry.defs.Clone(), nil
}

// Definitions yields every definition in source order. It yields nothing if
// the source cannot be read; use [Stream.All] to observe the error.
func (s *Stream) Definitions() iter.Seq[def.Definition] {
	return func(yield func(def.Definition) bool) {
		if s.load() != nil {
			return
		}

		for _, d := range s.entry.defs {
			if !yield(d.Clone()) {
				return
			}
		}
	}
}

// Get returns the first definition named name.
func (s *Stream) Get(name string) (def.Definition, error) {
	if err := s.load(); err != nil {
		return def.Definition{}, err
	}

	if i, ok := s.entry.index[name]; ok {
		return s.entry.defs[i].Clone(), nil
	}

	err := ErrDefinitionNotFound.With(slog.String("name", name))
	if alt := Suggest(name, s.entry.defs.Names()); len(alt) > 0 {
		err = err.With(slog.Any("suggestions", alt))
	}

	return def.Definition{}, err
}

// Suggest returns up to [MaxSuggestions] distinct candidates that fuzzily
// match name, best match first.
func Suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}

	seen := make(map[string]bool, MaxSuggestions)

	var out []string

	for _, m := range fuzzy.Find(name, candidates) {
		if seen[m.Str] {
			continue
		}

		seen[m.Str] = true

		out = append(out, m.Str)
		if len(out) == MaxSuggestions {
			break
		}
	}

	return out
}

// GetFrom reads r and returns its first definition named name.
func GetFrom(r io.Reader, name string) (def.Definition, error) {
	return New(r).Get(name)
}

// DefinitionsFrom reads r and yields its definitions.
func DefinitionsFrom(r io.Reader) iter.Seq[def.Definition] {
	return New(r).Definitions()
}

// ClearCache forgets every parsed source. Streams that already loaded keep
// their results.
func ClearCache() {
	cache.Clear()
}
