package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	keyColor      = color.New(color.FgHiBlack)
	stringColor   = color.New(color.FgCyan)
	numberColor   = color.New(color.FgYellow)
	trueColor     = color.New(color.FgGreen)
	falseColor    = color.New(color.FgRed)
	timeColor     = color.New(color.FgBlue)
	durationColor = color.New(color.FgMagenta)
	nullColor     = color.New(color.FgHiBlack, color.Italic)
)

func levelColor(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return color.New(color.FgRed, color.Bold)
	case l >= slog.LevelWarn:
		return color.New(color.FgYellow, color.Bold)
	case l >= slog.LevelInfo:
		return color.New(color.FgGreen)
	case l >= slog.LevelDebug:
		return color.New(color.FgBlue)
	default:
		return color.New(color.FgHiBlack)
	}
}

// prettyHandler writes colorized records, either as key=value pairs on one
// line (text) or as an indented object (json). Colors follow [color.NoColor].
type prettyHandler struct {
	opts   *slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	format Format
	prefix string
	attrs  []slog.Attr
}

func newPrettyHandler(w io.Writer, format Format, opts *slog.HandlerOptions) *prettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &prettyHandler{opts: opts, mu: &sync.Mutex{}, w: w, format: format}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], h.qualify(attrs)...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// qualify flattens groups and prefixes keys with the open group names.
func (h *prettyHandler) qualify(attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))

	var walk func(prefix string, as []slog.Attr)
	walk = func(prefix string, as []slog.Attr) {
		for _, a := range as {
			a.Value = a.Value.Resolve()

			if a.Value.Kind() == slog.KindGroup {
				p := prefix
				if a.Key != "" {
					p += a.Key + "."
				}

				walk(p, a.Value.Group())

				continue
			}

			if a.Equal(slog.Attr{}) {
				continue
			}

			a.Key = prefix + a.Key
			out = append(out, a)
		}
	}
	walk(h.prefix, attrs)

	return out
}

func (h *prettyHandler) builtin(key string, v slog.Value) (slog.Attr, bool) {
	a := slog.Attr{Key: key, Value: v}
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	return a, !a.Equal(slog.Attr{})
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		if a, ok := h.builtin(slog.TimeKey, slog.TimeValue(r.Time)); ok {
			fields = append(fields, a)
		}
	}

	levelAttr, showLevel := h.builtin(slog.LevelKey, slog.AnyValue(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			fields = append(fields, slog.String(slog.SourceKey, src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	fields = append(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	var recAttrs []slog.Attr

	r.Attrs(func(a slog.Attr) bool {
		recAttrs = append(recAttrs, a)

		return true
	})

	fields = append(fields, h.qualify(recAttrs)...)

	var buf bytes.Buffer

	lc := levelColor(r.Level)

	switch h.format {
	case FormatJSON:
		buf.WriteString("{\n")

		if showLevel {
			h.writeJSONField(&buf, levelAttr.Key, lc.Sprint(strconv.Quote(levelAttr.Value.String())))
		}

		for _, a := range fields {
			h.writeJSONField(&buf, a.Key, h.jsonValue(a.Value))
		}

		// drop the separator after the last field
		if b := buf.Bytes(); bytes.HasSuffix(b, []byte(",\n")) {
			buf.Truncate(len(b) - 2)
			buf.WriteByte('\n')
		}

		buf.WriteString("}\n")

	default:
		if showLevel {
			buf.WriteString(lc.Sprintf("%-5s", levelAttr.Value.String()))
		}

		for _, a := range fields {
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(keyColor.Sprint(a.Key))
			buf.WriteByte('=')
			buf.WriteString(h.textValue(a.Value))
		}

		buf.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) writeJSONField(buf *bytes.Buffer, key, value string) {
	buf.WriteString("  ")
	buf.WriteString(keyColor.Sprint(strconv.Quote(key)))
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString(",\n")
}

func (h *prettyHandler) textValue(v slog.Value) string {
	if v.Kind() == slog.KindString {
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			s = strconv.Quote(s)
		}

		return stringColor.Sprint(s)
	}

	return h.scalar(v, false)
}

func (h *prettyHandler) jsonValue(v slog.Value) string {
	return h.scalar(v, true)
}

func (h *prettyHandler) scalar(v slog.Value, quote bool) string {
	switch v.Kind() {
	case slog.KindString:
		return stringColor.Sprint(strconv.Quote(v.String()))
	case slog.KindInt64:
		return numberColor.Sprint(v.Int64())
	case slog.KindUint64:
		return numberColor.Sprint(v.Uint64())
	case slog.KindFloat64:
		return numberColor.Sprint(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	case slog.KindBool:
		if v.Bool() {
			return trueColor.Sprint("true")
		}

		return falseColor.Sprint("false")
	case slog.KindDuration:
		return durationColor.Sprint(maybeQuote(v.Duration().String(), quote))
	case slog.KindTime:
		return timeColor.Sprint(maybeQuote(v.Time().Format(time.RFC3339Nano), quote))
	}

	a := v.Any()
	if a == nil {
		return nullColor.Sprint("null")
	}

	if err, ok := a.(error); ok {
		return falseColor.Sprint(maybeQuote(err.Error(), quote))
	}

	if quote {
		if b, err := json.Marshal(a); err == nil {
			return stringColor.Sprint(string(b))
		}
	}

	return stringColor.Sprint(maybeQuote(v.String(), quote))
}

func maybeQuote(s string, quote bool) string {
	if quote {
		return strconv.Quote(s)
	}

	return s
}
