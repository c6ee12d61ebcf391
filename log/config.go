package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// FormatTime renders a record timestamp. An empty result omits the time.
type FormatTime func(time.Time) string

const (
	// DefaultTimeLayout is used when no time layout is configured.
	DefaultTimeLayout = time.RFC3339
	// DefaultCaller controls whether source locations are logged by default.
	DefaultCaller = false
	// DefaultPretty controls whether colorized output is used by default.
	DefaultPretty = true
)

// config is immutable once a Logger holds it; options return modified copies.
type config struct {
	output     io.Writer
	formatTime FormatTime
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

func makeConfig(w io.Writer, opts ...Option) config {
	return apply(WithDefaults(w)(config{}), opts...)
}

func (c config) handlerOptions() *slog.HandlerOptions {
	formatTime := c.formatTime
	if formatTime == nil {
		formatTime = makeFormatTimeFunc(DefaultTimeLayout)
	}

	return &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}

			switch a.Key {
			case slog.TimeKey:
				t, ok := a.Value.Any().(time.Time)
				if !ok {
					return a
				}

				s := formatTime(t)
				if s == "" {
					return slog.Attr{}
				}

				return slog.String(slog.TimeKey, s)

			case slog.LevelKey:
				if l, ok := a.Value.Any().(slog.Level); ok {
					return slog.String(slog.LevelKey, strings.ToUpper(Level(l).String()))
				}
			}

			return a
		},
	}
}

func (c config) handler() slog.Handler {
	if c.output == nil {
		return slog.DiscardHandler
	}

	opts := c.handlerOptions()

	switch {
	case c.pretty && (c.format == FormatJSON || c.format == FormatText):
		return newPrettyHandler(c.output, c.format, opts)
	case c.format == FormatJSON:
		return slog.NewJSONHandler(c.output, opts)
	case c.format == FormatText:
		return slog.NewTextHandler(c.output, opts)
	default:
		return slog.DiscardHandler
	}
}

var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"rfc1123":     time.RFC1123,
	"rfc1123z":    time.RFC1123Z,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"ms":          time.StampMilli,
	"stampmicro":  time.StampMicro,
	"us":          time.StampMicro,
	"stampnano":   time.StampNano,
	"ns":          time.StampNano,
	"none":        "",
}

func makeFormatTimeFunc(layout string) FormatTime {
	key := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return -1
	}, strings.ToLower(layout))

	if key == "" {
		return func(time.Time) string { return "" }
	}

	if named, ok := timeLayout[key]; ok {
		if named == "" {
			return func(time.Time) string { return "" }
		}

		layout = named
	}

	return func(t time.Time) string { return t.Format(layout) }
}
