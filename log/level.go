package log

import (
	"iter"
	"log/slog"
	"strconv"
	"strings"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// DefaultLevel is the level of a [Logger] made without [WithLevel].
const DefaultLevel = LevelInfo

var levels = [...]Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// String returns the lower-case name of the level. Levels between the named
// ones are written as an offset from the nearest lower name, like slog does.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}

	if l < LevelDebug {
		d := int(l - LevelTrace)
		if d < 0 {
			return "trace" + strconv.Itoa(d)
		}

		return "trace+" + strconv.Itoa(d)
	}

	return strings.ToLower(slog.Level(l).String())
}

// Levels yields the names of all defined levels, least severe first.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range levels {
			if !yield(l.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a level name, case-insensitively. Besides "trace" it
// accepts everything [slog.Level.UnmarshalText] does. Unrecognized input
// yields [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format selects the encoding of log records.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the format of a [Logger] made without [WithFormat].
const DefaultFormat = FormatJSON

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// Formats yields the names of all defined formats, default first.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range [...]Format{FormatJSON, FormatText} {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat parses "json" or "text", case-insensitively. Unrecognized input
// yields [DefaultFormat].
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return DefaultFormat
	}
}
