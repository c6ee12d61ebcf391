// Package log is the structured logger shared by every evdef package.
//
// It wraps [log/slog] with a small set of functional options applied when a
// [Logger] is made:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Info("parsed", slog.Int("definitions", 3))
//
// Attributes are always [slog.Attr] values. [Logger.With] returns a derived
// logger that carries its attributes into every record.
//
// The zero [Logger] discards everything, so library code can accept a Logger
// option and log unconditionally.
//
// The package-level functions ([Info], [Error], and friends) write through a
// process-wide default logger that [Config] reconfigures. Context-unaware
// variants use [DefaultContextProvider].
//
// Levels are [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and
// [LevelError]. Output is [FormatJSON] (default) or [FormatText], either of
// which can be rendered in a colorized multi-line form with [WithPretty].
package log
