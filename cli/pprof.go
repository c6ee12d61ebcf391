//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/evdef/log"
	"github.com/ardnew/evdef/pkg"
	"github.com/ardnew/evdef/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling (${enum})" placeholder:"MODE" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(pkg.CacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling (pprof)"}
}

// start starts profiling if a mode is selected and returns the function that
// stops it.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	cfg := profile.New(
		profile.WithMode(f.Mode),
		profile.WithDir(f.Dir),
		profile.WithQuiet(true),
	)
	if !cfg.Enabled() {
		return func() {}
	}

	log.DebugContext(ctx, "pprof start",
		slog.String("mode", cfg.Mode),
		slog.String("dir", cfg.Dir),
	)

	profiler := cfg.Start()

	return func() {
		profiler.Stop()

		log.DebugContext(ctx, "pprof stop",
			slog.String("mode", cfg.Mode),
			slog.String("dir", cfg.Dir),
		)
	}
}
