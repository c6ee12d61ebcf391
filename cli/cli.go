package cli

import (
	"context"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/evdef/cli/cmd"
	"github.com/ardnew/evdef/pkg"
	"github.com/ardnew/evdef/render"
)

// Writers for command output and kong messages.
//
//nolint:gochecknoglobals
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// CLI is the top-level command-line interface for evdef.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source  []string         `help:"Input source file(s) or '-' for stdin" name:"source" short:"s" type:"existingfile"`
	Version kong.VersionFlag `help:"Print version and exit"                short:"V"`

	Parse cmd.Parse `cmd:"" default:"withargs" help:"Print parsed definitions"`
	Get   cmd.Get   `cmd:""                    help:"Print one definition by name"`
	Check cmd.Check `cmd:""                    help:"Validate definitions against the strict grammar"`
	Init  cmd.Init  `cmd:""                    help:"Initialize configuration file"`
}

// vars returns the interpolation variables of the command model.
func (c *CLI) vars() kong.Vars {
	return kong.Vars{
		cmd.ConfigIdentifier:     configPath(baseConfig + ".yaml"),
		cmd.CacheIdentifier:      pkg.CacheDir(),
		cmd.FormatEnumIdentifier: strings.Join(slices.Collect(render.Formats()), ","),
		"version":                pkg.Name + " " + pkg.Version,
	}.
		CloneWith(c.Log.vars()).
		CloneWith(c.Pprof.vars())
}

// Run executes the evdef CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before kong reports anything, wherever they appear.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve, configPath(baseConfig+".yaml")),
		cli.vars(),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSources(ctx, cli.Source)
	ctx = cmd.WithOutput(ctx, ktx.Stdout)

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	// The singleton provider above reads ctx when the command runs, so the
	// command sees every value added since.
	return ktx.Run()
}
