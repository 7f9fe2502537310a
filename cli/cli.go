package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ardnew/yaf/cli/cmd"
	"github.com/ardnew/yaf/pkg"
	"github.com/ardnew/yaf/render"
)

// CLI is the top-level command-line interface for yaf.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version    kong.VersionFlag `help:"Print version information and exit."      short:"v"`
	DumpConfig dumpFlag         `help:"Print the builtin template and exit."     short:"d"`
	Color      cmd.Color        `default:"auto"                                  enum:"auto,always,never" help:"When to emit style escape codes (${enum})."`
	Shell      string           `default:"${shell}"                              help:"Shell used to run command directives."`
	Timeout    time.Duration    `default:"0s"                                    help:"Limit on each command directive (0 for none)."`

	Render cmd.Render `cmd:"" default:"withargs" help:"Render a template (default)."`
	Parse  cmd.Parse  `cmd:""                    help:"Print the segments of a template."`
	Styles cmd.Styles `cmd:""                    help:"List style names and built-in facts."`
	Init   cmd.Init   `cmd:""                    help:"Write the builtin template to the configuration path."`
}

// dumpFlag prints the builtin template as soon as it is parsed, before any
// command runs.
type dumpFlag bool

// BeforeReset implements a kong hook.
func (dumpFlag) BeforeReset(app *kong.Kong) error {
	fmt.Fprint(app.Stdout, pkg.Builtin)
	app.Exit(0)

	return nil
}

// Run executes the yaf CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, nil, args...)
}

// run is [Run] with additional kong options, used by tests.
func run(
	ctx context.Context,
	exit func(code int),
	extra []kong.Option,
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		"version":            pkg.VersionString(),
		"shell":              render.DefaultShell,
		cmd.ConfigIdentifier: pkg.ConfigPath(),
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	opts := []kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
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
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		vars,
	}

	for _, path := range pkg.SettingsPaths() {
		opts = append(opts, kong.Configuration(loaderFor(path), path))
	}

	// Parse command line
	parser, err := kong.New(&cli, append(opts, extra...)...)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSettings(ctx, cmd.Settings{
		Color:   cli.Color,
		Shell:   cli.Shell,
		Timeout: cli.Timeout,
	})

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
