package main

import (
	"context"
	stderrors "errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/pkg/profile"
	"github.com/tliron/commonlog"

	"ember/internal/config"
)

const (
	appName        = "ember"
	appDescription = "Scan and parse ember programs."
)

var log = commonlog.GetLogger("ember.cli")

// errFailed is returned by commands whose input had errors. The
// diagnostics are printed before it is returned.
var errFailed = stderrors.New("failed")

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// CLI is the top-level command-line interface for ember.
type CLI struct {
	Config   string `help:"Configuration file (default ${configPath})." placeholder:"FILE"`
	Color    bool   `default:"${color}"    help:"Colorize output."                         negatable:""`
	Format   string `default:"${format}"   enum:"text,json,yaml" help:"Tree output format." short:"f"`
	Timing   bool   `default:"${timing}"   help:"Report processing time."                  negatable:""`
	MaxDepth int    `default:"${maxDepth}" help:"Maximum nesting depth, 0 for unlimited."`

	logging   `embed:"" group:"log"     prefix:"log-"`
	profiling `embed:"" group:"profile"`

	Parse   ParseCmd   `cmd:"" default:"withargs" help:"Parse a source file and print its tree."`
	Tokens  TokensCmd  `cmd:""                    help:"Print the token stream of a source file."`
	Repl    ReplCmd    `cmd:""                    help:"Start an interactive session."`
	Grammar GrammarCmd `cmd:""                    help:"Print the reference grammar, or check a file against it."`
}

type logging struct {
	Verbosity int    `default:"${logVerbosity}" help:"Log verbosity, higher logs more."`
	File      string `default:"${logFile}"      help:"Write logs to this file instead of stderr." placeholder:"FILE"`
}

func (l logging) start() {
	var path *string
	if l.File != "" {
		path = &l.File
	}
	commonlog.Configure(l.Verbosity, path)
}

type profiling struct {
	CPUProfile string `help:"Write a CPU profile into this directory." name:"cpu-profile" placeholder:"DIR"`
}

// start starts profiling if configured.
func (p profiling) start() (stop func()) {
	if p.CPUProfile == "" {
		return func() {}
	}

	log.Debugf("cpu profile into %s", p.CPUProfile)
	return profile.Start(profile.CPUProfile, profile.ProfilePath(p.CPUProfile), profile.Quiet).Stop
}

// Run executes the ember CLI with the given context and arguments. The
// configuration file supplies the flag defaults; flags given on the command
// line override it.
func Run(ctx context.Context, exit func(code int), s *streams, args ...string) error {
	var cli CLI

	conf, err := config.Load(scanConfig(args))
	if err != nil {
		return err
	}

	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(s.out, s.err),
		kong.ExplicitGroups([]kong.Group{
			{Key: "log", Title: "Logging options"},
			{Key: "profile", Title: "Profiling"},
		}),
		kong.Bind(&cli, s),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			Summary:             true,
			NoExpandSubcommands: true,
		}),
		vars(conf),
	)
	if err != nil {
		return err
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.logging.start()
	if !cli.Color {
		color.NoColor = true
	}

	defer cli.profiling.start()()

	return kongCtx.Run()
}

func vars(conf *config.Config) kong.Vars {
	return kong.Vars{
		"configPath":   config.DefaultPath,
		"color":        strconv.FormatBool(conf.Color),
		"format":       conf.Format,
		"timing":       strconv.FormatBool(conf.Timing),
		"maxDepth":     strconv.Itoa(conf.MaxDepth),
		"logVerbosity": strconv.Itoa(conf.Log.Verbosity),
		"logFile":      conf.Log.File,
	}
}

// scanConfig finds the --config flag before kong parses the arguments,
// since the file it names supplies the other flags' defaults.
func scanConfig(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if value, ok := strings.CutPrefix(arg, "--config="); ok {
			return value
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
