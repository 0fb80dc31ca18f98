// Command gwconsole edits and checks LoRaWAN gateway general settings.
//
// Usage:
//
//	gwconsole <command> [flags] <args>
//
// Commands:
//
//	check      Cast and validate a gateway settings file
//	edit       Edit a stored gateway interactively
//	scenarios  Run settings form scenarios
//	log        View form activity logs (view, stats)
//
// Examples:
//
//	# Validate settings and show the delay warning
//	gwconsole check gateway.yaml
//
//	# Edit a gateway from the store named in the config
//	gwconsole edit -config console.yaml my-gateway
//
//	# Run all scenarios in a directory
//	gwconsole scenarios -v internal/scenario/testdata
//
//	# Show submissions recorded in an activity log
//	gwconsole log view -kind submit forms.flog
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindworks-software/lorawan-stack/cmd/gwconsole/commands"
	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/persistence"
)

const usage = `gwconsole - LoRaWAN gateway settings console

Usage:
  gwconsole <command> [flags] <args>

Commands:
  check      Cast and validate a gateway settings file
  edit       Edit a stored gateway interactively
  scenarios  Run settings form scenarios
  log        View form activity logs (view, stats)

Use "gwconsole <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {
	case "check":
		err = runCheck(args)
	case "edit":
		err = runEdit(ctx, args)
	case "scenarios":
		err = runScenarios(ctx, args)
	case "log":
		err = runLog(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, commands.ErrFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// common holds the flags shared by commands that use the configuration.
type common struct {
	configPath string
	logLevel   string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Configuration file (YAML)")
	fs.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

// setup loads the configuration and builds the logger.
func (c *common) setup() (*config.Config, *slog.Logger, error) {
	cfg, err := commands.LoadConfig(c.configPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if c.logLevel != "" {
		level = c.logLevel
	}
	logger, err := commands.NewLogger(os.Stderr, level)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newFlagSet(name, synopsis, usageLine string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "gwconsole %s - %s\n\nUsage:\n  gwconsole %s\n\nFlags:\n", name, synopsis, usageLine)
		fs.PrintDefaults()
	}
	return fs
}

func requireArg(fs *flag.FlagSet, what string) (string, error) {
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("%s required", what)
	}
	return fs.Arg(0), nil
}

func runCheck(args []string) error {
	fs := newFlagSet("check", "Cast and validate a gateway settings file", "check [flags] <settings.yaml>")
	var c common
	c.register(fs)
	create := fs.Bool("create", false, "Check against the creation form (owner required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := requireArg(fs, "settings file")
	if err != nil {
		return err
	}

	cfg, _, err := c.setup()
	if err != nil {
		return err
	}
	return commands.RunCheck(path, commands.CheckOptions{Delays: cfg.Delays, Create: *create}, os.Stdout)
}

func runEdit(ctx context.Context, args []string) error {
	fs := newFlagSet("edit", "Edit a stored gateway interactively", "edit [flags] <gateway-id>")
	var c common
	c.register(fs)
	storePath := fs.String("store", "", "Gateway store file (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := requireArg(fs, "gateway ID")
	if err != nil {
		return err
	}

	cfg, logger, err := c.setup()
	if err != nil {
		return err
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}

	store, err := persistence.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	events, closeEvents, err := commands.EventLogger(cfg, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	editor, err := commands.NewEditor(store, id, commands.EditorConfig{
		Delays: cfg.Delays,
		Logger: logger,
		Events: events,
	}, os.Stdout)
	if err != nil {
		return err
	}
	return editor.Run(ctx)
}

func runScenarios(ctx context.Context, args []string) error {
	fs := newFlagSet("scenarios", "Run settings form scenarios", "scenarios [flags] <dir|file.yaml>")
	var c common
	c.register(fs)
	format := fs.String("format", "text", "Output format (text, json)")
	verbose := fs.Bool("v", false, "Show step details")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := requireArg(fs, "scenario path")
	if err != nil {
		return err
	}

	cfg, logger, err := c.setup()
	if err != nil {
		return err
	}
	events, closeEvents, err := commands.EventLogger(cfg, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	return commands.RunScenarios(ctx, path, commands.ScenarioOptions{
		Delays:  cfg.Delays,
		Logger:  logger,
		Events:  events,
		Format:  *format,
		Verbose: *verbose,
	}, os.Stdout)
}

func runLog(args []string) error {
	if len(args) < 1 {
		return errors.New("log subcommand required (view, stats)")
	}

	switch args[0] {
	case "view":
		fs := newFlagSet("log view", "View a form activity log", "log view [flags] <file.flog>")
		var opts commands.ViewOptions
		fs.StringVar(&opts.Session, "session", "", "Filter by form session ID")
		fs.StringVar(&opts.Gateway, "gateway", "", "Filter by gateway ID")
		fs.StringVar(&opts.Kind, "kind", "", "Filter by kind (open, change, warning, submit, error)")
		fs.StringVar(&opts.Field, "field", "", "Filter changes by field name")
		fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
		fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		path, err := requireArg(fs, "log file path")
		if err != nil {
			return err
		}
		filter, err := opts.Filter()
		if err != nil {
			return err
		}
		return commands.RunView(path, filter, os.Stdout)

	case "stats":
		fs := newFlagSet("log stats", "Show statistics about a form activity log", "log stats <file.flog>")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		path, err := requireArg(fs, "log file path")
		if err != nil {
			return err
		}
		return commands.RunStats(path, os.Stdout)

	default:
		return fmt.Errorf("unknown log subcommand: %s (must be view or stats)", args[0])
	}
}
