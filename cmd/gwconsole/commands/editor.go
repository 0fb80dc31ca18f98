package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/formlog"
	"github.com/mindworks-software/lorawan-stack/pkg/gateway"
	"github.com/mindworks-software/lorawan-stack/pkg/messages"
	"github.com/mindworks-software/lorawan-stack/pkg/persistence"
)

// EditorConfig configures an Editor.
type EditorConfig struct {
	Delays config.Delays
	Logger *slog.Logger
	Events formlog.Logger
}

// Editor edits the general settings of a stored gateway from the command
// line.
type Editor struct {
	store     *persistence.GatewayStore
	gatewayID string
	form      *gateway.Form
	cfg       EditorConfig
	out       io.Writer

	// confirmDelete is set once the delete dialog has been shown.
	confirmDelete bool
}

// NewEditor opens the settings form of gatewayID. Output goes to out.
func NewEditor(store *persistence.GatewayStore, gatewayID string, cfg EditorConfig, out io.Writer) (*Editor, error) {
	settings, err := store.Get(gatewayID)
	if err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	e := &Editor{store: store, gatewayID: gatewayID, cfg: cfg, out: out}
	e.form = gateway.NewForm(gateway.FormConfig{
		Initial:   gateway.FromSettings(settings),
		Update:    true,
		Delays:    cfg.Delays,
		Collapsed: true,
		Logger:    cfg.Events,
	})
	return e, nil
}

// Form returns the form being edited.
func (e *Editor) Form() *gateway.Form {
	return e.form
}

// Run starts the interactive command loop.
func (e *Editor) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          e.gatewayID + "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete:    e.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	e.out = rl.Stdout()
	e.printHelp()
	e.show()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			fmt.Fprintln(e.out, "Exiting...")
			return nil
		}

		if quit := e.Execute(ctx, line); quit {
			return nil
		}
	}
}

func (e *Editor) completer() *readline.PrefixCompleter {
	fields := make([]readline.PrefixCompleterInterface, 0)
	for _, rule := range e.form.Schema().Rules() {
		fields = append(fields, readline.PcItem(rule.Name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("show"),
		readline.PcItem("set", fields...),
		readline.PcItem("expand"),
		readline.PcItem("collapse"),
		readline.PcItem("reset"),
		readline.PcItem("save"),
		readline.PcItem("delete"),
		readline.PcItem("quit"),
	)
}

// Execute runs one command line. It reports whether the editor should exit.
func (e *Editor) Execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	if cmd != "delete" {
		e.confirmDelete = false
	}

	switch cmd {
	case "help", "?":
		e.printHelp()

	case "show", "s":
		e.show()

	case "set":
		e.cmdSet(strings.TrimSpace(input[len(parts[0]):]))

	case "expand":
		e.form.SetCollapsed(false)
		e.show()

	case "collapse":
		e.form.SetCollapsed(true)
		e.show()

	case "reset":
		e.form.Reset()
		fmt.Fprintln(e.out, "Changes discarded")

	case "save":
		e.cmdSave(ctx)

	case "delete":
		return e.cmdDelete(args)

	case "quit", "exit", "q":
		if e.form.Dirty() {
			fmt.Fprintln(e.out, "Unsaved changes discarded")
		}
		fmt.Fprintln(e.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(e.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (e *Editor) printHelp() {
	fmt.Fprintln(e.out, `
Gateway Settings Commands:
  show                 - Show the general settings form
  set <field> <value>  - Change a field (empty value clears it)
  expand | collapse    - Show or hide the LoRaWAN options
  reset                - Discard unsaved changes
  save                 - Validate and save the settings
  delete               - Delete the gateway (asks for confirmation)
  help                 - Show this help
  quit                 - Exit

  Attributes are written as key=value pairs separated by commas.`)
}

func (e *Editor) show() {
	if err := gateway.RenderSettingsPage(e.out, e.form); err != nil {
		e.cfg.Logger.Error("render failed", slog.Any("error", err))
	}
}

// cmdSet handles "set <field> <value>". The value is the rest of the line.
func (e *Editor) cmdSet(rest string) {
	field, text, _ := strings.Cut(rest, " ")
	if field == "" {
		fmt.Fprintln(e.out, "Usage: set <field> <value>")
		return
	}
	text = strings.TrimSpace(text)

	rule, ok := e.form.Schema().Rule(field)
	if !ok {
		fmt.Fprintf(e.out, "Unknown field: %s\n", field)
		return
	}

	value, err := parseFieldValue(rule.Kind, text)
	if err != nil {
		fmt.Fprintf(e.out, "Invalid value for %s: %v\n", field, err)
		return
	}

	if err := e.form.Change(field, value); err != nil {
		fmt.Fprintf(e.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(e.out, "%s = %s\n", field, e.form.Value(field))
	if field == gateway.FieldScheduleAnytimeDelay && e.form.ShouldDisplayWarning() {
		fmt.Fprintf(e.out, "! %s\n", e.form.Warning())
	}
}

// parseFieldValue converts command-line text to a form value of kind.
func parseFieldValue(kind gateway.FieldKind, text string) (any, error) {
	switch kind {
	case gateway.KindBool:
		if text == "" {
			return false, nil
		}
		return strconv.ParseBool(text)
	case gateway.KindMap:
		attrs := make(map[string]string)
		if text == "" {
			return attrs, nil
		}
		for _, pair := range strings.Split(text, ",") {
			k, v, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("attribute %q is not key=value", pair)
			}
			attrs[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
		return attrs, nil
	default:
		return text, nil
	}
}

func (e *Editor) cmdSave(ctx context.Context) {
	settings, err := e.form.Submit(ctx, e.store)
	if err != nil {
		var verr *gateway.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Errors {
				fmt.Fprintf(e.out, "Error: %s: %s\n", fe.Field, fe.Text())
			}
			return
		}
		fmt.Fprintf(e.out, "Error: %v\n", err)
		return
	}

	e.cfg.Logger.Info("gateway saved",
		slog.String("gateway_id", settings.IDs.GatewayID),
		slog.Duration("schedule_anytime_delay", settings.ScheduleAnytimeDelay.Std()))
	fmt.Fprintln(e.out, messages.GatewaySettingsUpdateSuccess)
}

// cmdDelete shows the confirmation dialog on first use and deletes the
// gateway when confirmed with "delete yes".
func (e *Editor) cmdDelete(args []string) bool {
	if !e.confirmDelete || len(args) == 0 || args[0] != "yes" {
		settings, err := e.store.Get(e.gatewayID)
		if err != nil {
			fmt.Fprintf(e.out, "Error: %v\n", err)
			return false
		}
		if err := gateway.DeleteConfirmation(settings).Render(e.out); err != nil {
			e.cfg.Logger.Error("render failed", slog.Any("error", err))
		}
		fmt.Fprintln(e.out, "Type 'delete yes' to confirm.")
		e.confirmDelete = true
		return false
	}

	if err := e.store.Delete(e.gatewayID); err != nil {
		fmt.Fprintf(e.out, "Error: %v\n", err)
		return false
	}
	e.cfg.Logger.Info("gateway deleted", slog.String("gateway_id", e.gatewayID))
	fmt.Fprintln(e.out, messages.GatewaySettingsDeleteSuccess)
	return true
}
