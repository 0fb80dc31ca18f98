package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mindworks-software/lorawan-stack/internal/scenario"
	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/formlog"
)

// ScenarioOptions configures the scenarios command.
type ScenarioOptions struct {
	Delays  config.Delays
	Logger  *slog.Logger
	Events  formlog.Logger
	Format  string // text or json
	Verbose bool
}

// RunScenarios loads and runs every scenario in dir. A scenario file path
// runs that scenario alone. It returns an error wrapping ErrFailed if any
// scenario fails.
func RunScenarios(ctx context.Context, path string, opts ScenarioOptions, w io.Writer) error {
	scenarios, err := loadScenarios(path)
	if err != nil {
		return err
	}

	var reporter scenario.Reporter
	switch opts.Format {
	case "", "text":
		reporter = scenario.NewTextReporter(w, opts.Verbose)
	case "json":
		reporter = scenario.NewJSONReporter(w, true)
	default:
		return fmt.Errorf("unknown format: %s (supported: text, json)", opts.Format)
	}

	runner := scenario.NewRunner(scenario.RunnerConfig{
		Delays: opts.Delays,
		Logger: opts.Logger,
		Events: opts.Events,
	})
	summary := scenario.Summarize(path, runner.RunAll(ctx, scenarios))
	reporter.ReportSummary(summary)

	if summary.FailCount > 0 {
		return fmt.Errorf("%w: %d of %d scenario(s)", ErrFailed, summary.FailCount, len(summary.Results))
	}
	return nil
}

func loadScenarios(path string) ([]*scenario.Scenario, error) {
	if isDir(path) {
		return scenario.LoadDirectory(path)
	}
	sc, err := scenario.LoadScenario(path)
	if err != nil {
		return nil, err
	}
	return []*scenario.Scenario{sc}, nil
}
