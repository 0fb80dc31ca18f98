package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/formlog"
	"github.com/mindworks-software/lorawan-stack/pkg/gateway"
	"github.com/mindworks-software/lorawan-stack/pkg/persistence"
)

// Step actions.
const (
	ActionOpen          = "open"
	ActionChange        = "change"
	ActionExpand        = "expand"
	ActionCollapse      = "collapse"
	ActionExpectValue   = "expect_value"
	ActionExpectWarning = "expect_warning"
	ActionExpectText    = "expect_text"
	ActionSubmit        = "submit"
	ActionExpectStored  = "expect_stored"
	ActionDeleteDialog  = "delete_dialog"
	ActionDelete        = "delete"
)

// Runner errors.
var (
	ErrNoForm       = errors.New("no form is open")
	ErrNoDialog     = errors.New("no dialog is open")
	ErrMissingParam = errors.New("missing parameter")
	ErrBadParam     = errors.New("invalid parameter")
)

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	// Delays are the delay bounds forms are opened with, unless a scenario
	// overrides them. Zero values use config.DefaultDelays.
	Delays config.Delays

	// Logger receives operational logs. Nil uses slog.Default.
	Logger *slog.Logger

	// Events receives form activity of every form the runner opens.
	Events formlog.Logger
}

// Runner executes scenarios. Each scenario gets a fresh in-memory store.
type Runner struct {
	delays config.Delays
	logger *slog.Logger
	events formlog.Logger
}

// NewRunner creates a runner.
func NewRunner(cfg RunnerConfig) *Runner {
	r := &Runner{delays: cfg.Delays, logger: cfg.Logger, events: cfg.Events}
	if r.delays.MinimumScheduleAnytime <= 0 {
		r.delays = config.DefaultDelays()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.events == nil {
		r.events = formlog.NoopLogger{}
	}
	return r
}

// run holds the state of one scenario execution.
type run struct {
	delays    config.Delays
	store     *persistence.GatewayStore
	form      *gateway.Form
	gatewayID string
	dialog    *gateway.Confirmation
}

// RunAll runs scenarios in order.
func (r *Runner) RunAll(ctx context.Context, scenarios []*Scenario) []*Result {
	results := make([]*Result, 0, len(scenarios))
	for _, sc := range scenarios {
		results = append(results, r.Run(ctx, sc))
	}
	return results
}

// Run executes a scenario. Execution stops at the first failing step.
func (r *Runner) Run(ctx context.Context, sc *Scenario) *Result {
	start := time.Now()
	result := &Result{Scenario: sc}
	defer func() { result.Duration = time.Since(start) }()

	logger := r.logger.With(slog.String("scenario", sc.ID))
	logger.Debug("running scenario", slog.String("name", sc.Name))

	st, err := r.setup(sc)
	if err != nil {
		result.Error = fmt.Errorf("setup: %w", err)
		logger.Warn("scenario setup failed", slog.Any("error", err))
		return result
	}

	for i := range sc.Steps {
		if err := ctx.Err(); err != nil {
			result.Error = err
			return result
		}

		step := &sc.Steps[i]
		sr := r.runStep(ctx, st, step)
		sr.StepIndex = i
		result.StepResults = append(result.StepResults, sr)

		if !sr.Passed {
			result.Error = sr.failure()
			logger.Info("step failed",
				slog.Int("step", i+1),
				slog.String("action", step.Action),
				slog.Any("error", result.Error))
			return result
		}
	}

	result.Passed = true
	logger.Debug("scenario passed", slog.Int("steps", len(sc.Steps)))
	return result
}

func (sr *StepResult) failure() error {
	if sr.Error != nil {
		return fmt.Errorf("step %d (%s): %w", sr.StepIndex+1, sr.Step.Action, sr.Error)
	}
	for _, er := range sr.ExpectResults {
		if !er.Passed {
			return fmt.Errorf("step %d (%s): %s: %s", sr.StepIndex+1, sr.Step.Action, er.Key, er.Message)
		}
	}
	return fmt.Errorf("step %d (%s) failed", sr.StepIndex+1, sr.Step.Action)
}

func (r *Runner) setup(sc *Scenario) (*run, error) {
	delays, err := scenarioDelays(r.delays, sc.Delays)
	if err != nil {
		return nil, err
	}

	st := &run{delays: delays, store: persistence.NewMemoryStore()}
	schema := gateway.NewSchema(delays)
	for i, raw := range sc.Seed {
		settings, err := decodeSettings(raw)
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i+1, err)
		}
		// Seeded gateways must be savable by the form they are opened in.
		if err := schema.Validate(schema.Cast(gateway.FromSettings(settings))); err != nil {
			return nil, fmt.Errorf("seed %d: %w", i+1, err)
		}
		if err := st.store.Create(settings); err != nil {
			return nil, fmt.Errorf("seed %d: %w", i+1, err)
		}
	}
	return st, nil
}

func scenarioDelays(base config.Delays, override *Delays) (config.Delays, error) {
	if override == nil {
		return base, nil
	}
	if override.Minimum != "" {
		d, err := str2duration.ParseDuration(override.Minimum)
		if err != nil || d <= 0 {
			return base, fmt.Errorf("%w: minimum delay %q", ErrBadParam, override.Minimum)
		}
		base.MinimumScheduleAnytime = config.Duration(d)
	}
	if override.Default != "" {
		d, err := str2duration.ParseDuration(override.Default)
		if err != nil || d < 0 {
			return base, fmt.Errorf("%w: default delay %q", ErrBadParam, override.Default)
		}
		base.DefaultScheduleAnytime = config.Duration(d)
	}
	return base, nil
}

// decodeSettings converts a YAML seed entry to settings through the
// backend's JSON encoding.
func decodeSettings(raw map[string]any) (gateway.Settings, error) {
	var s gateway.Settings
	data, err := json.Marshal(raw)
	if err != nil {
		return s, err
	}
	err = json.Unmarshal(data, &s)
	return s, err
}

func (r *Runner) runStep(ctx context.Context, st *run, step *Step) *StepResult {
	start := time.Now()
	sr := &StepResult{Step: step}

	var err error
	switch step.Action {
	case ActionOpen:
		err = r.open(st, step)
	case ActionChange:
		err = change(st, step)
	case ActionExpand, ActionCollapse:
		err = setCollapsed(st, step.Action == ActionCollapse)
	case ActionExpectValue:
		sr.ExpectResults, err = expectValue(st, step)
	case ActionExpectWarning:
		sr.ExpectResults, err = expectWarning(st, step)
	case ActionExpectText:
		sr.ExpectResults, err = expectText(st, step)
	case ActionSubmit:
		sr.ExpectResults, err = submit(ctx, st, step)
	case ActionExpectStored:
		sr.ExpectResults, err = expectStored(st, step)
	case ActionDeleteDialog:
		err = deleteDialog(st)
	case ActionDelete:
		err = deleteGateway(st)
	default:
		err = fmt.Errorf("unknown action %q", step.Action)
	}

	sr.Error = err
	sr.Passed = err == nil
	for _, er := range sr.ExpectResults {
		if !er.Passed {
			sr.Passed = false
		}
	}
	sr.Duration = time.Since(start)
	return sr
}

func (r *Runner) open(st *run, step *Step) error {
	id, _ := stringParam(step.Params, "gateway_id")
	cfg := gateway.FormConfig{Delays: st.delays, Logger: r.events}

	if id != "" {
		settings, err := st.store.Get(id)
		if err != nil {
			return err
		}
		cfg.Initial = gateway.FromSettings(settings)
		cfg.Update = true
	}
	cfg.Collapsed = boolParam(step.Params, "collapsed", cfg.Update)

	st.form = gateway.NewForm(cfg)
	st.gatewayID = id
	st.dialog = nil
	return nil
}

func change(st *run, step *Step) error {
	if st.form == nil {
		return ErrNoForm
	}
	field, err := requireString(step.Params, "field")
	if err != nil {
		return err
	}
	value, ok := step.Params["value"]
	if !ok {
		return fmt.Errorf("%w: value", ErrMissingParam)
	}
	return st.form.Change(field, formValue(value))
}

// formValue converts YAML values to the types form values use.
func formValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = text(val)
		}
		return out
	case bool, string:
		return v
	case nil:
		return ""
	default:
		return text(v)
	}
}

func setCollapsed(st *run, collapsed bool) error {
	if st.form == nil {
		return ErrNoForm
	}
	st.form.SetCollapsed(collapsed)
	return nil
}

func expectValue(st *run, step *Step) ([]*ExpectResult, error) {
	if st.form == nil {
		return nil, ErrNoForm
	}
	field, err := requireString(step.Params, "field")
	if err != nil {
		return nil, err
	}

	var results []*ExpectResult
	if want, ok := step.Expect["value"]; ok {
		results = append(results, compare("value", text(want), st.form.DisplayValue(field)))
	}
	if want, ok := step.Expect["unit"]; ok {
		results = append(results, compare("unit", text(want), st.form.DisplayUnit(field)))
	}
	if want, ok := step.Expect["disabled"]; ok {
		results = append(results, compare("disabled", want, st.form.Disabled(field)))
	}
	return results, nil
}

func expectWarning(st *run, step *Step) ([]*ExpectResult, error) {
	if st.form == nil {
		return nil, ErrNoForm
	}
	var results []*ExpectResult
	if want, ok := step.Expect["shown"]; ok {
		results = append(results, compare("shown", want, st.form.ShouldDisplayWarning()))
	}
	if want, ok := step.Expect["message"]; ok {
		results = append(results, compare("message", text(want), st.form.Warning()))
	}
	return results, nil
}

func expectText(st *run, step *Step) ([]*ExpectResult, error) {
	target, _ := stringParam(step.Params, "target")

	var buf bytes.Buffer
	switch target {
	case "", "page":
		if st.form == nil {
			return nil, ErrNoForm
		}
		if err := gateway.RenderSettingsPage(&buf, st.form); err != nil {
			return nil, err
		}
	case "dialog":
		if st.dialog == nil {
			return nil, ErrNoDialog
		}
		if err := st.dialog.Render(&buf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: target %q", ErrBadParam, target)
	}
	rendered := buf.String()

	var results []*ExpectResult
	for _, want := range stringList(step.Expect["contains"]) {
		er := &ExpectResult{Key: "contains", Expected: want, Passed: strings.Contains(rendered, want)}
		if er.Passed {
			er.Message = "found " + strconv.Quote(want)
		} else {
			er.Message = "missing " + strconv.Quote(want)
			er.Actual = rendered
		}
		results = append(results, er)
	}
	for _, unwanted := range stringList(step.Expect["not_contains"]) {
		er := &ExpectResult{Key: "not_contains", Expected: unwanted, Passed: !strings.Contains(rendered, unwanted)}
		if er.Passed {
			er.Message = "absent " + strconv.Quote(unwanted)
		} else {
			er.Message = "unexpected " + strconv.Quote(unwanted)
			er.Actual = rendered
		}
		results = append(results, er)
	}
	return results, nil
}

func submit(ctx context.Context, st *run, step *Step) ([]*ExpectResult, error) {
	if st.form == nil {
		return nil, ErrNoForm
	}

	settings, err := st.form.Submit(ctx, st.store)
	wantOK := boolParam(step.Expect, "ok", true)

	results := []*ExpectResult{compare("ok", wantOK, err == nil)}
	if err == nil {
		st.gatewayID = settings.IDs.GatewayID
		return results, nil
	}
	results[0].Message += ": " + err.Error()

	if want, ok := step.Expect["error_fields"]; ok {
		var actual []string
		var verr *gateway.ValidationError
		if errors.As(err, &verr) {
			actual = verr.Fields()
		}
		results = append(results, compare("error_fields", stringList(want), actual))
	}
	return results, nil
}

func expectStored(st *run, step *Step) ([]*ExpectResult, error) {
	id, _ := stringParam(step.Params, "gateway_id")
	if id == "" {
		id = st.gatewayID
	}
	if id == "" {
		return nil, fmt.Errorf("%w: gateway_id", ErrMissingParam)
	}

	settings, err := st.store.Get(id)
	exists := err == nil
	if err != nil && !errors.Is(err, persistence.ErrGatewayNotFound) {
		return nil, err
	}

	var results []*ExpectResult
	if want, ok := step.Expect["exists"]; ok {
		results = append(results, compare("exists", want, exists))
	}
	fields, _ := step.Expect["fields"].(map[string]any)
	if len(fields) > 0 && !exists {
		return append(results, &ExpectResult{Key: "fields", Message: "gateway " + id + " is not stored"}), nil
	}
	stored := gateway.FromSettings(settings)
	for _, field := range sortedKeys(fields) {
		results = append(results, compare(field, text(fields[field]), stored.Text(field)))
	}
	return results, nil
}

func deleteDialog(st *run) error {
	if st.gatewayID == "" {
		return ErrNoForm
	}
	settings, err := st.store.Get(st.gatewayID)
	if err != nil {
		return err
	}
	c := gateway.DeleteConfirmation(settings)
	st.dialog = &c
	return nil
}

func deleteGateway(st *run) error {
	if st.gatewayID == "" {
		return ErrNoForm
	}
	if err := st.store.Delete(st.gatewayID); err != nil {
		return err
	}
	st.form = nil
	st.dialog = nil
	return nil
}
