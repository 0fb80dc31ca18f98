package gateway

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/formlog"
)

// Form errors.
var (
	ErrUnknownField  = errors.New("unknown field")
	ErrFieldDisabled = errors.New("field is disabled")
)

// SubmitRequest is what the form hands to its SubmitHandler.
type SubmitRequest struct {
	// Update is false for the creation form.
	Update bool

	// Settings are the cast and validated values.
	Settings Settings

	// WarningShown is whether the delay warning was displayed at submit time.
	// It is informational only.
	WarningShown bool
}

// SubmitHandler receives submitted settings.
type SubmitHandler interface {
	Submit(ctx context.Context, req SubmitRequest) error
}

// SubmitFunc adapts a function to SubmitHandler.
type SubmitFunc func(ctx context.Context, req SubmitRequest) error

// Submit calls f.
func (f SubmitFunc) Submit(ctx context.Context, req SubmitRequest) error {
	return f(ctx, req)
}

// FormConfig configures a Form.
type FormConfig struct {
	// Initial holds the values the form opens with. They are cast with the
	// form's schema, so a nil map yields an empty form with defaults.
	Initial Values

	// Update selects the general settings form of an existing gateway:
	// the gateway ID is read-only and there is no owner selection.
	Update bool

	// Delays holds the delay bounds. Zero values use config.DefaultDelays.
	Delays config.Delays

	// Collapsed starts the LoRaWAN options section collapsed.
	Collapsed bool

	// Logger receives form activity. Nil disables it.
	Logger formlog.Logger
}

// Form is the gateway data form. It is not safe for concurrent use.
type Form struct {
	schema    *Schema
	delays    config.Delays
	update    bool
	collapsed bool
	initial   Values
	values    Values
	warning   *DelayWarning
	logger    formlog.Logger
	session   string
}

// NewForm opens a form.
func NewForm(cfg FormConfig) *Form {
	delays := cfg.Delays
	if delays.MinimumScheduleAnytime <= 0 {
		delays = config.DefaultDelays()
	}
	schema := NewSchema(delays)
	if !cfg.Update {
		schema = schema.ForCreate()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = formlog.NoopLogger{}
	}

	initial := schema.Cast(cfg.Initial)
	f := &Form{
		schema:    schema,
		delays:    delays,
		update:    cfg.Update,
		collapsed: cfg.Collapsed,
		initial:   initial,
		values:    initial.Clone(),
		logger:    logger,
		session:   formlog.NewSessionID(),
	}
	f.warning = NewDelayWarning(initial.Text(FieldScheduleAnytimeDelay), delays.MinimumMs())

	f.log(formlog.Event{Kind: formlog.KindOpen})
	if f.warning.ShouldDisplay() {
		f.logWarning()
	}
	return f
}

// SessionID identifies this form in the activity log.
func (f *Form) SessionID() string { return f.session }

// Update reports whether this is the settings form of an existing gateway.
func (f *Form) Update() bool { return f.update }

// Delays returns the delay bounds the form was opened with.
func (f *Form) Delays() config.Delays { return f.delays }

// Schema returns the form's schema.
func (f *Form) Schema() *Schema { return f.schema }

// Values returns a copy of the current values.
func (f *Form) Values() Values { return f.values.Clone() }

// Value returns the current value of field as text.
func (f *Form) Value(field string) string { return f.values.Text(field) }

// Change sets field to value. Changing the delay recomputes the warning.
func (f *Form) Change(field string, value any) error {
	if _, ok := f.schema.Rule(field); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if f.Disabled(field) {
		return fmt.Errorf("%w: %s", ErrFieldDisabled, field)
	}

	f.values[field] = value
	f.log(formlog.Event{
		Kind:   formlog.KindChange,
		Change: &formlog.ChangeEvent{Field: field, Value: f.values.Text(field)},
	})

	if field == FieldScheduleAnytimeDelay {
		if f.warning.OnChange(f.values.Text(field)) {
			f.logWarning()
		}
	}
	return nil
}

// Disabled reports whether field is read-only in this form.
func (f *Form) Disabled(field string) bool {
	return f.update && field == FieldGatewayID
}

// ShouldDisplayWarning reports whether the delay warning is shown.
func (f *Form) ShouldDisplayWarning() bool {
	return f.warning.ShouldDisplay()
}

// Warning returns the delay warning text, or "" when it is not shown.
func (f *Form) Warning() string {
	return f.warning.Message()
}

// Collapsed reports whether the LoRaWAN options section is collapsed.
func (f *Form) Collapsed() bool { return f.collapsed }

// SetCollapsed expands or collapses the LoRaWAN options section.
func (f *Form) SetCollapsed(collapsed bool) { f.collapsed = collapsed }

// Dirty reports whether values differ from the initial values.
func (f *Form) Dirty() bool {
	return !reflect.DeepEqual(f.values, f.initial)
}

// Reset restores the initial values.
func (f *Form) Reset() {
	f.values = f.initial.Clone()
	if f.warning.OnChange(f.values.Text(FieldScheduleAnytimeDelay)) {
		f.logWarning()
	}
}

// Submit casts and validates the values and passes them to h. Schema
// errors block submission; the delay warning does not. On success the
// submitted values become the form's initial values.
func (f *Form) Submit(ctx context.Context, h SubmitHandler) (Settings, error) {
	cast := f.schema.Cast(f.values)
	settings, err := f.schema.ToSettings(cast)
	if err != nil {
		data := &formlog.ErrorEventData{Stage: "validate", Message: err.Error()}
		var verr *ValidationError
		if errors.As(err, &verr) {
			data.Fields = verr.Fields()
		}
		f.log(formlog.Event{Kind: formlog.KindError, Error: data})
		return Settings{}, err
	}

	req := SubmitRequest{
		Update:       f.update,
		Settings:     settings,
		WarningShown: f.warning.ShouldDisplay(),
	}
	err = h.Submit(ctx, req)

	event := &formlog.SubmitEvent{
		WarningShown:         req.WarningShown,
		ScheduleAnytimeDelay: settings.ScheduleAnytimeDelay.Std(),
	}
	if err != nil {
		event.HandlerError = err.Error()
	}
	f.log(formlog.Event{Kind: formlog.KindSubmit, Submit: event})

	if err != nil {
		return Settings{}, fmt.Errorf("submit gateway %q: %w", settings.IDs.GatewayID, err)
	}

	f.initial = cast
	f.values = cast.Clone()
	if f.warning.OnChange(f.values.Text(FieldScheduleAnytimeDelay)) {
		f.logWarning()
	}
	return settings, nil
}

func (f *Form) logWarning() {
	f.log(formlog.Event{
		Kind: formlog.KindWarning,
		Warning: &formlog.WarningEvent{
			Shown:     f.warning.ShouldDisplay(),
			Value:     f.warning.Value(),
			MinimumMs: f.warning.MinimumMs(),
		},
	})
}

func (f *Form) log(event formlog.Event) {
	event.SessionID = f.session
	event.GatewayID = f.values.String(FieldGatewayID)
	if f.update {
		event.Mode = formlog.ModeUpdate
	}
	f.logger.Log(formlog.Stamp(event))
}
