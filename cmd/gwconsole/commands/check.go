package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/duration"
	"github.com/mindworks-software/lorawan-stack/pkg/gateway"
)

// CheckOptions configures the check command.
type CheckOptions struct {
	Delays config.Delays

	// Create checks the values against the creation form, which requires
	// an owner.
	Create bool
}

// RunCheck reads form values from a YAML file, casts and validates them
// the way the settings form does on submit and reports the result. Keys are
// form field names, e.g. "ids.gateway_id" or "schedule_anytime_delay".
func RunCheck(path string, opts CheckOptions, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse settings: %w", err)
	}

	return Check(valuesFromYAML(raw), opts, w)
}

// Check casts and validates values and writes a report to w. It returns an
// error wrapping ErrFailed if validation fails. The delay warning is
// reported but never fails the check.
func Check(values gateway.Values, opts CheckOptions, w io.Writer) error {
	form := gateway.NewForm(gateway.FormConfig{
		Initial: values,
		Update:  !opts.Create,
		Delays:  opts.Delays,
	})
	schema := form.Schema()
	cast := schema.Cast(values)

	for _, rule := range schema.Rules() {
		if text := cast.Text(rule.Name); text != "" {
			fmt.Fprintf(w, "%-24s %s\n", rule.Name+":", text)
		}
	}
	fmt.Fprintln(w)

	if form.ShouldDisplayWarning() {
		fmt.Fprintf(w, "Warning: %s\n", form.Warning())
	}

	settings, err := schema.ToSettings(cast)
	if err != nil {
		var verr *gateway.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for _, fe := range verr.Errors {
			fmt.Fprintf(w, "Error: %s: %s\n", fe.Field, fe.Text())
		}
		return fmt.Errorf("%w: %d invalid field(s)", ErrFailed, len(verr.Errors))
	}

	delay := settings.ScheduleAnytimeDelay.Std()
	fmt.Fprintf(w, "Schedule any time delay: %s (%s)\n",
		duration.FormatMilliseconds(delay), duration.Humanize(delay))
	fmt.Fprintln(w, "OK")
	return nil
}

// valuesFromYAML converts decoded YAML to form values. Attribute maps are
// flattened to map[string]string; other scalars are kept as decoded except
// numbers, which become text.
func valuesFromYAML(raw map[string]any) gateway.Values {
	values := make(gateway.Values, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case map[string]any:
			attrs := make(map[string]string, len(v))
			for ak, av := range v {
				attrs[ak] = fmt.Sprint(av)
			}
			values[k] = attrs
		case string, bool, nil:
			values[k] = v
		default:
			values[k] = fmt.Sprint(v)
		}
	}
	return values
}
