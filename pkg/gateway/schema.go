package gateway

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/duration"
	"github.com/mindworks-software/lorawan-stack/pkg/messages"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// FieldKind is the value type a field holds.
type FieldKind uint8

const (
	KindText FieldKind = iota
	KindBool
	KindMap
	KindDuration
)

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// FieldRule describes how the schema casts and checks one field.
type FieldRule struct {
	Name     string
	Kind     FieldKind
	Default  any
	Required bool
}

// Schema casts raw form values and validates them before submission.
type Schema struct {
	rules    []FieldRule
	validate *validator.Validate
}

// NewSchema returns the schema of the general settings form. The delay
// default is taken from delays and rendered in seconds.
func NewSchema(delays config.Delays) *Schema {
	return &Schema{
		rules: []FieldRule{
			{Name: FieldOwnerID, Kind: KindText},
			{Name: FieldGatewayID, Kind: KindText, Required: true},
			{Name: FieldEUI, Kind: KindText},
			{Name: FieldName, Kind: KindText},
			{Name: FieldDescription, Kind: KindText},
			{Name: FieldGatewayServerAddress, Kind: KindText},
			{Name: FieldStatusPublic, Kind: KindBool, Default: false},
			{Name: FieldAttributes, Kind: KindMap},
			{Name: FieldAutoUpdate, Kind: KindBool, Default: false},
			{Name: FieldUpdateChannel, Kind: KindText},
			{Name: FieldFrequencyPlanID, Kind: KindText},
			{Name: FieldScheduleDownlinkLate, Kind: KindBool, Default: false},
			{Name: FieldEnforceDutyCycle, Kind: KindBool, Default: true},
			{
				Name:     FieldScheduleAnytimeDelay,
				Kind:     KindDuration,
				Default:  duration.FormatSeconds(delays.DefaultScheduleAnytime.Std()),
				Required: true,
			},
		},
		validate: newValidator(),
	}
}

// ForCreate returns a copy of s for the creation form, where the owner must
// be selected.
func (s *Schema) ForCreate() *Schema {
	rules := make([]FieldRule, len(s.rules))
	copy(rules, s.rules)
	for i := range rules {
		if rules[i].Name == FieldOwnerID {
			rules[i].Required = true
		}
	}
	return &Schema{rules: rules, validate: s.validate}
}

// Rules returns the field rules in form order.
func (s *Schema) Rules() []FieldRule {
	out := make([]FieldRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Rule returns the rule for field.
func (s *Schema) Rule(field string) (FieldRule, bool) {
	for _, r := range s.rules {
		if r.Name == field {
			return r, true
		}
	}
	return FieldRule{}, false
}

// Defaults returns the values of an empty, cast form.
func (s *Schema) Defaults() Values {
	return s.Cast(nil)
}

// Cast normalizes raw form values. Missing fields get their defaults,
// strings are trimmed, the EUI is upper-cased, textual booleans become
// bools and attributes with empty keys are dropped. Values of the wrong
// type are kept for Validate to report. Cast never fails and does not
// modify its input.
func (s *Schema) Cast(v Values) Values {
	out := v.Clone()
	for _, r := range s.rules {
		val, ok := out[r.Name]
		if ok && val != nil {
			val = castValue(r.Kind, val)
		}
		if val == nil || val == "" && r.Kind == KindDuration {
			if r.Default != nil {
				out[r.Name] = r.Default
			} else {
				delete(out, r.Name)
			}
			continue
		}
		out[r.Name] = val
	}
	if eui, ok := out[FieldEUI].(string); ok {
		out[FieldEUI] = strings.ToUpper(eui)
	}
	return out
}

func castValue(kind FieldKind, val any) any {
	switch kind {
	case KindText, KindDuration:
		switch v := val.(type) {
		case string:
			return strings.TrimSpace(v)
		case int, int64, float64:
			return fmt.Sprint(v)
		}
	case KindBool:
		if v, ok := val.(string); ok {
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
		}
	case KindMap:
		return castAttributes(val)
	}
	return val
}

func castAttributes(val any) any {
	out := make(map[string]string)
	switch m := val.(type) {
	case map[string]string:
		for k, v := range m {
			if k = strings.TrimSpace(k); k != "" {
				out[k] = v
			}
		}
	case map[string]any:
		for k, v := range m {
			s, ok := v.(string)
			if !ok {
				return val
			}
			if k = strings.TrimSpace(k); k != "" {
				out[k] = s
			}
		}
	default:
		return val
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FieldError is a validation failure of a single field.
type FieldError struct {
	Field   string
	Message messages.Descriptor
	Values  map[string]any
}

// Error returns the formatted message.
func (e FieldError) Error() string {
	return e.Field + ": " + messages.Format(e.Message, e.Values)
}

// Text returns the formatted message without the field prefix.
func (e FieldError) Text() string {
	return messages.Format(e.Message, e.Values)
}

// ValidationError lists the field errors of a rejected submission.
type ValidationError struct {
	Errors []FieldError
}

// Error joins the field errors.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Fields returns the names of the offending fields.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = fe.Field
	}
	return out
}

// For returns the first error of field.
func (e *ValidationError) For(field string) (FieldError, bool) {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// Validate checks cast values. It returns a *ValidationError or nil.
// The delay warning plays no part here: a delay below the minimum is valid.
func (s *Schema) Validate(v Values) error {
	var errs []FieldError
	bad := make(map[string]bool)

	for _, r := range s.rules {
		val, present := v[r.Name]
		if present && val != nil && !kindMatches(r.Kind, val) {
			errs = append(errs, newFieldError(r.Name, messages.ValidateInvalid, nil))
			bad[r.Name] = true
			continue
		}
		if r.Required && isEmpty(val) {
			errs = append(errs, newFieldError(r.Name, messages.ValidateRequired, nil))
			bad[r.Name] = true
		}
	}

	if err := s.validate.Struct(newFormInput(v)); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate form: %w", err)
		}
		for _, fe := range verrs {
			if bad[fe.Field()] {
				continue
			}
			errs = append(errs, translate(fe))
			bad[fe.Field()] = true
		}
	}

	if len(errs) == 0 {
		return nil
	}
	s.sortErrors(errs)
	return &ValidationError{Errors: errs}
}

// sortErrors orders errors by rule order so that output is stable.
func (s *Schema) sortErrors(errs []FieldError) {
	pos := make(map[string]int, len(s.rules))
	for i, r := range s.rules {
		pos[r.Name] = i
	}
	for i := 1; i < len(errs); i++ {
		for j := i; j > 0 && pos[errs[j].Field] < pos[errs[j-1].Field]; j-- {
			errs[j], errs[j-1] = errs[j-1], errs[j]
		}
	}
}

func translate(fe validator.FieldError) FieldError {
	switch fe.Tag() {
	case "min":
		return newFieldError(fe.Field(), messages.ValidateTooShort, map[string]any{"min": fe.Param()})
	case "max":
		return newFieldError(fe.Field(), messages.ValidateTooLong, map[string]any{"max": fe.Param()})
	case "len", "hexadecimal":
		return newFieldError(fe.Field(), messages.ValidateHexLength, map[string]any{"length": 16})
	case IDValidator:
		return newFieldError(fe.Field(), messages.ValidateIdFormat, nil)
	case DelayValidator:
		return newFieldError(fe.Field(), messages.ValidateDuration, nil)
	default:
		return newFieldError(fe.Field(), messages.ValidateInvalid, nil)
	}
}

func newFieldError(field string, msg messages.Descriptor, values map[string]any) FieldError {
	all := map[string]any{"field": FieldTitle(field)}
	for k, v := range values {
		all[k] = v
	}
	return FieldError{Field: field, Message: msg, Values: all}
}

func kindMatches(kind FieldKind, val any) bool {
	switch kind {
	case KindText, KindDuration:
		_, ok := val.(string)
		return ok
	case KindBool:
		_, ok := val.(bool)
		return ok
	case KindMap:
		_, ok := val.(map[string]string)
		return ok
	default:
		return false
	}
}

func isEmpty(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}

// ToSettings validates cast values and converts them to Settings.
func (s *Schema) ToSettings(v Values) (Settings, error) {
	if err := s.Validate(v); err != nil {
		return Settings{}, err
	}
	delay, err := ParseDelay(v.String(FieldScheduleAnytimeDelay))
	if err != nil {
		return Settings{}, err
	}
	settings := Settings{
		IDs: Identifiers{
			GatewayID: v.String(FieldGatewayID),
			EUI:       v.String(FieldEUI),
		},
		OwnerID:              v.String(FieldOwnerID),
		Name:                 v.String(FieldName),
		Description:          v.String(FieldDescription),
		GatewayServerAddress: v.String(FieldGatewayServerAddress),
		StatusPublic:         v.Bool(FieldStatusPublic),
		AutoUpdate:           v.Bool(FieldAutoUpdate),
		UpdateChannel:        v.String(FieldUpdateChannel),
		FrequencyPlanID:      v.String(FieldFrequencyPlanID),
		ScheduleDownlinkLate: v.Bool(FieldScheduleDownlinkLate),
		EnforceDutyCycle:     v.Bool(FieldEnforceDutyCycle),
		ScheduleAnytimeDelay: delay,
	}
	if attrs := v.Attributes(); len(attrs) > 0 {
		settings.Attributes = maps.Clone(attrs)
	}
	return settings, nil
}
