package gateway

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mindworks-software/lorawan-stack/pkg/duration"
)

// Custom validation tags.
const (
	IDValidator    = "entity_id"
	DelayValidator = "delay"
)

// Length bounds of gateway and owner IDs.
const (
	MinIDLength = 3
	MaxIDLength = 36
)

var idRegexp = regexp.MustCompile(`^[a-z0-9](?:[-]?[a-z0-9]){2,}$`)

// IDValidatorFunc accepts lowercase alphanumeric IDs of at least three
// characters with single dashes between segments.
func IDValidatorFunc(fl validator.FieldLevel) bool {
	return idRegexp.MatchString(fl.Field().String())
}

// DelayValidatorFunc accepts a number followed by a unit code. Negative
// delays are rejected.
func DelayValidatorFunc(fl validator.FieldLevel) bool {
	p := duration.Parse(fl.Field().String())
	return p.Complete() && p.Magnitude >= 0
}

// newValidator returns a validator that knows the custom tags and reports
// fields by their form names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation(IDValidator, IDValidatorFunc)
	_ = v.RegisterValidation(DelayValidator, DelayValidatorFunc)
	return v
}

// formInput is the validated shape of cast form values. Presence is checked
// by the schema's rules; the tags here only constrain format.
type formInput struct {
	GatewayID            string `form:"ids.gateway_id" validate:"omitempty,min=3,max=36,entity_id"`
	EUI                  string `form:"ids.eui" validate:"omitempty,len=16,hexadecimal"`
	OwnerID              string `form:"owner_id" validate:"omitempty,min=3,max=36,entity_id"`
	Name                 string `form:"name" validate:"max=50"`
	Description          string `form:"description" validate:"max=2000"`
	GatewayServerAddress string `form:"gateway_server_address" validate:"max=255"`
	UpdateChannel        string `form:"update_channel" validate:"max=128"`
	FrequencyPlanID      string `form:"frequency_plan_id" validate:"max=64"`
	ScheduleAnytimeDelay string `form:"schedule_anytime_delay" validate:"omitempty,delay"`
}

func newFormInput(v Values) formInput {
	return formInput{
		GatewayID:            v.String(FieldGatewayID),
		EUI:                  v.String(FieldEUI),
		OwnerID:              v.String(FieldOwnerID),
		Name:                 v.String(FieldName),
		Description:          v.String(FieldDescription),
		GatewayServerAddress: v.String(FieldGatewayServerAddress),
		UpdateChannel:        v.String(FieldUpdateChannel),
		FrequencyPlanID:      v.String(FieldFrequencyPlanID),
		ScheduleAnytimeDelay: v.String(FieldScheduleAnytimeDelay),
	}
}
