package gateway

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindworks-software/lorawan-stack/pkg/config"
	"github.com/mindworks-software/lorawan-stack/pkg/messages"
)

func testSchema() *Schema {
	return NewSchema(config.DefaultDelays())
}

func validValues() Values {
	return Values{
		FieldGatewayID:            "test-gateway",
		FieldEUI:                  "0000000000000000",
		FieldName:                 "Test Gateway",
		FieldGatewayServerAddress: "localhost",
		FieldEnforceDutyCycle:     true,
		FieldScheduleAnytimeDelay: "523ms",
	}
}

func TestSchemaDefaults(t *testing.T) {
	d := testSchema().Defaults()

	assert.Equal(t, true, d[FieldEnforceDutyCycle])
	assert.Equal(t, false, d[FieldStatusPublic])
	assert.Equal(t, false, d[FieldAutoUpdate])
	assert.Equal(t, false, d[FieldScheduleDownlinkLate])
	assert.Equal(t, "0.53s", d[FieldScheduleAnytimeDelay])
	assert.NotContains(t, d, FieldGatewayID)
	assert.NotContains(t, d, FieldAttributes)
}

func TestSchemaDefaultDelayFollowsConfig(t *testing.T) {
	delays := config.DefaultDelays()
	delays.DefaultScheduleAnytime = config.Duration(2 * time.Second)

	d := NewSchema(delays).Defaults()
	assert.Equal(t, "2s", d[FieldScheduleAnytimeDelay])
}

func TestSchemaCast(t *testing.T) {
	in := Values{
		FieldGatewayID:            "  test-gateway ",
		FieldEUI:                  "00000000000000ab",
		FieldStatusPublic:         "true",
		FieldAutoUpdate:           "not-a-bool",
		FieldAttributes:           map[string]string{"site": "roof", " ": "dropped"},
		FieldScheduleAnytimeDelay: " 523ms ",
		FieldName:                 42,
		"unrelated":               "kept",
	}

	out := testSchema().Cast(in)

	assert.Equal(t, "test-gateway", out[FieldGatewayID])
	assert.Equal(t, "00000000000000AB", out[FieldEUI])
	assert.Equal(t, true, out[FieldStatusPublic])
	assert.Equal(t, "not-a-bool", out[FieldAutoUpdate], "uncastable values are kept")
	assert.Equal(t, map[string]string{"site": "roof"}, out[FieldAttributes])
	assert.Equal(t, "523ms", out[FieldScheduleAnytimeDelay])
	assert.Equal(t, "42", out[FieldName])
	assert.Equal(t, "kept", out["unrelated"])

	// The input is untouched.
	assert.Equal(t, "  test-gateway ", in[FieldGatewayID])
	assert.Len(t, in[FieldAttributes], 2)
}

func TestSchemaCastEmptyDelayGetsDefault(t *testing.T) {
	out := testSchema().Cast(Values{FieldScheduleAnytimeDelay: "   "})
	assert.Equal(t, "0.53s", out[FieldScheduleAnytimeDelay])
}

func TestSchemaCastDropsEmptyAttributes(t *testing.T) {
	out := testSchema().Cast(Values{FieldAttributes: map[string]string{"": "x"}})
	assert.NotContains(t, out, FieldAttributes)

	out = testSchema().Cast(Values{FieldAttributes: map[string]any{"k": "v"}})
	assert.Equal(t, map[string]string{"k": "v"}, out[FieldAttributes])
}

func TestSchemaCastIsIdempotent(t *testing.T) {
	s := testSchema()
	once := s.Cast(validValues())
	assert.Equal(t, once, s.Cast(once))
}

func TestSchemaValidateAcceptsShortDelay(t *testing.T) {
	s := testSchema()
	for _, delay := range []string{"523ms", "0.523s", "0s", "1ms"} {
		v := validValues()
		v[FieldScheduleAnytimeDelay] = delay
		assert.NoError(t, s.Validate(s.Cast(v)), "delay %q", delay)
	}
}

func TestSchemaValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Values)
		field   string
		message messages.Descriptor
	}{
		{"missing id", func(v Values) { delete(v, FieldGatewayID) }, FieldGatewayID, messages.ValidateRequired},
		{"empty id", func(v Values) { v[FieldGatewayID] = "" }, FieldGatewayID, messages.ValidateRequired},
		{"id format", func(v Values) { v[FieldGatewayID] = "Test_Gateway" }, FieldGatewayID, messages.ValidateIdFormat},
		{"id too short", func(v Values) { v[FieldGatewayID] = "ab" }, FieldGatewayID, messages.ValidateTooShort},
		{"id too long", func(v Values) { v[FieldGatewayID] = strings.Repeat("a", 37) }, FieldGatewayID, messages.ValidateTooLong},
		{"eui short", func(v Values) { v[FieldEUI] = "0000" }, FieldEUI, messages.ValidateHexLength},
		{"eui not hex", func(v Values) { v[FieldEUI] = "000000000000000G" }, FieldEUI, messages.ValidateHexLength},
		{"name too long", func(v Values) { v[FieldName] = strings.Repeat("n", 51) }, FieldName, messages.ValidateTooLong},
		{"delay unit only", func(v Values) { v[FieldScheduleAnytimeDelay] = "ms" }, FieldScheduleAnytimeDelay, messages.ValidateDuration},
		{"delay unknown unit", func(v Values) { v[FieldScheduleAnytimeDelay] = "5x" }, FieldScheduleAnytimeDelay, messages.ValidateDuration},
		{"delay no unit", func(v Values) { v[FieldScheduleAnytimeDelay] = "523" }, FieldScheduleAnytimeDelay, messages.ValidateDuration},
		{"delay negative", func(v Values) { v[FieldScheduleAnytimeDelay] = "-1s" }, FieldScheduleAnytimeDelay, messages.ValidateDuration},
		{"wrong type", func(v Values) { v[FieldStatusPublic] = "maybe" }, FieldStatusPublic, messages.ValidateInvalid},
		{"attributes wrong type", func(v Values) { v[FieldAttributes] = []string{"x"} }, FieldAttributes, messages.ValidateInvalid},
	}

	s := testSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validValues()
			tt.mutate(v)

			err := s.Validate(s.Cast(v))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			fe, ok := verr.For(tt.field)
			require.True(t, ok, "no error for %s in %v", tt.field, verr.Fields())
			assert.Equal(t, tt.message, fe.Message)
			assert.Len(t, verr.Errors, 1, "errors: %v", verr.Fields())
		})
	}
}

func TestSchemaValidateMessages(t *testing.T) {
	s := testSchema()
	v := validValues()
	delete(v, FieldGatewayID)
	v[FieldEUI] = "00"
	v[FieldName] = strings.Repeat("n", 51)

	err := s.Validate(s.Cast(v))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	assert.Equal(t, []string{FieldGatewayID, FieldEUI, FieldName}, verr.Fields())
	assert.Equal(t, "Gateway ID is required", verr.Errors[0].Text())
	assert.Equal(t, "Gateway EUI must be 16 hexadecimal characters", verr.Errors[1].Text())
	assert.Equal(t, "Gateway Name must be at most 50 characters", verr.Errors[2].Text())
	assert.Contains(t, err.Error(), "ids.gateway_id: Gateway ID is required")
}

func TestSchemaValidateShortIDMessage(t *testing.T) {
	s := testSchema()
	v := validValues()
	v[FieldGatewayID] = "gw"

	err := s.Validate(s.Cast(v))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "Gateway ID must be at least 3 characters", verr.Errors[0].Text())
}

func TestSchemaForCreateRequiresOwner(t *testing.T) {
	update := testSchema()
	create := update.ForCreate()

	v := update.Cast(validValues())
	assert.NoError(t, update.Validate(v))

	err := create.Validate(v)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fe, ok := verr.For(FieldOwnerID)
	require.True(t, ok)
	assert.Equal(t, "Owner is required", fe.Text())

	v[FieldOwnerID] = "gtw-settings-test-user"
	assert.NoError(t, create.Validate(v))

	// The update schema is unaffected.
	rule, _ := update.Rule(FieldOwnerID)
	assert.False(t, rule.Required)
}

func TestSchemaToSettings(t *testing.T) {
	s := testSchema()
	v := validValues()
	v[FieldAttributes] = map[string]string{"site": "roof"}

	settings, err := s.ToSettings(s.Cast(v))
	require.NoError(t, err)

	assert.Equal(t, Identifiers{GatewayID: "test-gateway", EUI: "0000000000000000"}, settings.IDs)
	assert.Equal(t, "Test Gateway", settings.Name)
	assert.True(t, settings.EnforceDutyCycle)
	assert.Equal(t, 523*time.Millisecond, settings.ScheduleAnytimeDelay.Std())
	assert.Equal(t, map[string]string{"site": "roof"}, settings.Attributes)

	_, err = s.ToSettings(Values{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFromSettingsToSettingsRoundTrip(t *testing.T) {
	s := testSchema()
	in := Settings{
		IDs:                  Identifiers{GatewayID: "test-gateway", EUI: "0011223344556677"},
		Name:                 "Test Gateway",
		Description:          "Gateway for testing gateway general settings",
		GatewayServerAddress: "localhost",
		StatusPublic:         true,
		Attributes:           map[string]string{"a": "b"},
		AutoUpdate:           true,
		UpdateChannel:        "beta",
		FrequencyPlanID:      "EU_863_870",
		ScheduleDownlinkLate: true,
		EnforceDutyCycle:     true,
		ScheduleAnytimeDelay: Delay(523 * time.Millisecond),
	}

	out, err := s.ToSettings(s.Cast(FromSettings(in)))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFieldKindString(t *testing.T) {
	assert.Equal(t, "duration", KindDuration.String())
	assert.Equal(t, "unknown", FieldKind(99).String())
}
