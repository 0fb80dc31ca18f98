package gateway

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayJSON(t *testing.T) {
	data, err := json.Marshal(Delay(523 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, `"0.523s"`, string(data))

	tests := []struct {
		input string
		want  time.Duration
	}{
		{`"0.523s"`, 523 * time.Millisecond},
		{`"523ms"`, 523 * time.Millisecond},
		{`"1m"`, time.Minute},
		{`null`, 0},
	}
	for _, tt := range tests {
		var d Delay
		require.NoError(t, json.Unmarshal([]byte(tt.input), &d), tt.input)
		assert.Equal(t, tt.want, d.Std(), tt.input)
	}
}

func TestDelayJSONRejectsInvalid(t *testing.T) {
	for _, input := range []string{`"ms"`, `"5x"`, `"523"`, `523`, `true`} {
		var d Delay
		err := json.Unmarshal([]byte(input), &d)
		assert.True(t, errors.Is(err, ErrInvalidDelay), "input %s: err = %v", input, err)
	}
}

func TestParseDelay(t *testing.T) {
	d, err := ParseDelay("1.5s")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d.Std())

	_, err = ParseDelay("")
	assert.ErrorIs(t, err, ErrInvalidDelay)
}

func TestSettingsJSON(t *testing.T) {
	input := `{
		"ids": {"gateway_id": "test-gateway", "eui": "0000000000000000"},
		"name": "Test Gateway",
		"description": "Gateway for testing gateway general settings",
		"schedule_anytime_delay": "523ms",
		"enforce_duty_cycle": true,
		"gateway_server_address": "localhost"
	}`

	var s Settings
	require.NoError(t, json.Unmarshal([]byte(input), &s))
	assert.Equal(t, "test-gateway", s.IDs.GatewayID)
	assert.Equal(t, 523*time.Millisecond, s.ScheduleAnytimeDelay.Std())
	assert.True(t, s.EnforceDutyCycle)

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, "0.523s", raw["schedule_anytime_delay"])
	assert.NotContains(t, raw, "attributes")
}

func TestFromSettings(t *testing.T) {
	s := Settings{
		IDs:                  Identifiers{GatewayID: "test-gateway", EUI: "0000000000000000"},
		Name:                 "Test Gateway",
		Attributes:           map[string]string{"site": "roof"},
		EnforceDutyCycle:     true,
		ScheduleAnytimeDelay: Delay(523 * time.Millisecond),
	}

	v := FromSettings(s)
	assert.Equal(t, "test-gateway", v.String(FieldGatewayID))
	assert.Equal(t, "0.523s", v.String(FieldScheduleAnytimeDelay))
	assert.Equal(t, true, v[FieldEnforceDutyCycle])
	assert.NotContains(t, v, FieldOwnerID)

	// The attributes map is not shared.
	v.Attributes()["site"] = "cellar"
	assert.Equal(t, "roof", s.Attributes["site"])
}

func TestSettingsClone(t *testing.T) {
	s := Settings{Attributes: map[string]string{"a": "1"}}
	c := s.Clone()
	c.Attributes["a"] = "2"
	assert.Equal(t, "1", s.Attributes["a"])
}
