package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/mindworks-software/lorawan-stack/pkg/duration"
)

// ErrInvalidDelay is returned when a delay cannot be decoded.
var ErrInvalidDelay = errors.New("invalid schedule anytime delay")

// Identifiers identify a gateway.
type Identifiers struct {
	GatewayID string `json:"gateway_id"`
	EUI       string `json:"eui,omitempty"`
}

// Settings are the gateway general settings as stored by the backend.
type Settings struct {
	IDs                  Identifiers       `json:"ids"`
	OwnerID              string            `json:"owner_id,omitempty"`
	Name                 string            `json:"name,omitempty"`
	Description          string            `json:"description,omitempty"`
	GatewayServerAddress string            `json:"gateway_server_address,omitempty"`
	StatusPublic         bool              `json:"status_public,omitempty"`
	Attributes           map[string]string `json:"attributes,omitempty"`
	AutoUpdate           bool              `json:"auto_update,omitempty"`
	UpdateChannel        string            `json:"update_channel,omitempty"`
	FrequencyPlanID      string            `json:"frequency_plan_id,omitempty"`
	ScheduleDownlinkLate bool              `json:"schedule_downlink_late,omitempty"`
	EnforceDutyCycle     bool              `json:"enforce_duty_cycle"`
	ScheduleAnytimeDelay Delay             `json:"schedule_anytime_delay"`
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	s.Attributes = maps.Clone(s.Attributes)
	return s
}

// Delay is a delay encoded the way the backend does: a decimal number of
// seconds with an "s" suffix, e.g. "0.523s". Decoding also accepts any
// other unit code ("523ms").
type Delay time.Duration

// Std returns d as a time.Duration.
func (d Delay) Std() time.Duration {
	return time.Duration(d)
}

// String returns the backend representation.
func (d Delay) String() string {
	return duration.FormatSeconds(time.Duration(d))
}

// MarshalJSON implements json.Marshaler.
func (d Delay) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Delay) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDelay, data)
	}
	parsed, err := ParseDelay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDelay parses a complete duration string such as "0.523s" or "523ms".
func ParseDelay(s string) (Delay, error) {
	v, ok := duration.Parse(s).Duration()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelay, s)
	}
	return Delay(v), nil
}

// FromSettings converts backend settings into form values. The delay is
// shown in seconds, the unit the console's unit input uses for stored
// delays, so "523ms" becomes "0.523s".
func FromSettings(s Settings) Values {
	v := Values{
		FieldGatewayID:            s.IDs.GatewayID,
		FieldEUI:                  s.IDs.EUI,
		FieldName:                 s.Name,
		FieldDescription:          s.Description,
		FieldGatewayServerAddress: s.GatewayServerAddress,
		FieldStatusPublic:         s.StatusPublic,
		FieldAutoUpdate:           s.AutoUpdate,
		FieldUpdateChannel:        s.UpdateChannel,
		FieldFrequencyPlanID:      s.FrequencyPlanID,
		FieldScheduleDownlinkLate: s.ScheduleDownlinkLate,
		FieldEnforceDutyCycle:     s.EnforceDutyCycle,
		FieldScheduleAnytimeDelay: s.ScheduleAnytimeDelay.String(),
	}
	if s.OwnerID != "" {
		v[FieldOwnerID] = s.OwnerID
	}
	if len(s.Attributes) > 0 {
		v[FieldAttributes] = maps.Clone(s.Attributes)
	}
	return v
}
