package gateway

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Form field names. Nested backend fields use dotted paths.
const (
	FieldGatewayID            = "ids.gateway_id"
	FieldEUI                  = "ids.eui"
	FieldOwnerID              = "owner_id"
	FieldName                 = "name"
	FieldDescription          = "description"
	FieldGatewayServerAddress = "gateway_server_address"
	FieldStatusPublic         = "status_public"
	FieldAttributes           = "attributes"
	FieldAutoUpdate           = "auto_update"
	FieldUpdateChannel        = "update_channel"
	FieldFrequencyPlanID      = "frequency_plan_id"
	FieldScheduleDownlinkLate = "schedule_downlink_late"
	FieldEnforceDutyCycle     = "enforce_duty_cycle"
	FieldScheduleAnytimeDelay = "schedule_anytime_delay"
)

// Values holds raw form values keyed by field name. Text fields hold
// strings, checkboxes hold bools and the attributes field holds a
// map[string]string.
type Values map[string]any

// Clone returns a copy of v. The attributes map is copied too.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		if attrs, ok := val.(map[string]string); ok {
			val = maps.Clone(attrs)
		}
		out[k] = val
	}
	return out
}

// String returns the string value of field, or "" if it is unset or not a string.
func (v Values) String(field string) string {
	s, _ := v[field].(string)
	return s
}

// Bool returns the bool value of field, or false if it is unset or not a bool.
func (v Values) Bool(field string) bool {
	b, _ := v[field].(bool)
	return b
}

// Attributes returns the attributes map, or nil.
func (v Values) Attributes() map[string]string {
	m, _ := v[FieldAttributes].(map[string]string)
	return m
}

// Text renders the value of field for display.
func (v Values) Text(field string) string {
	switch val := v[field].(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case map[string]string:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+"="+val[k])
		}
		return strings.Join(pairs, ",")
	default:
		return fmt.Sprint(val)
	}
}
