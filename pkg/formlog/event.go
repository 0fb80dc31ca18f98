package formlog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event represents a form activity event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies one opened form (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Mode is whether the form creates or updates a gateway.
	Mode Mode `cbor:"4,keyasint,omitempty"`

	// GatewayID is the gateway being edited (empty until known on create).
	GatewayID string `cbor:"5,keyasint,omitempty"`

	// Kind-specific payload (at most one of these is set).
	Change  *ChangeEvent    `cbor:"10,keyasint,omitempty"`
	Warning *WarningEvent   `cbor:"11,keyasint,omitempty"`
	Submit  *SubmitEvent    `cbor:"12,keyasint,omitempty"`
	Error   *ErrorEventData `cbor:"13,keyasint,omitempty"`
}

// NewSessionID returns a fresh form session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Stamp fills in a zero Timestamp. Producers call it before Log so that
// all sinks see the same time.
func Stamp(event Event) Event {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return event
}

// Kind classifies form events.
type Kind uint8

const (
	// KindOpen indicates a form was opened with its initial values.
	KindOpen Kind = 0
	// KindChange indicates a field value changed.
	KindChange Kind = 1
	// KindWarning indicates the delay warning was shown or hidden.
	KindWarning Kind = 2
	// KindSubmit indicates values were submitted to the handler.
	KindSubmit Kind = 3
	// KindError indicates validation or submission failed.
	KindError Kind = 4
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "OPEN"
	case KindChange:
		return "CHANGE"
	case KindWarning:
		return "WARNING"
	case KindSubmit:
		return "SUBMIT"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseKind parses a kind name, case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToUpper(s) {
	case "OPEN":
		return KindOpen, true
	case "CHANGE":
		return KindChange, true
	case "WARNING":
		return KindWarning, true
	case "SUBMIT":
		return KindSubmit, true
	case "ERROR":
		return KindError, true
	default:
		return 0, false
	}
}

// Mode indicates whether a form creates or updates a gateway.
type Mode uint8

const (
	// ModeCreate is the gateway creation form.
	ModeCreate Mode = 0
	// ModeUpdate is the general settings form of an existing gateway.
	ModeUpdate Mode = 1
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "CREATE"
	case ModeUpdate:
		return "UPDATE"
	default:
		return "UNKNOWN"
	}
}

// ChangeEvent captures a field change.
type ChangeEvent struct {
	// Field is the form field name, e.g. "schedule_anytime_delay".
	Field string `cbor:"1,keyasint"`

	// Value is the new raw value rendered as text.
	Value string `cbor:"2,keyasint"`
}

// WarningEvent captures the delay warning state.
type WarningEvent struct {
	// Shown is the new warning state.
	Shown bool `cbor:"1,keyasint"`

	// Value is the delay string that produced the state.
	Value string `cbor:"2,keyasint"`

	// MinimumMs is the threshold in milliseconds.
	MinimumMs float64 `cbor:"3,keyasint"`
}

// SubmitEvent captures a submission that reached the handler.
type SubmitEvent struct {
	// WarningShown is whether the delay warning was displayed at submit time.
	WarningShown bool `cbor:"1,keyasint"`

	// ScheduleAnytimeDelay is the submitted delay.
	ScheduleAnytimeDelay time.Duration `cbor:"2,keyasint"`

	// HandlerError is the handler's error message, if it failed.
	HandlerError string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures validation and submission failures.
type ErrorEventData struct {
	// Stage is where the failure happened ("validate" or "submit").
	Stage string `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Fields lists the offending fields for validation failures.
	Fields []string `cbor:"3,keyasint,omitempty"`
}
