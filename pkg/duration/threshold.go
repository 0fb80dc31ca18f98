package duration

// Verdict is the outcome of a minimum threshold check.
type Verdict uint8

const (
	// Indeterminate means the unit was not recognized and no comparison was made.
	Indeterminate Verdict = iota

	// NotBelow means the value is at or above the minimum, or has no magnitude.
	NotBelow

	// Below means the value is strictly below the minimum.
	Below
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case Indeterminate:
		return "INDETERMINATE"
	case NotBelow:
		return "NOT_BELOW"
	case Below:
		return "BELOW"
	default:
		return "UNKNOWN"
	}
}

// IsBelowMinimum reports whether input, converted to milliseconds, is below
// minimumMs. minimumMs is expected to be positive.
//
// An unrecognized unit yields Indeterminate. A recognized unit without a
// magnitude (e.g. "ms") yields NotBelow.
func IsBelowMinimum(input string, minimumMs float64) Verdict {
	p := Parse(input)
	if !p.HasUnit() {
		return Indeterminate
	}
	if !p.HasMagnitude {
		return NotBelow
	}
	if p.Magnitude*p.Unit.Multiplier() < minimumMs {
		return Below
	}
	return NotBelow
}

// ShouldWarn reports whether a below-minimum warning should be shown for
// input. Indeterminate results do not warn.
func ShouldWarn(input string, minimumMs float64) bool {
	return IsBelowMinimum(input, minimumMs) == Below
}
