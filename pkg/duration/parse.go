package duration

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Unit is a duration unit code accepted by the console unit inputs.
type Unit string

const (
	// UnitMillisecond is "ms".
	UnitMillisecond Unit = "ms"

	// UnitSecond is "s".
	UnitSecond Unit = "s"

	// UnitMinute is "m".
	UnitMinute Unit = "m"

	// UnitHour is "h".
	UnitHour Unit = "h"
)

// Units lists the recognized unit codes in ascending order of size.
var Units = []Unit{UnitMillisecond, UnitSecond, UnitMinute, UnitHour}

// Milliseconds per unit.
const (
	MillisecondsPerSecond = 1000
	MillisecondsPerMinute = 60 * MillisecondsPerSecond
	MillisecondsPerHour   = 60 * MillisecondsPerMinute
)

// ParseUnit returns the unit for an exact unit code.
func ParseUnit(s string) (Unit, bool) {
	switch Unit(s) {
	case UnitMillisecond, UnitSecond, UnitMinute, UnitHour:
		return Unit(s), true
	default:
		return "", false
	}
}

// Valid reports whether u is one of the recognized unit codes.
func (u Unit) Valid() bool {
	_, ok := ParseUnit(string(u))
	return ok
}

// Multiplier returns the number of milliseconds in one u.
// It returns 0 for an unrecognized unit.
func (u Unit) Multiplier() float64 {
	switch u {
	case UnitMillisecond:
		return 1
	case UnitSecond:
		return MillisecondsPerSecond
	case UnitMinute:
		return MillisecondsPerMinute
	case UnitHour:
		return MillisecondsPerHour
	default:
		return 0
	}
}

// String returns the unit code.
func (u Unit) String() string {
	return string(u)
}

// Parsed is the result of interpreting a duration string.
type Parsed struct {
	// Magnitude is the numeric part. Only meaningful if HasMagnitude is set.
	Magnitude float64

	// HasMagnitude is false when the numeric part was absent or not a number.
	HasMagnitude bool

	// Unit is the recognized unit code, or "" if the suffix was not one.
	Unit Unit

	// Suffix is the raw text from the unit boundary onward.
	Suffix string
}

// HasUnit reports whether a recognized unit code was found.
func (p Parsed) HasUnit() bool {
	return p.Unit.Valid()
}

// Complete reports whether both a magnitude and a recognized unit are present.
func (p Parsed) Complete() bool {
	return p.HasMagnitude && p.HasUnit()
}

// Milliseconds returns the magnitude expressed in milliseconds.
// The second return value is false unless the parse is complete.
func (p Parsed) Milliseconds() (float64, bool) {
	if !p.Complete() {
		return 0, false
	}
	return p.Magnitude * p.Unit.Multiplier(), true
}

// Duration converts the parse result to a time.Duration, rounded to the
// nearest nanosecond.
func (p Parsed) Duration() (time.Duration, bool) {
	ms, ok := p.Milliseconds()
	if !ok {
		return 0, false
	}
	return FromMilliseconds(ms), true
}

// Parse interprets a duration string. It never fails: missing or malformed
// parts are reported through HasMagnitude and Unit.
func Parse(input string) Parsed {
	if isUnitOnly(input) {
		unit, _ := ParseUnit(input)
		return Parsed{Unit: unit, Suffix: input}
	}

	number, suffix := Split(input)
	unit, _ := ParseUnit(suffix)
	p := Parsed{Unit: unit, Suffix: suffix}
	if v, ok := parseNumber(number); ok {
		p.Magnitude = v
		p.HasMagnitude = true
	}
	return p
}

// Split separates input at the unit boundary, the first ASCII letter.
// The suffix is empty if input contains no letter.
func Split(input string) (number, suffix string) {
	for i := 0; i < len(input); i++ {
		if isLetter(input[i]) {
			return input[:i], input[i:]
		}
	}
	return input, ""
}

// isUnitOnly reports whether input is a bare unit with no numeric part.
func isUnitOnly(input string) bool {
	if input == "" {
		return false
	}
	for i := 0; i < len(input); i++ {
		if !isLetter(input[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// parseNumber converts a decimal literal. Surrounding whitespace is ignored;
// a blank string is not a number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
