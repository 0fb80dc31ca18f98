package duration

import (
	"fmt"
	"testing"
	"time"
)

const testMinimumMs = 1000

func TestIsBelowMinimum(t *testing.T) {
	tests := []struct {
		input string
		want  Verdict
	}{
		{"523ms", Below},
		{"999ms", Below},
		{"1000ms", NotBelow},
		{"1s", NotBelow},
		{"0.999s", Below},
		{"0.5s", Below},
		{"1m", NotBelow},
		{"1h", NotBelow},
		{"0s", Below},
		{"-1s", Below},
		{"ms", NotBelow},
		{"s", NotBelow},
		{"5x", Indeterminate},
		{"xyz", Indeterminate},
		{"", Indeterminate},
		{"42", Indeterminate},
		{"1e-1s", Indeterminate},
		{"1.2.3ms", NotBelow},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := IsBelowMinimum(tt.input, testMinimumMs)
			if got != tt.want {
				t.Errorf("IsBelowMinimum(%q, %d) = %s, want %s", tt.input, testMinimumMs, got, tt.want)
			}
		})
	}
}

func TestShouldWarn(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"523ms", true},
		{"1s", false},
		{"ms", false},
		{"5x", false},
	}

	for _, tt := range tests {
		if got := ShouldWarn(tt.input, testMinimumMs); got != tt.want {
			t.Errorf("ShouldWarn(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// Every recognized unit agrees with the millisecond comparison.
func TestIsBelowMinimumMatchesMilliseconds(t *testing.T) {
	magnitudes := []float64{0, 0.001, 0.25, 0.5, 1, 2, 59, 60, 523, 999, 1000, 1001, 60000}
	minimums := []float64{1, 530, 1000, 60000, 3600000}

	for _, u := range Units {
		for _, mag := range magnitudes {
			for _, minMs := range minimums {
				input := Format(mag, u)
				want := NotBelow
				if mag*u.Multiplier() < minMs {
					want = Below
				}
				if got := IsBelowMinimum(input, minMs); got != want {
					t.Errorf("IsBelowMinimum(%q, %v) = %s, want %s", input, minMs, got, want)
				}
			}
		}
	}
}

func TestVerdictString(t *testing.T) {
	tests := []struct {
		v    Verdict
		want string
	}{
		{Indeterminate, "INDETERMINATE"},
		{NotBelow, "NOT_BELOW"},
		{Below, "BELOW"},
		{Verdict(9), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ms", Format(523, UnitMillisecond), "523ms"},
		{"fraction", Format(0.523, UnitSecond), "0.523s"},
		{"seconds", FormatSeconds(523 * time.Millisecond), "0.523s"},
		{"whole seconds", FormatSeconds(2 * time.Second), "2s"},
		{"milliseconds", FormatMilliseconds(530 * time.Millisecond), "530ms"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestFormatSecondsRoundTrip(t *testing.T) {
	for _, d := range []time.Duration{0, time.Millisecond, 523 * time.Millisecond, time.Second, 90 * time.Second} {
		got, ok := Parse(FormatSeconds(d)).Duration()
		if !ok || got != d {
			t.Errorf("Parse(FormatSeconds(%v)).Duration() = (%v, %v)", d, got, ok)
		}
	}
}

func TestFromMilliseconds(t *testing.T) {
	if got := FromMilliseconds(1000); got != time.Second {
		t.Errorf("FromMilliseconds(1000) = %v, want 1s", got)
	}
	if got := FromMilliseconds(0.5); got != 500*time.Microsecond {
		t.Errorf("FromMilliseconds(0.5) = %v, want 500µs", got)
	}
}

func ExampleIsBelowMinimum() {
	fmt.Println(IsBelowMinimum("523ms", 1000))
	fmt.Println(IsBelowMinimum("1s", 1000))
	fmt.Println(IsBelowMinimum("ms", 1000))
	fmt.Println(IsBelowMinimum("5x", 1000))
	// Output:
	// BELOW
	// NOT_BELOW
	// NOT_BELOW
	// INDETERMINATE
}
