package gateway

import (
	"testing"

	"github.com/mindworks-software/lorawan-stack/pkg/duration"
)

func TestDelayWarningInitialState(t *testing.T) {
	tests := []struct {
		initial string
		want    bool
	}{
		{"0.523s", true},
		{"523ms", true},
		{"1s", false},
		{"1000ms", false},
		{"", false},
		{"ms", false},
		{"5x", false},
	}

	for _, tt := range tests {
		w := NewDelayWarning(tt.initial, 1000)
		if got := w.ShouldDisplay(); got != tt.want {
			t.Errorf("NewDelayWarning(%q).ShouldDisplay() = %v, want %v", tt.initial, got, tt.want)
		}
	}
}

func TestDelayWarningOnChange(t *testing.T) {
	w := NewDelayWarning("1s", 1000)

	steps := []struct {
		value       string
		wantShown   bool
		wantChanged bool
	}{
		{"523ms", true, true},
		{"524ms", true, false},
		{"ms", false, true},
		{"0.5s", true, true},
		{"5x", false, true},
		{"5ms", true, true},
		{"2m", false, true},
	}

	for _, s := range steps {
		changed := w.OnChange(s.value)
		if w.ShouldDisplay() != s.wantShown || changed != s.wantChanged {
			t.Errorf("OnChange(%q): shown=%v changed=%v, want shown=%v changed=%v",
				s.value, w.ShouldDisplay(), changed, s.wantShown, s.wantChanged)
		}
		if w.Value() != s.value {
			t.Errorf("Value() = %q, want %q", w.Value(), s.value)
		}
	}
}

func TestDelayWarningVerdict(t *testing.T) {
	w := NewDelayWarning("5x", 1000)
	if w.Verdict() != duration.Indeterminate {
		t.Errorf("Verdict() = %s, want INDETERMINATE", w.Verdict())
	}
	w.OnChange("2s")
	if w.Verdict() != duration.NotBelow {
		t.Errorf("Verdict() = %s, want NOT_BELOW", w.Verdict())
	}
}

func TestDelayWarningMessage(t *testing.T) {
	w := NewDelayWarning("523ms", 1000)
	want := "Delay too short. The lower bound (1000ms) will be used by the Gateway Server."
	if got := w.Message(); got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}

	w.OnChange("1s")
	if got := w.Message(); got != "" {
		t.Errorf("Message() = %q, want empty", got)
	}

	if got := NewDelayWarning("1ms", 2500).Message(); got != "Delay too short. The lower bound (2500ms) will be used by the Gateway Server." {
		t.Errorf("Message() with custom minimum = %q", got)
	}
}
