package gateway

import (
	"github.com/mindworks-software/lorawan-stack/pkg/duration"
	"github.com/mindworks-software/lorawan-stack/pkg/messages"
)

// DelayWarning tracks whether the schedule-anytime delay warning is shown.
// The state is computed from the initial value at construction and
// recomputed synchronously on every change. Inputs that cannot be judged
// (no unit, unknown unit, no number) never show the warning.
type DelayWarning struct {
	minimumMs float64
	value     string
	verdict   duration.Verdict
}

// NewDelayWarning returns a warning for the initial value. minimumMs must
// be positive.
func NewDelayWarning(initial string, minimumMs float64) *DelayWarning {
	w := &DelayWarning{minimumMs: minimumMs}
	w.set(initial)
	return w
}

// OnChange recomputes the state for value and reports whether the
// displayed state changed.
func (w *DelayWarning) OnChange(value string) bool {
	before := w.ShouldDisplay()
	w.set(value)
	return before != w.ShouldDisplay()
}

func (w *DelayWarning) set(value string) {
	w.value = value
	w.verdict = duration.IsBelowMinimum(value, w.minimumMs)
}

// ShouldDisplay reports whether the warning is shown.
func (w *DelayWarning) ShouldDisplay() bool {
	return w.verdict == duration.Below
}

// Verdict returns the comparison result for the current value.
func (w *DelayWarning) Verdict() duration.Verdict {
	return w.verdict
}

// Value returns the value the state was computed from.
func (w *DelayWarning) Value() string {
	return w.value
}

// MinimumMs returns the threshold in milliseconds.
func (w *DelayWarning) MinimumMs() float64 {
	return w.minimumMs
}

// Message returns the warning text with the minimum interpolated, or ""
// when the warning is not shown.
func (w *DelayWarning) Message() string {
	if !w.ShouldDisplay() {
		return ""
	}
	return messages.Format(messages.GatewayFormDelayWarning, map[string]any{
		"minimumValue": w.minimumMs,
	})
}
