package formlog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logJSON(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsChangeEvent(t *testing.T) {
	entry := logJSON(t, Event{
		Timestamp: time.Now(),
		SessionID: "session-1",
		GatewayID: "gw-1",
		Kind:      KindChange,
		Mode:      ModeUpdate,
		Change:    &ChangeEvent{Field: "schedule_anytime_delay", Value: "523ms"},
	})

	want := map[string]any{
		"msg":        "form",
		"level":      "DEBUG",
		"session":    "session-1",
		"gateway_id": "gw-1",
		"kind":       "CHANGE",
		"mode":       "UPDATE",
		"field":      "schedule_anytime_delay",
		"value":      "523ms",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
}

func TestSlogAdapterLogsWarningEvent(t *testing.T) {
	entry := logJSON(t, Event{
		SessionID: "session-1",
		Kind:      KindWarning,
		Warning:   &WarningEvent{Shown: true, Value: "523ms", MinimumMs: 1000},
	})

	if entry["shown"] != true {
		t.Errorf("shown: got %v", entry["shown"])
	}
	if entry["minimum_ms"] != float64(1000) {
		t.Errorf("minimum_ms: got %v", entry["minimum_ms"])
	}
	if _, ok := entry["gateway_id"]; ok {
		t.Error("gateway_id should be omitted when empty")
	}
}

func TestSlogAdapterLogsSubmitAndError(t *testing.T) {
	entry := logJSON(t, Event{
		Kind:   KindSubmit,
		Submit: &SubmitEvent{WarningShown: true, ScheduleAnytimeDelay: 523 * time.Millisecond, HandlerError: "boom"},
	})
	if entry["warning_shown"] != true || entry["handler_error"] != "boom" {
		t.Errorf("submit entry = %v", entry)
	}
	// slog's JSON handler writes durations as nanoseconds.
	if entry["schedule_anytime_delay"] != float64(523*time.Millisecond) {
		t.Errorf("schedule_anytime_delay: got %v", entry["schedule_anytime_delay"])
	}

	entry = logJSON(t, Event{
		Kind:  KindError,
		Error: &ErrorEventData{Stage: "validate", Message: "name is required", Fields: []string{"name"}},
	})
	if entry["stage"] != "validate" || entry["error_msg"] != "name is required" {
		t.Errorf("error entry = %v", entry)
	}
	fields, ok := entry["fields"].([]any)
	if !ok || len(fields) != 1 || fields[0] != "name" {
		t.Errorf("fields: got %v", entry["fields"])
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(handler)).Log(Event{Kind: KindOpen})

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
