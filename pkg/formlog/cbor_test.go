package formlog

import (
	"bytes"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
)

func TestEncodeDecodeChangeEvent(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.UTC)
	event := Event{
		Timestamp: ts,
		SessionID: "6f1c1c7e-6c55-4c47-8d1e-3a3b8f0f2a10",
		Kind:      KindChange,
		Mode:      ModeUpdate,
		GatewayID: "test-gateway",
		Change:    &ChangeEvent{Field: "schedule_anytime_delay", Value: "523ms"},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !got.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v (nanoseconds must survive)", got.Timestamp, ts)
	}
	if got.SessionID != event.SessionID || got.GatewayID != event.GatewayID {
		t.Errorf("ids = (%q, %q), want (%q, %q)", got.SessionID, got.GatewayID, event.SessionID, event.GatewayID)
	}
	if got.Kind != KindChange || got.Mode != ModeUpdate {
		t.Errorf("Kind/Mode = %v/%v", got.Kind, got.Mode)
	}
	if got.Change == nil || *got.Change != *event.Change {
		t.Errorf("Change = %+v, want %+v", got.Change, event.Change)
	}
	if got.Warning != nil || got.Submit != nil || got.Error != nil {
		t.Error("unexpected payloads decoded")
	}
}

func TestEncodeUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{
		Timestamp: time.Unix(0, 0).UTC(),
		SessionID: "s",
		Kind:      KindWarning,
		Warning:   &WarningEvent{Shown: true, Value: "523ms", MinimumMs: 1000},
	})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	var raw map[any]any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		t.Fatalf("raw decode failed: %v", err)
	}
	for k := range raw {
		if _, ok := k.(uint64); !ok {
			t.Errorf("key %v (%T) is not an integer", k, k)
		}
	}
	if _, ok := raw[uint64(11)]; !ok {
		t.Error("warning payload not under key 11")
	}
	if _, ok := raw[uint64(5)]; ok {
		t.Error("empty GatewayID should be omitted")
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	event := Event{
		Timestamp: time.Unix(1700000000, 42).UTC(),
		SessionID: "s",
		Kind:      KindError,
		Error:     &ErrorEventData{Stage: "validate", Message: "bad", Fields: []string{"name", "ids.eui"}},
	}

	a, err := EncodeEvent(event)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeEvent(event)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding is not deterministic")
	}
}

func TestEncoderDecoderStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	events := []Event{
		{SessionID: "a", Kind: KindOpen},
		{SessionID: "a", Kind: KindSubmit, Submit: &SubmitEvent{WarningShown: true, ScheduleAnytimeDelay: 523 * time.Millisecond}},
	}
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i, want := range events {
		var got Event
		if err := dec.Decode(&got); err != nil {
			t.Fatalf("Decode %d failed: %v", i, err)
		}
		if got.Kind != want.Kind {
			t.Errorf("event %d Kind = %v, want %v", i, got.Kind, want.Kind)
		}
	}

	var last Event
	if err := dec.Decode(&last); err == nil {
		t.Error("expected error at end of stream")
	}
}

func TestSubmitEventDelayRoundTrip(t *testing.T) {
	data, err := EncodeEvent(Event{
		Kind:   KindSubmit,
		Submit: &SubmitEvent{ScheduleAnytimeDelay: 523 * time.Millisecond, HandlerError: "unavailable"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Submit == nil || got.Submit.ScheduleAnytimeDelay != 523*time.Millisecond {
		t.Fatalf("Submit = %+v", got.Submit)
	}
	if got.Submit.HandlerError != "unavailable" {
		t.Errorf("HandlerError = %q", got.Submit.HandlerError)
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}
