package formlog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes form events to an slog.Logger.
// Useful for development when you want to see form activity in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("kind", event.Kind.String()),
		slog.String("mode", event.Mode.String()),
	}

	if event.GatewayID != "" {
		attrs = append(attrs, slog.String("gateway_id", event.GatewayID))
	}

	switch {
	case event.Change != nil:
		attrs = append(attrs,
			slog.String("field", event.Change.Field),
			slog.String("value", event.Change.Value),
		)
	case event.Warning != nil:
		attrs = append(attrs,
			slog.Bool("shown", event.Warning.Shown),
			slog.String("value", event.Warning.Value),
			slog.Float64("minimum_ms", event.Warning.MinimumMs),
		)
	case event.Submit != nil:
		attrs = append(attrs,
			slog.Bool("warning_shown", event.Submit.WarningShown),
			slog.Duration("schedule_anytime_delay", event.Submit.ScheduleAnytimeDelay),
		)
		if event.Submit.HandlerError != "" {
			attrs = append(attrs, slog.String("handler_error", event.Submit.HandlerError))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("stage", event.Error.Stage),
			slog.String("error_msg", event.Error.Message),
		)
		if len(event.Error.Fields) > 0 {
			attrs = append(attrs, slog.Any("fields", event.Error.Fields))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "form", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
