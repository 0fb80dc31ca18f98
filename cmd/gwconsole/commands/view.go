package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mindworks-software/lorawan-stack/pkg/duration"
	"github.com/mindworks-software/lorawan-stack/pkg/formlog"
)

// ViewOptions are the command-line criteria of the view command.
type ViewOptions struct {
	Session   string
	Gateway   string
	Kind      string
	Field     string
	TimeStart string
	TimeEnd   string
}

// Filter converts the options to a formlog.Filter.
func (o ViewOptions) Filter() (formlog.Filter, error) {
	f := formlog.Filter{
		SessionID: o.Session,
		GatewayID: o.Gateway,
		Field:     o.Field,
	}
	if o.Kind != "" {
		k, ok := formlog.ParseKind(o.Kind)
		if !ok {
			return f, fmt.Errorf("invalid kind: %s (must be open, change, warning, submit, or error)", o.Kind)
		}
		f.Kind = &k
	}
	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return f, fmt.Errorf("invalid time-start: %w", err)
		}
		f.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return f, fmt.Errorf("invalid time-end: %w", err)
		}
		f.TimeEnd = &t
	}
	return f, nil
}

// RunView prints the events of a form activity log that match filter.
func RunView(path string, filter formlog.Filter, w io.Writer) error {
	reader, err := formlog.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event formlog.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %-6s %-7s %s\n",
		ts, shortenID(event.SessionID), event.Mode, event.Kind, event.GatewayID)

	switch {
	case event.Change != nil:
		fmt.Fprintf(w, "  %s = %q\n", event.Change.Field, event.Change.Value)
	case event.Warning != nil:
		state := "hidden"
		if event.Warning.Shown {
			state = "shown"
		}
		fmt.Fprintf(w, "  Warning %s for %q (minimum %vms)\n", state, event.Warning.Value, event.Warning.MinimumMs)
	case event.Submit != nil:
		d := event.Submit.ScheduleAnytimeDelay
		fmt.Fprintf(w, "  Delay: %s (%s)\n", duration.FormatMilliseconds(d), duration.Humanize(d))
		if event.Submit.WarningShown {
			fmt.Fprintln(w, "  Submitted with delay warning")
		}
		if event.Submit.HandlerError != "" {
			fmt.Fprintf(w, "  Handler error: %s\n", event.Submit.HandlerError)
		}
	case event.Error != nil:
		fmt.Fprintf(w, "  Stage: %s\n", event.Error.Stage)
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if len(event.Error.Fields) > 0 {
			fmt.Fprintf(w, "  Fields: %s\n", strings.Join(event.Error.Fields, ", "))
		}
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
