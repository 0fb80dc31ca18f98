package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mindworks-software/lorawan-stack/pkg/duration"
	"github.com/mindworks-software/lorawan-stack/pkg/formlog"
)

// Stats holds aggregate statistics about a form activity log.
type Stats struct {
	TotalEvents  int
	EventsByKind map[formlog.Kind]int
	Sessions     map[string]*SessionStats
	Gateways     map[string]int

	// WarningSubmits counts successful submissions made while the delay
	// warning was shown.
	WarningSubmits int
	FailedSubmits  int

	TimeRange struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single form session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	GatewayID string
	Mode      formlog.Mode
	Submitted bool
}

// RunStats analyzes a form activity log and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := formlog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[formlog.Kind]int),
		Sessions:     make(map[string]*SessionStats),
		Gateways:     make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event formlog.Event) {
	s.TotalEvents++
	s.EventsByKind[event.Kind]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	session, ok := s.Sessions[event.SessionID]
	if !ok {
		session = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp, Mode: event.Mode}
		s.Sessions[event.SessionID] = session
	}
	session.Events++
	if event.Timestamp.After(session.LastSeen) {
		session.LastSeen = event.Timestamp
	}
	if event.GatewayID != "" {
		session.GatewayID = event.GatewayID
	}

	if event.Kind == formlog.KindOpen && event.GatewayID != "" {
		s.Gateways[event.GatewayID]++
	}
	if event.Submit != nil {
		if event.Submit.HandlerError != "" {
			s.FailedSubmits++
			return
		}
		session.Submitted = true
		if event.Submit.WarningShown {
			s.WarningSubmits++
		}
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Gateway Form Activity Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		span := stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second)
		fmt.Fprintf(w, "Duration:   %s\n", duration.Humanize(span))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range []formlog.Kind{formlog.KindOpen, formlog.KindChange, formlog.KindWarning, formlog.KindSubmit, formlog.KindError} {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Submits with delay warning: %d\n", stats.WarningSubmits)
	if stats.FailedSubmits > 0 {
		fmt.Fprintf(w, "Failed submits: %d\n", stats.FailedSubmits)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Gateways opened: %d\n", len(stats.Gateways))
	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) == 0 {
		return
	}

	type sessionInfo struct {
		id    string
		stats *SessionStats
	}
	sessions := make([]sessionInfo, 0, len(stats.Sessions))
	for id, ss := range stats.Sessions {
		sessions = append(sessions, sessionInfo{id, ss})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, s := range sessions {
		fmt.Fprintf(w, "  [%s] %s %d events", shortenID(s.id), s.stats.Mode, s.stats.Events)
		if s.stats.GatewayID != "" {
			fmt.Fprintf(w, ", gateway %s", s.stats.GatewayID)
		}
		if s.stats.Submitted {
			fmt.Fprint(w, ", submitted")
		}
		fmt.Fprintln(w)
	}
}
