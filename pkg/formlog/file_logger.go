package formlog

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// FileExtension is the conventional extension for form activity logs.
const FileExtension = ".flog"

// File header identification.
const (
	FormatName    = "flog"
	FormatVersion = 1
)

// Header is the first record of a form log file. Files written before
// headers existed start directly with an event; readers accept both.
type Header struct {
	Format  string    `cbor:"0,keyasint"`
	Version uint8     `cbor:"1,keyasint"`
	Created time.Time `cbor:"2,keyasint"`
}

// decodeHeader reports whether raw is a form log header.
func decodeHeader(raw cbor.RawMessage) (Header, bool) {
	var h Header
	if err := decMode.Unmarshal(raw, &h); err != nil || h.Format != FormatName {
		return Header{}, false
	}
	return h, true
}

// FileLogger appends form events to a .flog file. A new file gets a
// Header before its first event. It is safe for concurrent use.
type FileLogger struct {
	mu       sync.Mutex
	file     *os.File
	encoder  *cbor.Encoder
	sessions map[string]struct{}
	closed   bool
}

// NewFileLogger opens path for appending, creating it with a header if it
// does not exist or is empty.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	l := &FileLogger{
		file:     f,
		encoder:  NewEncoder(f),
		sessions: make(map[string]struct{}),
	}
	if info.Size() == 0 {
		h := Header{Format: FormatName, Version: FormatVersion, Created: time.Now()}
		if err := l.encoder.Encode(h); err != nil {
			f.Close()
			return nil, fmt.Errorf("write form log header: %w", err)
		}
	}
	return l, nil
}

// Log appends event. Events of a session that was never opened through
// this logger are written as well; Sessions only counts opened forms.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if event.Kind == KindOpen && event.SessionID != "" {
		l.sessions[event.SessionID] = struct{}{}
	}

	// Encoding errors are dropped; a broken log must not break the form.
	_ = l.encoder.Encode(event)
}

// Sessions returns the number of forms opened through this logger.
func (l *FileLogger) Sessions() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sessions)
}

// Close closes the log file. Later Log calls are ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.file.Close()
}

var _ Logger = (*FileLogger)(nil)
