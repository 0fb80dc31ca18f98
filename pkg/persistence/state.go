package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mindworks-software/lorawan-stack/pkg/gateway"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// State is the persisted gateway registry.
type State struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// Gateways are the stored gateways, ordered by gateway ID.
	Gateways []Record `json:"gateways,omitempty"`
}

// Record is a stored gateway.
type Record struct {
	Settings gateway.Settings `json:"settings"`

	// CreatedAt is when the gateway was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the gateway settings were last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// StateFile reads and writes the state document.
type StateFile struct {
	mu   sync.Mutex
	path string
}

// NewStateFile creates a state file at path.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// Path returns the file path.
func (s *StateFile) Path() string {
	return s.path
}

// Save persists the state to disk.
func (s *StateFile) Save(state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	// Write to a temporary file first so a crash never leaves a partial document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the state from disk.
// Returns nil, nil if the file doesn't exist (empty state).
func (s *StateFile) Load() (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}

	return state, nil
}

// Clear removes the state file.
func (s *StateFile) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
