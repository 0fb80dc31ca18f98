package persistence

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mindworks-software/lorawan-stack/pkg/gateway"
)

// Store errors.
var (
	ErrGatewayNotFound = errors.New("gateway not found")
	ErrGatewayExists   = errors.New("gateway already exists")
	ErrEmptyGatewayID  = errors.New("empty gateway ID")
)

// GatewayStore is a gateway registry backed by a StateFile. A store without
// a file keeps gateways in memory only.
type GatewayStore struct {
	mu       sync.RWMutex
	file     *StateFile
	gateways map[string]Record
	now      func() time.Time
}

// NewMemoryStore returns a store that is not persisted.
func NewMemoryStore() *GatewayStore {
	return &GatewayStore{
		gateways: make(map[string]Record),
		now:      time.Now,
	}
}

// Open loads the store from the state file at path. A missing file yields
// an empty store.
func Open(path string) (*GatewayStore, error) {
	s := NewMemoryStore()
	s.file = NewStateFile(path)

	state, err := s.file.Load()
	if err != nil {
		return nil, fmt.Errorf("load gateways from %s: %w", path, err)
	}
	if state != nil {
		for _, r := range state.Gateways {
			s.gateways[r.Settings.IDs.GatewayID] = r
		}
	}
	return s, nil
}

// Get returns the settings of a gateway.
func (s *GatewayStore) Get(id string) (gateway.Settings, error) {
	r, err := s.Record(id)
	if err != nil {
		return gateway.Settings{}, err
	}
	return r.Settings, nil
}

// Record returns the stored record of a gateway.
func (s *GatewayStore) Record(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.gateways[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrGatewayNotFound, id)
	}
	r.Settings = r.Settings.Clone()
	return r, nil
}

// List returns all gateways ordered by ID.
func (s *GatewayStore) List() []gateway.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]gateway.Settings, 0, len(s.gateways))
	for _, id := range s.sortedIDs() {
		out = append(out, s.gateways[id].Settings.Clone())
	}
	return out
}

// Len returns the number of stored gateways.
func (s *GatewayStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.gateways)
}

// Create stores a new gateway.
func (s *GatewayStore) Create(settings gateway.Settings) error {
	id := settings.IDs.GatewayID
	if id == "" {
		return ErrEmptyGatewayID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gateways[id]; ok {
		return fmt.Errorf("%w: %s", ErrGatewayExists, id)
	}
	now := s.now()
	s.gateways[id] = Record{Settings: settings.Clone(), CreatedAt: now, UpdatedAt: now}
	return s.persist()
}

// Update replaces the settings of an existing gateway. The owner is kept
// when the update does not name one.
func (s *GatewayStore) Update(settings gateway.Settings) error {
	id := settings.IDs.GatewayID

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.gateways[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGatewayNotFound, id)
	}
	if settings.OwnerID == "" {
		settings.OwnerID = r.Settings.OwnerID
	}
	r.Settings = settings.Clone()
	r.UpdatedAt = s.now()
	s.gateways[id] = r
	return s.persist()
}

// Put creates or replaces a gateway.
func (s *GatewayStore) Put(settings gateway.Settings) error {
	id := settings.IDs.GatewayID
	if id == "" {
		return ErrEmptyGatewayID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	r, ok := s.gateways[id]
	if !ok {
		r.CreatedAt = now
	}
	r.Settings = settings.Clone()
	r.UpdatedAt = now
	s.gateways[id] = r
	return s.persist()
}

// Delete removes a gateway.
func (s *GatewayStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gateways[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGatewayNotFound, id)
	}
	delete(s.gateways, id)
	return s.persist()
}

// Clear removes all gateways and the state file.
func (s *GatewayStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gateways = make(map[string]Record)
	if s.file == nil {
		return nil
	}
	return s.file.Clear()
}

// Submit implements gateway.SubmitHandler: creation forms create, update
// forms update.
func (s *GatewayStore) Submit(ctx context.Context, req gateway.SubmitRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Update {
		return s.Update(req.Settings)
	}
	return s.Create(req.Settings)
}

// persist writes the registry. Callers hold s.mu.
func (s *GatewayStore) persist() error {
	if s.file == nil {
		return nil
	}
	state := &State{Gateways: make([]Record, 0, len(s.gateways))}
	for _, id := range s.sortedIDs() {
		state.Gateways = append(state.Gateways, s.gateways[id])
	}
	if err := s.file.Save(state); err != nil {
		return fmt.Errorf("save gateways: %w", err)
	}
	return nil
}

func (s *GatewayStore) sortedIDs() []string {
	ids := make([]string, 0, len(s.gateways))
	for id := range s.gateways {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Compile-time interface satisfaction check.
var _ gateway.SubmitHandler = (*GatewayStore)(nil)
