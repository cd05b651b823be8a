package db

import (
	"context"
	"sync"

	"groupform-server-go/models"
)

// MemoryStore keeps rosters in process memory. Entries never expire.
type MemoryStore struct {
	mu      sync.RWMutex
	rosters map[string]models.Roster
}

var _ RosterStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rosters: make(map[string]models.Roster)}
}

func (s *MemoryStore) Save(_ context.Context, roster models.Roster) error {
	if err := validateRoster(roster); err != nil {
		return err
	}
	roster.Students = append([]models.Student(nil), roster.Students...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rosters[roster.ID] = roster
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	roster, ok := s.rosters[id]
	if !ok {
		return nil, nil
	}
	roster.Students = append([]models.Student(nil), roster.Students...)
	return &roster, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rosters, id)
	return nil
}
