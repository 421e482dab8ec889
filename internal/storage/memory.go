package storage

import (
	"fmt"
	"sync"

	"promptstudio/internal/domain"
)

// MemoryVersionStore keeps saved versions for the life of the process.
type MemoryVersionStore struct {
	mu       sync.RWMutex
	versions []domain.SavedVersion
	byID     map[string]int
}

func NewMemoryVersionStore() *MemoryVersionStore {
	return &MemoryVersionStore{byID: make(map[string]int)}
}

func (s *MemoryVersionStore) SaveVersion(v *domain.SavedVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[v.ID]; ok {
		return fmt.Errorf("save version: duplicate id %s", v.ID)
	}
	stored := *v
	stored.Blocks = domain.CloneBlocks(v.Blocks)
	s.byID[v.ID] = len(s.versions)
	s.versions = append(s.versions, stored)
	return nil
}

func (s *MemoryVersionStore) GetVersion(id string) (*domain.SavedVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("get version %s: %w", id, domain.ErrVersionNotFound)
	}
	v := s.versions[i]
	v.Blocks = domain.CloneBlocks(v.Blocks)
	return &v, nil
}

func (s *MemoryVersionStore) ListVersions() ([]domain.SavedVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SavedVersion, len(s.versions))
	for i, v := range s.versions {
		v.Blocks = domain.CloneBlocks(v.Blocks)
		out[i] = v
	}
	return out, nil
}
