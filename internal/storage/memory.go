package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"gpmap/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	maps        map[string]model.MapRecord
	samples     map[string]model.SampleRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.maps = make(map[string]model.MapRecord)
	s.samples = make(map[string]model.SampleRecord)
	return nil
}

func (s *MemoryStore) SaveMap(_ context.Context, record model.MapRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.maps[record.ID] = record
	return nil
}

func (s *MemoryStore) GetMap(_ context.Context, id string) (model.MapRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.maps[id]
	return record, ok, nil
}

func (s *MemoryStore) ListMaps(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.maps))
	for id := range s.maps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) DeleteMap(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.maps, id)
	return nil
}

func (s *MemoryStore) SaveSample(_ context.Context, record model.SampleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.samples[record.ID] = record
	return nil
}

func (s *MemoryStore) GetSample(_ context.Context, id string) (model.SampleRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.samples[id]
	return record, ok, nil
}

func (s *MemoryStore) ListSamples(_ context.Context, mapID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for id, record := range s.samples {
		if record.MapID == mapID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
