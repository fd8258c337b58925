package sessions

import (
	"maps"
	"sync"
	"time"
)

var _ Store = (*InMemoryStore)(nil)

// InMemoryStore is a thread-safe in-memory implementation of Store. Session
// lifetime is delegated to the cookie; the store itself does not expire keys.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]*Session)}
}

// Get returns a copy of the record so callers cannot mutate shared state
// outside of Update.
func (s *InMemoryStore) Get(key string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[key]
	if !ok {
		return Session{}, ErrNotFound
	}
	copied := *record
	copied.Values = maps.Clone(record.Values)
	return copied, nil
}

// Update mutates the record for key under the store lock. The record is
// created on first contact.
func (s *InMemoryStore) Update(key string, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		record = &Session{
			Key:       key,
			Values:    make(map[string]string),
			CreatedAt: time.Now(),
		}
		s.records[key] = record
	}
	fn(record)
	return nil
}

func (s *InMemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}
