// Package store is the persistent record layer for the shop session: a
// small key-value store holding a handful of named JSON records, the Go
// counterpart of the browser's localStorage in the hosted storefront.
package store

import "sync"

// Record names used by the shop session.
const (
	RecordCart     = "cart"
	RecordProducts = "products"
	RecordAdmin    = "isAdmin"
)

type Store interface {
	// ReadRecord returns the raw record bytes and whether the record exists.
	ReadRecord(name string) ([]byte, bool, error)
	WriteRecord(name string, data []byte) error
	DeleteRecord(name string) error
	Close() error
}

// MemStore keeps records in memory. It backs tests and the ephemeral
// shop mode where nothing should survive a restart.
type MemStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string][]byte)}
}

func (s *MemStore) ReadRecord(name string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.records[name]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (s *MemStore) WriteRecord(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.records[name] = cp
	return nil
}

func (s *MemStore) DeleteRecord(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, name)
	return nil
}

func (s *MemStore) Close() error { return nil }
