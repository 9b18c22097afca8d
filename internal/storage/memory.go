// internal/storage/memory.go
package storage

import "sync"

// MemStore is an in-process KV used by tests and throwaway environments.
type MemStore struct {
	mtx  sync.RWMutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.data, key)
	return nil
}
