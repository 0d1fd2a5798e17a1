package storage

import "sync"

type MemoryTokenStorage struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStorage(initial string) *MemoryTokenStorage {
	return &MemoryTokenStorage{token: initial}
}

func (s *MemoryTokenStorage) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryTokenStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStorage) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
