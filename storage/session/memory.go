package sessionstore

import (
	"sync"

	"github.com/cardlect/cardlect/core/identity"
)

type memoryStore struct {
	mu   sync.RWMutex
	sess *identity.Session
}

var _ identity.Store = (*memoryStore)(nil)

// NewMemoryStore holds the session in memory only; used in tests and for
// callers that explicitly do not want cross-run persistence.
func NewMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (s *memoryStore) Save(sess identity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = &sess
	return nil
}

func (s *memoryStore) Load() (identity.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sess == nil {
		return identity.Session{}, false, nil
	}
	return *s.sess, true, nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
