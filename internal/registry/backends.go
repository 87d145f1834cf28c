package registry

import "sync"

// BackendSet resolves the one Backend for each (account, region) pair,
// creating it lazily on first access. Backends live until Reset; distinct
// pairs never share state.
type BackendSet struct {
	mu       sync.Mutex
	backends map[string]*Backend
}

// NewBackendSet creates an empty backend container.
func NewBackendSet() *BackendSet {
	return &BackendSet{backends: make(map[string]*Backend)}
}

// Get returns the backend for the pair, creating it if needed.
func (s *BackendSet) Get(accountID, region string) *Backend {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := accountID + ":" + region
	b, ok := s.backends[key]
	if !ok {
		b = NewBackend(accountID, region)
		s.backends[key] = b
	}
	return b
}

// Reset discards every backend. Intended for test isolation.
func (s *BackendSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.backends = make(map[string]*Backend)
}
