package sessionstore

import (
	"net/http"
	"sync"

	"github.com/sardorbek/darsxona/core/session"
)

// MemoryStore holds a single in-process session. It backs handler tests the
// same way an in-memory table backs repository tests: no cookies involved,
// and the clear counter lets tests assert that an authorization failure
// clears the session exactly once.
type MemoryStore struct {
	mu     sync.Mutex
	sess   session.Session
	set    bool
	clears int
}

var _ session.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(*http.Request) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess, nil
}

func (s *MemoryStore) Save(_ http.ResponseWriter, _ *http.Request, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	s.set = true
	return nil
}

func (s *MemoryStore) Clear(http.ResponseWriter, *http.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil
	}
	s.sess = session.Session{}
	s.set = false
	s.clears++
	return nil
}

// Clears reports how many times a stored session has actually been cleared.
func (s *MemoryStore) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}

// Current returns the stored session.
func (s *MemoryStore) Current() session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}
