package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/kroue/AlertX/internal/domain/service"
)

var ErrSessionNotFound = errors.New("session not found")

// alertSession state of one broadcast screen. mu serialises every operation on it.
type alertSession struct {
	mu       sync.Mutex
	id       string
	composer *service.AlertComposer
	store    *service.AnnotationStore
	lastUsed time.Time // guarded by sessionStore.mu
}

// sessionStore in-memory registry of open sessions. Sessions idle for longer than
// idleTimeout are dropped by sweep; a zero timeout keeps them until closed.
type sessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*alertSession
	idleTimeout time.Duration
	now         func() time.Time
}

func newSessionStore(idleTimeout time.Duration) *sessionStore {
	return &sessionStore{
		sessions:    make(map[string]*alertSession),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

func (s *sessionStore) put(sess *alertSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.lastUsed = s.now()
	s.sessions[sess.id] = sess
}

// get returns the session and marks it as used
func (s *sessionStore) get(id string) (*alertSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastUsed = s.now()
	return sess, nil
}

func (s *sessionStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// sweep drops idle sessions and returns their ids
func (s *sessionStore) sweep() []string {
	if s.idleTimeout <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTimeout)
	var evicted []string
	for id, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			delete(s.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
