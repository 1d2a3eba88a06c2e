package session

import (
	"errors"
	"sort"
	"sync"

	"github.com/QuangAnhPhan/poker-app/pkg/poker/holdem"
)

// ErrNotFound is an error when no live hand exists for the id
var ErrNotFound = errors.New("game not found")

// Session owns a single live hand. The engine performs no internal locking,
// so every read or mutation must go through Do.
type Session struct {
	mu   sync.Mutex
	game *holdem.Game
}

// Do runs fn with exclusive access to the hand. Calls on the same session
// are serialized; distinct sessions proceed in parallel.
func (s *Session) Do(fn func(game *holdem.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.game)
}

// Store is a keyed collection of live hands
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create registers the hand under its own id and returns the session
func (s *Store) Create(game *holdem.Game) *Session {
	sn := &Session{game: game}

	s.mu.Lock()
	s.sessions[game.ID()] = sn
	s.mu.Unlock()

	return sn
}

// Get returns the session for the id
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sn, ok := s.sessions[id]
	s.mu.RUnlock()

	return sn, ok
}

// Evict removes the session. Returns false if the id is unknown.
// Eviction is explicit and caller-driven; a finished hand stays available
// until its client has observed the terminal state.
func (s *Store) Evict(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}

	delete(s.sessions, id)
	return true
}

// IDs returns the ids of all live hands in stable order
func (s *Store) IDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Len returns the number of live hands
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
