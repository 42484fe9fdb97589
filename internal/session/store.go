package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity bounds the store when no capacity is configured.
const DefaultCapacity = 1024

// Store is a bounded set of sessions. The least recently used session is
// evicted once capacity is reached.
type Store struct {
	sessions *lru.Cache[string, *Session]
	now      func() time.Time
}

// NewStore creates a store holding at most capacity sessions.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c, err := lru.New[string, *Session](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &Store{sessions: c, now: time.Now}, nil
}

// Create starts a new empty session.
func (st *Store) Create() *Session {
	s := &Session{ID: uuid.NewString(), CreatedAt: st.now().UTC()}
	st.sessions.Add(s.ID, s)
	return s
}

// Get returns the session with id.
func (st *Store) Get(id string) (*Session, error) {
	s, ok := st.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// Delete drops a session. Unknown ids are ignored.
func (st *Store) Delete(id string) {
	st.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.sessions.Len()
}
