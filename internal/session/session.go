// Package session holds per-user dashboard state. Each session keeps the
// latest accepted assessment and orders concurrent submissions so that a
// slow response never overwrites a newer one.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/ppiankov/cardiorisk/internal/model"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrNoResult = errors.New("session has no assessment")
	ErrStale    = errors.New("response superseded by a newer submission")
)

// Session is one user's dashboard state.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	issued   uint64 // last sequence handed out by Begin
	accepted uint64 // sequence of the assessment in last
	last     *model.Assessment
}

// Begin reserves the sequence number for a new submission.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Commit stores a as the session result if seq is newer than the assessment
// already held. An older sequence returns ErrStale and leaves the session
// unchanged.
func (s *Session) Commit(seq uint64, a *model.Assessment) error {
	if a == nil {
		return ErrNoResult
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.accepted {
		return ErrStale
	}
	if seq > s.issued {
		s.issued = seq
	}
	a.Sequence = seq
	s.accepted = seq
	s.last = a
	return nil
}

// Last returns the latest accepted assessment.
func (s *Session) Last() (*model.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil, ErrNoResult
	}
	return s.last, nil
}

// Pending reports whether a submission has begun but not been accepted.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued > s.accepted
}
