// Package lru keeps per-user UI sessions in a bounded in-memory LRU cache.
// Sessions are never persisted and are lost when the process exits.
package lru

import (
	"context"

	"github.com/fwojciec/wordfreq"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the default maximum number of live sessions.
const DefaultSize = 1024

// Ensure SessionService implements wordfreq.SessionService at compile time.
var _ wordfreq.SessionService = (*SessionService)(nil)

// SessionService stores sessions in an LRU cache keyed by session ID.
// When full, the least recently used session is evicted.
type SessionService struct {
	cache *lru.Cache[string, wordfreq.Session]
}

// NewSessionService creates a SessionService holding at most size sessions.
func NewSessionService(size int) (*SessionService, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, wordfreq.Session](size)
	if err != nil {
		return nil, err
	}
	return &SessionService{cache: cache}, nil
}

// CreateSession creates a session with a random ID and default state.
func (s *SessionService) CreateSession(ctx context.Context) (*wordfreq.Session, error) {
	sess := wordfreq.NewSession(uuid.NewString())
	s.cache.Add(sess.ID, *sess)
	return sess, nil
}

// FindSessionByID returns a copy of the stored session.
// Returns ENOTFOUND if the session does not exist or was evicted.
func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*wordfreq.Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, wordfreq.Errorf(wordfreq.ENOTFOUND, "session %q not found", id)
	}
	return &sess, nil
}

// UpdateSession stores a copy of sess.
// Returns ENOTFOUND if the session does not exist or was evicted.
func (s *SessionService) UpdateSession(ctx context.Context, sess *wordfreq.Session) error {
	if sess == nil || sess.ID == "" {
		return wordfreq.Errorf(wordfreq.EINVALID, "session ID required")
	}
	if !s.cache.Contains(sess.ID) {
		return wordfreq.Errorf(wordfreq.ENOTFOUND, "session %q not found", sess.ID)
	}
	s.cache.Add(sess.ID, *sess)
	return nil
}

// Len returns the number of live sessions.
func (s *SessionService) Len() int {
	return s.cache.Len()
}
