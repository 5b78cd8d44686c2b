package mock

import (
	"context"

	"github.com/fwojciec/wordfreq"
)

var _ wordfreq.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of wordfreq.SessionService.
type SessionService struct {
	CreateSessionFn   func(ctx context.Context) (*wordfreq.Session, error)
	FindSessionByIDFn func(ctx context.Context, id string) (*wordfreq.Session, error)
	UpdateSessionFn   func(ctx context.Context, s *wordfreq.Session) error
}

func (s *SessionService) CreateSession(ctx context.Context) (*wordfreq.Session, error) {
	return s.CreateSessionFn(ctx)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*wordfreq.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) UpdateSession(ctx context.Context, sess *wordfreq.Session) error {
	return s.UpdateSessionFn(ctx, sess)
}
