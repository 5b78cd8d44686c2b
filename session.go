package wordfreq

import "context"

// Session holds the UI state of one user.
type Session struct {
	ID      string    `json:"id"`
	URL     string    `json:"url"`
	Kind    ChartKind `json:"kind"`
	MinFreq int       `json:"minFreq"`
}

// NewSession returns a session with default state.
func NewSession(id string) *Session {
	return &Session{ID: id, Kind: ChartWordCloud, MinFreq: 1}
}

// SessionUpdate carries the values submitted from the UI. Nil fields are
// left unchanged.
type SessionUpdate struct {
	URL     *string
	Kind    *ChartKind
	MinFreq *int
}

// Apply updates the session. Submitting a URL different from the current
// one resets MinFreq to 1 and ignores any submitted MinFreq, since the
// threshold belonged to the previous document. The chart kind is kept
// unless one is submitted.
func (s *Session) Apply(upd SessionUpdate) {
	if upd.Kind != nil && upd.Kind.Valid() {
		s.Kind = *upd.Kind
	}
	if upd.URL != nil && *upd.URL != s.URL {
		s.URL = *upd.URL
		s.MinFreq = 1
		return
	}
	if upd.MinFreq != nil {
		s.MinFreq = *upd.MinFreq
	}
	if s.MinFreq < 1 {
		s.MinFreq = 1
	}
}

// SessionService stores per-user UI state.
type SessionService interface {
	// CreateSession creates a session with a new ID and default state.
	CreateSession(ctx context.Context) (*Session, error)

	// FindSessionByID retrieves a session.
	// Returns ENOTFOUND if the session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// UpdateSession stores the session state.
	// Returns ENOTFOUND if the session does not exist.
	UpdateSession(ctx context.Context, s *Session) error
}
