package presenter

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SessionSource reports and restarts the analysis session.
type SessionSource interface {
	Bump(now time.Time) uuid.UUID
	ID() uuid.UUID
	Values(now time.Time) (age time.Duration, bumps int)
}

// Resettable is anything that drops its state when a new session starts.
type Resettable interface {
	Clear()
	Reset()
}

// SessionView displays the session identity, its age and how many times the
// user started over.
type SessionView interface {
	SetSession(id string, age time.Duration, resets int)
}

// SessionPresenter formats the session for the view and handles "new session".
type SessionPresenter struct {
	sess   SessionSource
	filter Resettable
	view   SessionView
	logger *slog.Logger
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess SessionSource, filter Resettable, view SessionView, logger *slog.Logger) *SessionPresenter {
	return &SessionPresenter{sess: sess, filter: filter, view: view, logger: logger}
}

// Tick pushes the current session id and age to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.view == nil {
		return
	}
	age, resets := p.sess.Values(now)
	p.view.SetSession(shortID(p.sess.ID()), age, resets)
}

// NewSession starts a fresh session: detections are cleared and the filter
// state returns to its defaults.
func (p *SessionPresenter) NewSession(now time.Time) {
	if p == nil || p.sess == nil {
		return
	}
	prev := p.sess.ID()
	id := p.sess.Bump(now)
	if p.filter != nil {
		p.filter.Clear()
		p.filter.Reset()
	}
	if p.logger != nil {
		p.logger.Info("session reset", "previous", prev.String(), "session", id.String())
	}
}

func shortID(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
