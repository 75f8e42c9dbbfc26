package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel identifies the current analysis session. A session ends when
// the user starts over (for example with a new image); filter state does not
// survive that boundary. The zero value has no session until the first Bump.
type SessionModel struct {
	id      uuid.UUID
	started time.Time
	bumps   int
}

// NewSessionModel returns a SessionModel with a fresh session started at now.
func NewSessionModel(now time.Time) *SessionModel {
	m := &SessionModel{}
	m.Bump(now)
	m.bumps = 0
	return m
}

// Bump ends the current session and starts a new one at now.
func (m *SessionModel) Bump(now time.Time) uuid.UUID {
	if m == nil {
		return uuid.Nil
	}
	m.id = uuid.New()
	m.started = now
	m.bumps++
	return m.id
}

// ID returns the current session identifier (uuid.Nil before the first Bump).
func (m *SessionModel) ID() uuid.UUID {
	if m == nil {
		return uuid.Nil
	}
	return m.id
}

// Values returns the session age at now and how many times the session was bumped.
func (m *SessionModel) Values(now time.Time) (age time.Duration, bumps int) {
	if m == nil || m.started.IsZero() {
		return 0, 0
	}
	age = now.Sub(m.started)
	if age < 0 {
		age = 0
	}
	return age, m.bumps
}
