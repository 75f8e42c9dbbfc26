package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Filter   *FilterPresenter
	Results  *ResultsPresenter
	Schedule func()
}

func NewLoop(sess *SessionPresenter, filter *FilterPresenter, results *ResultsPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Filter: filter, Results: results, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Filter first: its label sync may write filter state the results read.
	if l.Filter != nil {
		l.Filter.Tick(now)
	}
	if l.Results != nil {
		l.Results.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
