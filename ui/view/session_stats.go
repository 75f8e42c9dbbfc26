package view

import (
	"fmt"
	"time"

	"github.com/soocke/detect-filter-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats displays the session identity, its age and the reset count.
type SessionStats interface {
	SetSession(id string, age time.Duration, resets int)
}

type sessionStats struct {
	sessionLbl *TLabelWidget
	ageLbl     *TLabelWidget
}

// NewSessionStats creates session and age labels in a grid layout.
// The session label is placed at (row, startCol) and age label at (row, startCol+1).
// If parent is nil, labels are positioned relative to the App root.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	s := &sessionStats{
		sessionLbl: TLabel(Width(18), Style(theme.StyleMutedLabel)),
		ageLbl:     TLabel(Width(12), Style(theme.StyleMutedLabel)),
	}
	if parent != nil {
		Grid(s.sessionLbl, In(parent), Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
		Grid(s.ageLbl, In(parent), Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	} else {
		Grid(s.sessionLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
		Grid(s.ageLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	}
	s.sessionLbl.Configure(Txt("Session: <none>"))
	s.ageLbl.Configure(Txt("Age: 00:00"))
	return s
}

// SetSession updates the session display.
func (s *sessionStats) SetSession(id string, age time.Duration, resets int) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	seconds := int(age.Seconds())
	min, sec := seconds/60, seconds%60
	s.sessionLbl.Configure(Txt(fmt.Sprintf("Session: %s (#%d)", id, resets+1)))
	s.ageLbl.Configure(Txt(fmt.Sprintf("Age: %02d:%02d", min, sec)))
}
