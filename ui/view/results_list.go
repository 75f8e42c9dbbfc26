package view

import (
	"fmt"
	"strings"

	"github.com/soocke/detect-filter-go/ui/model"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// ResultsList shows per-modality counts and the visible items.
type ResultsList interface {
	SetCounts(counts []model.KindCount)
	SetItems(lines []string)
}

type resultsList struct {
	countLbls []*LabelWidget
	items     *TextWidget
}

// NewResultsList creates four count labels and an item list in a frame at (row, col).
func NewResultsList(row, col int) ResultsList {
	frame := Frame()
	Grid(frame, Row(row), Column(col), Sticky("nswe"), Padx("0.4m"), Pady("0.3m"))
	r := &resultsList{}
	for i := 0; i < 4; i++ {
		lbl := Label(Width(22), Anchor("w"))
		Grid(lbl, In(frame), Row(i), Column(0), Sticky("w"), Padx("0.2m"))
		r.countLbls = append(r.countLbls, lbl)
	}
	r.items = Text(Height(12), Width(36))
	Grid(r.items, In(frame), Row(4), Column(0), Sticky("nswe"), Padx("0.2m"), Pady("0.2m"))
	r.items.Configure(State("disabled"))
	return r
}

func (r *resultsList) SetCounts(counts []model.KindCount) {
	if r == nil {
		return
	}
	for i, c := range counts {
		if i >= len(r.countLbls) {
			break
		}
		r.countLbls[i].Configure(Txt(fmt.Sprintf("%s: %d / %d", c.Kind, c.Visible, c.Total)))
	}
}

func (r *resultsList) SetItems(lines []string) {
	if r == nil || r.items == nil {
		return
	}
	r.items.Configure(State("normal"))
	r.items.Delete("1.0", END)
	r.items.Insert("1.0", strings.Join(lines, "\n"))
	r.items.Configure(State("disabled"))
}
