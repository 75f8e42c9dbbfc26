package view

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/soocke/detect-filter-go/domain/filtering"
	"github.com/soocke/detect-filter-go/ui/model"
	"github.com/soocke/detect-filter-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FilterPanel shows the confidence slider and one checkbox per label.
// The panel only exists while there is at least one label to filter.
type FilterPanel interface {
	ShowFilters(visible bool)
	SetThreshold(value float64, percent string)
	SetLabels(toggles []model.LabelToggle)
}

type filterPanel struct {
	logger      *slog.Logger
	row, col    int
	step        float64
	onThreshold func(float64)
	onToggle    func(string)

	frame      *FrameWidget
	percentLbl *LabelWidget
	slider     *TScaleWidget
	listFrame  *FrameWidget
	checks     map[string]*CheckbuttonWidget
	labels     []string
	last       float64
}

// NewFilterPanel records where the panel goes; widgets are created on the
// first ShowFilters(true).
func NewFilterPanel(row, col int, step float64, onThreshold func(float64), onToggle func(string), logger *slog.Logger) FilterPanel {
	if step <= 0 {
		step = 0.01
	}
	return &filterPanel{row: row, col: col, step: step, onThreshold: onThreshold, onToggle: onToggle, logger: logger, last: -1}
}

func (v *filterPanel) ShowFilters(visible bool) {
	if v == nil {
		return
	}
	if !visible {
		if v.frame != nil {
			Destroy(v.frame)
		}
		v.frame, v.percentLbl, v.slider, v.listFrame = nil, nil, nil, nil
		v.checks, v.labels, v.last = nil, nil, -1
		return
	}
	if v.frame != nil {
		return
	}
	v.frame = Frame(Borderwidth(1), Relief("groove"))
	Grid(v.frame, Row(v.row), Column(v.col), Sticky("nswe"), Padx("0.4m"), Pady("0.3m"))

	title := TLabel(Txt("FILTER RESULTS"), Style(theme.StyleAccentLabel))
	Grid(title, In(v.frame), Row(0), Column(0), Columnspan(2), Sticky("w"), Padx("0.3m"), Pady("0.2m"))

	Grid(Label(Txt("Confidence"), Anchor("w")), In(v.frame), Row(1), Column(0), Sticky("w"), Padx("0.3m"))
	v.percentLbl = Label(Txt("--%"), Anchor("e"))
	Grid(v.percentLbl, In(v.frame), Row(1), Column(1), Sticky("e"), Padx("0.3m"))

	v.slider = TScale(From(0), To(1), Orient("horizontal"), Length(200), Variable(0.5), Command(func() { v.slide() }))
	Grid(v.slider, In(v.frame), Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.2m"))

	Grid(Label(Txt("LABELS"), Anchor("w")), In(v.frame), Row(3), Column(0), Columnspan(2), Sticky("w"), Padx("0.3m"))
}

// slide snaps the raw slider position to the configured step and forwards it.
func (v *filterPanel) slide() {
	if v.slider == nil || v.onThreshold == nil {
		return
	}
	raw, err := strconv.ParseFloat(strings.TrimSpace(v.slider.Variable()), 64)
	if err != nil {
		if v.logger != nil {
			v.logger.Error("slider value parse error", "error", err)
		}
		return
	}
	value := filtering.Snap(raw, v.step)
	if value == v.last {
		return
	}
	v.last = value
	v.onThreshold(value)
}

func (v *filterPanel) SetThreshold(value float64, percent string) {
	if v == nil || v.slider == nil {
		return
	}
	v.percentLbl.Configure(Txt(percent))
	if value != v.last {
		v.last = value
		v.slider.Configure(Value(value))
	}
}

func (v *filterPanel) SetLabels(toggles []model.LabelToggle) {
	if v == nil || v.frame == nil {
		return
	}
	labels := make([]string, 0, len(toggles))
	for _, t := range toggles {
		labels = append(labels, t.Label)
	}
	if !slices.Equal(labels, v.labels) {
		v.rebuildList(labels)
	}
	for _, t := range toggles {
		cb := v.checks[t.Label]
		if cb == nil {
			continue
		}
		if t.Checked {
			cb.Select()
		} else {
			cb.Deselect()
		}
	}
}

func (v *filterPanel) rebuildList(labels []string) {
	if v.listFrame != nil {
		Destroy(v.listFrame)
	}
	v.listFrame = Frame()
	Grid(v.listFrame, In(v.frame), Row(4), Column(0), Columnspan(2), Sticky("nswe"), Padx("0.3m"), Pady("0.2m"))
	v.checks = make(map[string]*CheckbuttonWidget, len(labels))
	for i, label := range labels {
		cb := Checkbutton(Txt(label), Anchor("w"), Command(func() {
			if v.onToggle != nil {
				v.onToggle(label)
			}
		}))
		Grid(cb, In(v.listFrame), Row(i), Column(0), Sticky("w"))
		v.checks[label] = cb
	}
	v.labels = labels
}
