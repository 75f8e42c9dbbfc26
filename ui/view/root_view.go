package view

import (
	"log/slog"
	"time"

	"github.com/soocke/detect-filter-go/config"
	"github.com/soocke/detect-filter-go/ui/model"
	"github.com/soocke/detect-filter-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user actions the root view forwards.
type Handlers struct {
	NewSession func()
	ToggleDark func()
	Exit       func()
	Threshold  func(float64)
	Toggle     func(label string)
	Settings   func(values map[string]string)
}

// RootView composes the top-level application layout and wires UI callbacks.
// Its methods are safe to call before Build; they do nothing until the
// subviews exist.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Session  SessionStats
	Filters  FilterPanel
	Results  ResultsList
	Settings ConfigPanel
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	ShowFilters(visible bool)
	SetThreshold(value float64, percent string)
	SetLabels(toggles []model.LabelToggle)
	SetCounts(counts []model.KindCount)
	SetItems(lines []string)
	SetSession(id string, age time.Duration, resets int)
	SetFields(fields []config.Field)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout: a toolbar row, results on the left with the
// filter panel on the right, and the settings form below.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	bar := Frame()
	Grid(bar, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.Session = NewSessionStats(bar, 0, 0)
	newBtn := TButton(Txt("New Session"), Style(theme.StylePrimaryButton), Command(orNoop(h.NewSession)))
	Grid(newBtn, In(bar), Row(0), Column(2), Sticky("e"), Padx("0.2m"))
	darkBtn := TButton(Txt("Dark Mode"), Command(orNoop(h.ToggleDark)))
	Grid(darkBtn, In(bar), Row(0), Column(3), Sticky("e"), Padx("0.2m"))
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(orNoop(h.Exit)))
	Grid(exitBtn, In(bar), Row(0), Column(4), Sticky("e"), Padx("0.2m"))

	rv.Results = NewResultsList(1, 0)
	rv.Filters = NewFilterPanel(1, 1, rv.cfg.SliderStep, h.Threshold, h.Toggle, rv.logger)
	rv.Settings = NewConfigPanel(rv.cfg.Fields(), h.Settings, rv.logger)
	rv.Settings.Build(2)
	GridColumnConfigure(App, 0, Weight(1))
	GridRowConfigure(App, 1, Weight(1))
}

func orNoop(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}

// ShowFilters shows or removes the filter panel.
func (rv *RootView) ShowFilters(visible bool) {
	if rv != nil && rv.Filters != nil {
		rv.Filters.ShowFilters(visible)
	}
}

// SetThreshold moves the slider and updates the percentage text.
func (rv *RootView) SetThreshold(value float64, percent string) {
	if rv != nil && rv.Filters != nil {
		rv.Filters.SetThreshold(value, percent)
	}
}

// SetLabels updates the label checklist.
func (rv *RootView) SetLabels(toggles []model.LabelToggle) {
	if rv != nil && rv.Filters != nil {
		rv.Filters.SetLabels(toggles)
	}
}

// SetCounts proxies to the results list.
func (rv *RootView) SetCounts(counts []model.KindCount) {
	if rv != nil && rv.Results != nil {
		rv.Results.SetCounts(counts)
	}
}

// SetItems proxies to the results list.
func (rv *RootView) SetItems(lines []string) {
	if rv != nil && rv.Results != nil {
		rv.Results.SetItems(lines)
	}
}

// SetSession updates the session labels.
func (rv *RootView) SetSession(id string, age time.Duration, resets int) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetSession(id, age, resets)
	}
}

// SetFields refreshes the settings form.
func (rv *RootView) SetFields(fields []config.Field) {
	if rv != nil && rv.Settings != nil {
		rv.Settings.SetFields(fields)
	}
}
