package presenter

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/soocke/detect-filter-go/ui/model"
)

// FilterSource is the slice of the filter model the controls need.
type FilterSource interface {
	SyncLabels() bool
	Labels() []string
	Toggles() []model.LabelToggle
	Threshold() float64
	SetThreshold(float64)
	ToggleLabel(string)
	Version() uint64
}

// FilterView renders the confidence slider and the label checklist.
type FilterView interface {
	ShowFilters(visible bool)
	SetThreshold(value float64, percent string)
	SetLabels(toggles []model.LabelToggle)
}

// FilterPresenter keeps the filter controls in step with the filter model and
// routes control input back into it.
type FilterPresenter struct {
	model  FilterSource
	view   FilterView
	logger *slog.Logger

	mounted bool
	seen    uint64
	visible bool
}

// NewFilterPresenter returns a presenter bound to model and view.
func NewFilterPresenter(model FilterSource, view FilterView, logger *slog.Logger) *FilterPresenter {
	return &FilterPresenter{model: model, view: view, logger: logger}
}

// Mount runs the label sync and pushes the full control state.
func (p *FilterPresenter) Mount() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	p.mounted = false
	p.refresh()
}

// Tick re-syncs labels and updates the controls when the model changed.
func (p *FilterPresenter) Tick(now time.Time) {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	p.refresh()
}

func (p *FilterPresenter) refresh() {
	p.model.SyncLabels()
	v := p.model.Version()
	if p.mounted && v == p.seen { // no change
		return
	}
	first := !p.mounted
	p.mounted = true
	p.seen = v

	if len(p.model.Labels()) == 0 {
		if p.visible || first {
			p.visible = false
			p.view.ShowFilters(false)
		}
		return
	}
	if !p.visible || first {
		p.visible = true
		p.view.ShowFilters(true)
	}
	t := p.model.Threshold()
	p.view.SetThreshold(t, Percent(t))
	p.view.SetLabels(p.model.Toggles())
}

// OnThreshold handles slider movement. The value is written as is.
func (p *FilterPresenter) OnThreshold(v float64) {
	if p == nil || p.model == nil {
		return
	}
	p.model.SetThreshold(v)
	if p.logger != nil {
		p.logger.Debug("threshold changed", "value", v)
	}
}

// OnToggle handles a checklist click for one label.
func (p *FilterPresenter) OnToggle(label string) {
	if p == nil || p.model == nil {
		return
	}
	p.model.ToggleLabel(label)
	if p.logger != nil {
		p.logger.Debug("label toggled", "label", label)
	}
}

// Percent formats a confidence as a whole percentage, rounding half away from zero.
func Percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}
