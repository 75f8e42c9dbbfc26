package app

import (
	"log/slog"
	"time"

	"github.com/soocke/detect-filter-go/assets"
	"github.com/soocke/detect-filter-go/config"
	"github.com/soocke/detect-filter-go/domain/detection"
	"github.com/soocke/detect-filter-go/ui/model"
	"github.com/soocke/detect-filter-go/ui/presenter"
	"github.com/soocke/detect-filter-go/ui/view"
)

// AppContainer assembles models, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Filter   *model.FilterModel
	Session  *model.SessionModel
	RootView *view.RootView
	UI       view.UI

	// Presenters
	FilterPresenter   *presenter.FilterPresenter
	ResultsPresenter  *presenter.ResultsPresenter
	SessionPresenter  *presenter.SessionPresenter
	SettingsPresenter *presenter.SettingsPresenter
	Loop              *presenter.Loop
}

// BuildContainer constructs all components and seeds the detection stores
// with set. No widgets are created; the root view is built by the app.
// Settings applied from the UI are saved to cfgPath.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, set detection.Set) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Filter = model.NewFilterModel(cfg.DefaultThreshold, logger)
	c.Filter.SetDetections(set)
	c.Session = model.NewSessionModel(time.Now())

	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView

	c.FilterPresenter = presenter.NewFilterPresenter(c.Filter, c.UI, logger)
	c.ResultsPresenter = presenter.NewResultsPresenter(c.Filter, c.UI)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Filter, c.UI, logger)
	c.SettingsPresenter = presenter.NewSettingsPresenter(cfg, cfgPath, c.Filter, assets.Detections, c.UI, logger)
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.FilterPresenter, c.ResultsPresenter, nil)
	return c
}

// Handlers returns the view callbacks routed to the presenters. exit and
// toggleDark are supplied by the window owner.
func (c *AppContainer) Handlers(exit, toggleDark func()) view.Handlers {
	return view.Handlers{
		NewSession: func() { c.SessionPresenter.NewSession(time.Now()) },
		ToggleDark: toggleDark,
		Exit:       exit,
		Threshold:  c.FilterPresenter.OnThreshold,
		Toggle:     c.FilterPresenter.OnToggle,
		Settings:   c.applySettings,
	}
}

// applySettings drops the error; the presenter logs it.
func (c *AppContainer) applySettings(values map[string]string) {
	_ = c.SettingsPresenter.Apply(values)
}
