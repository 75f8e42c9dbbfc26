package app

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/detect-filter-go/config"
	"github.com/soocke/detect-filter-go/debug"
	"github.com/soocke/detect-filter-go/domain/detection"
	"github.com/soocke/detect-filter-go/ui/model"
	"github.com/soocke/detect-filter-go/ui/theme"
)

type app struct {
	title   string
	cfg     *config.Config
	logger  *slog.Logger
	c       *AppContainer
	tick    time.Duration
	afterID string
	stopped bool

	// graph counters snapshotted on the Tk thread for the debug logger
	stats atomic.Pointer[model.GraphStats]
}

// NewApp prepares the window and the component graph for set.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger, set detection.Set) *app {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &app{
		title:  title,
		cfg:    cfg,
		logger: logger,
		c:      BuildContainer(cfg, cfgPath, logger, set),
		tick:   time.Duration(cfg.TickMillis) * time.Millisecond,
	}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	return a
}

// Start builds the UI, starts the update loop and blocks until the window closes.
func (a *app) Start() {
	theme.SetDark(a.cfg.DarkMode)
	a.c.RootView.Build(a.c.Handlers(a.exitHandler, a.toggleDark))
	a.c.Loop.Schedule = a.scheduleUpdate
	a.c.FilterPresenter.Mount()

	if a.cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, a.logger, func() any { return a.stats.Load() })
	}
	a.logger.Info("ui started", "title", a.title, "items", a.c.Filter.Detections().Len(), "labels", len(a.c.Filter.Labels()))

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) toggleDark() {
	dark := theme.ToggleDark()
	a.logger.Debug("theme toggled", "dark", dark)
}

func (a *app) exitHandler() {
	a.stopped = true
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	if a.stopped {
		return
	}
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.tick, a.update)
}

func (a *app) update() {
	if a.cfg.Debug {
		st := a.c.Filter.Stats()
		a.stats.Store(&st)
	}
	a.c.Loop.Tick()
}
