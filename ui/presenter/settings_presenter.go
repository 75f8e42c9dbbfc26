package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/detect-filter-go/config"
	"github.com/soocke/detect-filter-go/domain/detection"
)

// DetectionSink receives reloaded detections and the new default threshold.
type DetectionSink interface {
	SetDetections(s detection.Set)
	SetDefaultThreshold(v float64)
}

// SettingsView shows the editable settings.
type SettingsView interface {
	SetFields(fields []config.Field)
}

// SettingsPresenter applies the settings form: it parses the submitted text,
// reloads detections when the file changed and persists the config.
type SettingsPresenter struct {
	cfg    *config.Config
	path   string
	sink   DetectionSink
	load   func(path string) (detection.Set, error)
	view   SettingsView
	logger *slog.Logger
}

// NewSettingsPresenter returns a presenter editing cfg in place. An empty
// path disables saving.
func NewSettingsPresenter(cfg *config.Config, path string, sink DetectionSink, load func(string) (detection.Set, error), view SettingsView, logger *slog.Logger) *SettingsPresenter {
	return &SettingsPresenter{cfg: cfg, path: path, sink: sink, load: load, view: view, logger: logger}
}

// Apply validates values and commits them. A rejected submission leaves the
// config and the detections untouched.
func (p *SettingsPresenter) Apply(values map[string]string) error {
	if p == nil || p.cfg == nil {
		return nil
	}
	next, err := p.cfg.WithFields(values)
	if err != nil {
		p.warn("settings rejected", err)
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if next.DetectionsPath != p.cfg.DetectionsPath && p.load != nil {
		set, err := p.load(next.DetectionsPath)
		if err != nil {
			p.warn("detections reload failed", err)
			return fmt.Errorf("load detections: %w", err)
		}
		if p.sink != nil {
			p.sink.SetDetections(set)
		}
		if p.logger != nil {
			p.logger.Info("detections reloaded", "path", next.DetectionsPath, "items", set.Len())
		}
	}
	*p.cfg = next
	if p.sink != nil {
		p.sink.SetDefaultThreshold(next.DefaultThreshold)
	}
	if p.view != nil {
		p.view.SetFields(p.cfg.Fields())
	}
	if p.path == "" {
		return nil
	}
	if err := p.cfg.Save(p.path); err != nil {
		if p.logger != nil {
			p.logger.Error("config save failed", "error", err)
		}
		return fmt.Errorf("save config: %w", err)
	}
	if p.logger != nil {
		p.logger.Info("config saved", "path", p.path)
	}
	return nil
}

func (p *SettingsPresenter) warn(msg string, err error) {
	if p.logger != nil {
		p.logger.Warn(msg, "error", err)
	}
}
