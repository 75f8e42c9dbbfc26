package view

import (
	"log/slog"
	"strings"

	"github.com/soocke/detect-filter-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel is the settings form. It only collects text; parsing, saving
// and reloading happen in the settings presenter.
type ConfigPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetFields(fields []config.Field)
}

type configPanel struct {
	fields   []config.Field
	onApply  func(values map[string]string)
	logger   *slog.Logger
	frame    *FrameWidget
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by field id
}

// NewConfigPanel creates the view for fields. onApply receives the raw text
// of every field keyed by id.
func NewConfigPanel(fields []config.Field, onApply func(map[string]string), logger *slog.Logger) ConfigPanel {
	return &configPanel{fields: fields, onApply: onApply, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow int) (row int) {
	v.frame = Frame()
	Grid(v.frame, Row(startRow), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	for i, f := range v.fields {
		lbl := Label(Txt(f.Label), Anchor("w"))
		Grid(lbl, In(v.frame), Row(i), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(28))
		Grid(w, In(v.frame), Row(i), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Insert("1.0", f.Value)
		v.widgets[f.ID] = w
	}
	v.applyBtn = Button(Txt("Apply Settings"), Command(v.apply))
	Grid(v.applyBtn, In(v.frame), Row(len(v.fields)), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	return startRow + 1
}

// SetFields rewrites the entry texts, e.g. after the presenter normalized them.
func (v *configPanel) SetFields(fields []config.Field) {
	if v == nil {
		return
	}
	for _, f := range fields {
		if w := v.widgets[f.ID]; w != nil {
			w.Delete("1.0", END)
			w.Insert("1.0", f.Value)
		}
	}
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

func (v *configPanel) apply() {
	if v.onApply == nil {
		return
	}
	values := make(map[string]string, len(v.widgets))
	for id, w := range v.widgets {
		values[id] = v.text(w)
	}
	if v.logger != nil {
		v.logger.Debug("settings submitted", "fields", len(values))
	}
	v.onApply(values)
}
