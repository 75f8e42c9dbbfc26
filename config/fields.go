package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Field ids used by the settings form.
const (
	FieldDefaultThreshold = "default_threshold"
	FieldSliderStep       = "slider_step"
	FieldDetectionsPath   = "detections_path"
)

// Field is one editable setting rendered as label + text entry.
type Field struct {
	ID    string
	Label string
	Value string
}

// Fields returns the editable settings in display order.
func (c *Config) Fields() []Field {
	if c == nil {
		return nil
	}
	return []Field{
		{ID: FieldDefaultThreshold, Label: "Default Threshold (0-1)", Value: fmt.Sprintf("%.2f", c.DefaultThreshold)},
		{ID: FieldSliderStep, Label: "Slider Step", Value: fmt.Sprintf("%.3f", c.SliderStep)},
		{ID: FieldDetectionsPath, Label: "Detections File", Value: c.DetectionsPath},
	}
}

// WithFields returns a copy of c with values applied. Unknown ids are
// ignored. Unparsable values leave the field unchanged and are reported in
// the joined error.
func (c Config) WithFields(values map[string]string) (Config, error) {
	var errs []error
	assignFloat := func(id string, dst *float64) {
		s, ok := values[id]
		if !ok {
			return
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			return
		}
		*dst = f
	}
	assignFloat(FieldDefaultThreshold, &c.DefaultThreshold)
	assignFloat(FieldSliderStep, &c.SliderStep)
	if s, ok := values[FieldDetectionsPath]; ok {
		c.DetectionsPath = strings.TrimSpace(s)
	}
	return c, errors.Join(errs...)
}
