package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config holds runtime configuration for the filter UI and CLI.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`
	// Filter defaults
	DefaultThreshold float64 `json:"default_threshold"`
	SliderStep       float64 `json:"slider_step"`

	// Detections file handed over by the detection pipeline (.json/.yaml).
	// Empty means the embedded sample.
	DetectionsPath string `json:"detections_path"`

	// Window
	TickMillis   int  `json:"tick_ms"`
	WindowWidth  int  `json:"window_width"`
	WindowHeight int  `json:"window_height"`
	DarkMode     bool `json:"dark_mode"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		DefaultThreshold: 0.5,
		SliderStep:       0.01,
		DetectionsPath:   "",
		TickMillis:       100,
		WindowWidth:      720,
		WindowHeight:     480,
		DarkMode:         false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.DefaultThreshold < 0 || c.DefaultThreshold > 1 {
		c.DefaultThreshold = 0.5
	}
	if c.SliderStep <= 0 || c.SliderStep > 1 {
		c.SliderStep = 0.01
	}
	if c.TickMillis <= 0 {
		c.TickMillis = 100
	}
	if c.WindowWidth < 320 {
		c.WindowWidth = 320
	}
	if c.WindowHeight < 240 {
		c.WindowHeight = 240
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode config %s: %w", path, err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
