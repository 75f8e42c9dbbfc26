package config

import "log/slog"

// Context carries the settings and logger shared by every command.
// Settings is replaced once the config file has been read.
type Context struct {
	Settings *Config
	Path     string
	Level    *slog.LevelVar
	Logger   *slog.Logger
}

// NewContext returns a Context holding default settings.
func NewContext(level *slog.LevelVar, logger *slog.Logger) *Context {
	if level == nil {
		level = new(slog.LevelVar)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{Settings: DefaultConfig(), Level: level, Logger: logger}
}

// Apply installs cfg as the active settings and adjusts the log level.
func (c *Context) Apply(cfg *Config) {
	if c == nil || cfg == nil {
		return
	}
	c.Settings = cfg
	if cfg.Debug {
		c.Level.Set(slog.LevelDebug)
	} else {
		c.Level.Set(slog.LevelInfo)
	}
}
