package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config is the optional defaults file (~/.config/xcurscale/config.yaml).
// Pointer fields distinguish "not set" from zero values.
type Config struct {
	Scale              *int64 `yaml:"scale"`
	Jobs               *int64 `yaml:"jobs"`
	IgnoreUnrecognized *bool  `yaml:"ignore_unrecognized"`
	LogLevel           string `yaml:"log_level"`
	LogFormat          string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "xcurscale", "config.yaml")
}

// loadConfig reads the defaults file. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyConfig fills in config-file defaults for flags the user did not set
// explicitly on the command line.
func applyConfig(c *cli.Command, cfg Config) {
	if cfg.Scale != nil && !c.IsSet("scale") {
		scaleFactor = *cfg.Scale
	}
	if cfg.Jobs != nil && !c.IsSet("jobs") {
		jobsCount = *cfg.Jobs
	}
	if cfg.IgnoreUnrecognized != nil && !c.IsSet("ignore-unrecognized") {
		ignoreUnrecognized = *cfg.IgnoreUnrecognized
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}
