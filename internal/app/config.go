package app

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/specialistvlad/ged2dot/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath is an optional HCL or INI file with conversion options.
	ConfigPath string
	// Overrides are the conversion options given on the command line. They
	// win over ConfigPath, which wins over the defaults.
	Overrides map[string]string

	// BatchDir, when set, converts every GEDCOM file found below it.
	BatchDir string
	// OutDir receives batch outputs. Empty means next to each input.
	OutDir string
	// WorkerCount bounds the number of concurrent batch conversions.
	WorkerCount int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkerCount < 0 {
		return nil, errors.New("WorkerCount must not be negative")
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = runtime.NumCPU()
	}
	if cfg.OutDir != "" && cfg.BatchDir == "" {
		return nil, errors.New("OutDir requires BatchDir")
	}
	if cfg.Overrides == nil {
		cfg.Overrides = map[string]string{}
	}
	if cfg.BatchDir != "" {
		if _, ok := cfg.Overrides[config.KeyInput]; ok {
			return nil, fmt.Errorf("%s cannot be combined with a batch directory", config.KeyInput)
		}
		if _, ok := cfg.Overrides[config.KeyOutput]; ok {
			return nil, fmt.Errorf("%s cannot be combined with a batch directory", config.KeyOutput)
		}
	}
	return &cfg, nil
}
