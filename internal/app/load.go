package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/ged2dot/internal/config"
	"github.com/specialistvlad/ged2dot/internal/ctxlog"
	"github.com/specialistvlad/ged2dot/internal/hcl"
	"github.com/specialistvlad/ged2dot/internal/iniconf"
)

// loaderFor picks the config file format by extension: HCL for .hcl files,
// INI for everything else.
func loaderFor(path string) config.Loader {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return hcl.NewLoader()
	}
	return iniconf.NewLoader()
}

// LoadConfig reads the options set by the config file at path.
func LoadConfig(ctx context.Context, path string) (map[string]string, error) {
	options, err := loaderFor(path).Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return options, nil
}

// Options merges the defaults, the config file and the command-line
// overrides, in that order, and validates the result.
func (a *App) Options(ctx context.Context) (*config.Config, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	cfg := config.Default()

	if a.config.ConfigPath != "" {
		fromFile, err := LoadConfig(ctx, a.config.ConfigPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(fromFile); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", a.config.ConfigPath, err)
		}
		logger.Debug("Config file applied.", "path", a.config.ConfigPath, "options", len(fromFile))
	}

	if err := cfg.Apply(a.config.Overrides); err != nil {
		return nil, err
	}

	// Batch mode derives input and output per file.
	if a.config.BatchDir == "" {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	logger.Debug("Options resolved.", "options", cfg.Map())
	return cfg, nil
}
