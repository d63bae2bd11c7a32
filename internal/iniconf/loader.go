package iniconf

import (
	"context"
	"fmt"

	"github.com/go-ini/ini"

	"github.com/specialistvlad/ged2dot/internal/config"
	"github.com/specialistvlad/ged2dot/internal/ctxlog"
)

// SectionName is the section holding the options.
const SectionName = "ged2dot"

// Loader is the INI implementation of config.Loader.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates an INI loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file at path and returns the keys of its ged2dot section.
func (l *Loader) Load(ctx context.Context, path string) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading INI config.", "path", path)

	file, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI file %s: %w", path, err)
	}

	section, err := file.GetSection(SectionName)
	if err != nil {
		logger.Warn("No ged2dot section found in config file.", "path", path)
		return map[string]string{}, nil
	}

	options := make(map[string]string, len(section.Keys()))
	for _, key := range section.Keys() {
		options[key.Name()] = key.String()
	}
	logger.Debug("Loaded INI config.", "path", path, "options", len(options))
	return options, nil
}
