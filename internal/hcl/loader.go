package hcl

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/ged2dot/internal/config"
	"github.com/specialistvlad/ged2dot/internal/ctxlog"
)

// BlockName is the block holding the options.
const BlockName = "ged2dot"

// hclConfigFile is the top-level structure of a config file for decoding.
type hclConfigFile struct {
	Settings *hclSettings `hcl:"ged2dot,block"`
}

// hclSettings mirrors config.Config; nil fields were not set in the file.
type hclSettings struct {
	Input       *string `hcl:"input,optional"`
	Output      *string `hcl:"output,optional"`
	RootFamily  *string `hcl:"rootfamily,optional"`
	FamilyDepth *int    `hcl:"familydepth,optional"`
	ImageDir    *string `hcl:"imagedir,optional"`
	NameOrder   *string `hcl:"nameorder,optional"`
	Direction   *string `hcl:"direction,optional"`
	BirthFormat *string `hcl:"birthformat,optional"`
	RelPath     *bool   `hcl:"relpath,optional"`
	Format      *string `hcl:"format,optional"`
	Inline      *bool   `hcl:"inline,optional"`
	AssetDir    *string `hcl:"assetdir,optional"`
}

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	// Env is exposed to expressions as the env object. Nil means the
	// process environment.
	Env map[string]string
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file at path and returns the options it sets.
func (l *Loader) Load(ctx context.Context, path string) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL config.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclConfigFile
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if parsed.Settings == nil {
		logger.Warn("No ged2dot block found in config file.", "path", path)
		return map[string]string{}, nil
	}
	options := parsed.Settings.options()
	logger.Debug("Loaded HCL config.", "path", path, "options", len(options))
	return options, nil
}

// evalContext exposes the environment as the env object.
func (l *Loader) evalContext() *hcl.EvalContext {
	env := l.Env
	if env == nil {
		env = environ()
	}
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		// Windows keeps per-drive working directories as "=C:=C:\...".
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

func (s *hclSettings) options() map[string]string {
	m := make(map[string]string)
	setString := func(key string, v *string) {
		if v != nil {
			m[key] = *v
		}
	}
	setBool := func(key string, v *bool) {
		if v != nil {
			m[key] = strconv.FormatBool(*v)
		}
	}

	setString(config.KeyInput, s.Input)
	setString(config.KeyOutput, s.Output)
	setString(config.KeyRootFamily, s.RootFamily)
	if s.FamilyDepth != nil {
		m[config.KeyFamilyDepth] = strconv.Itoa(*s.FamilyDepth)
	}
	setString(config.KeyImageDir, s.ImageDir)
	setString(config.KeyNameOrder, s.NameOrder)
	setString(config.KeyDirection, s.Direction)
	setString(config.KeyBirthFormat, s.BirthFormat)
	setBool(config.KeyRelPath, s.RelPath)
	setString(config.KeyFormat, s.Format)
	setBool(config.KeyInline, s.Inline)
	setString(config.KeyAssetDir, s.AssetDir)
	return m
}
