package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/ged2dot/internal/assets"
	"github.com/specialistvlad/ged2dot/internal/config"
	"github.com/specialistvlad/ged2dot/internal/ctxlog"
	"github.com/specialistvlad/ged2dot/internal/dotexport"
	"github.com/specialistvlad/ged2dot/internal/gedcom"
	"github.com/specialistvlad/ged2dot/internal/render"
	"github.com/specialistvlad/ged2dot/internal/subgraph"
)

// Convert runs one conversion: read the input, build and resolve the graph,
// extract the subgraph around the root family, export it and write the result.
func (a *App) Convert(ctx context.Context, cfg *config.Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if err := cfg.Validate(); err != nil {
		return err
	}
	assetDir, err := a.materializeAssets(ctx, cfg)
	if err != nil {
		return err
	}
	buf, err := a.readInput(cfg.Input)
	if err != nil {
		return err
	}
	return a.convert(ctx, buf, cfg, assetDir)
}

// materializeAssets writes the placeholder images where graphviz can find them.
func (a *App) materializeAssets(ctx context.Context, cfg *config.Config) (string, error) {
	dir := cfg.AssetDir
	if dir == "" {
		var err error
		if dir, err = assets.DefaultDir(); err != nil {
			return "", err
		}
	}
	dir, err := assets.Materialize(dir)
	if err != nil {
		return "", err
	}
	ctxlog.FromContext(ctx).Debug("Assets materialized.", "dir", dir)
	return dir, nil
}

func (a *App) readInput(path string) ([]byte, error) {
	if path == config.StdStream {
		buf, err := io.ReadAll(a.inR)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return buf, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return buf, nil
}

func (a *App) convert(ctx context.Context, buf []byte, cfg *config.Config, assetDir string) error {
	logger := ctxlog.FromContext(ctx).With("input", cfg.Input)

	g, err := gedcom.Load(buf)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", cfg.Input, err)
	}
	logger.Debug("Graph loaded.", "node_count", g.Len())

	nodes, err := subgraph.Extract(g, cfg.RootFamily, subgraph.OptionsFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to extract subgraph of %s: %w", cfg.Input, err)
	}
	logger.Debug("Subgraph extracted.", "root", cfg.RootFamily, "node_count", len(nodes))

	exportOpts, err := dotexport.OptionsFromConfig(cfg, assetDir)
	if err != nil {
		return err
	}
	var dot bytes.Buffer
	if err := dotexport.Export(&dot, nodes, exportOpts); err != nil {
		return fmt.Errorf("failed to export %s: %w", cfg.Input, err)
	}

	format := cfg.OutputFormat()
	out, err := render.Render(ctx, dot.String(), format)
	if err != nil {
		return err
	}
	if cfg.Inline {
		out, err = render.InlineImages(out, imageOpener(exportOpts.BasePath))
		if err != nil {
			return err
		}
	}

	if err := a.writeOutput(cfg.Output, out); err != nil {
		return err
	}
	logger.Info("Converted.", "output", cfg.Output, "format", format, "node_count", len(nodes))
	return nil
}

// imageOpener reads images referenced by rendered output. Relative references
// are relative to basePath.
func imageOpener(basePath string) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		if !filepath.IsAbs(path) && basePath != "" {
			path = filepath.Join(basePath, path)
		}
		return os.ReadFile(path)
	}
}

func (a *App) writeOutput(path string, out []byte) error {
	if path == config.StdStream {
		if _, err := a.outW.Write(out); err != nil {
			return fmt.Errorf("failed to write standard output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
