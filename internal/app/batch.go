package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/ged2dot/internal/config"
	"github.com/specialistvlad/ged2dot/internal/ctxlog"
	"github.com/specialistvlad/ged2dot/internal/fsutil"
	"github.com/specialistvlad/ged2dot/internal/gedcom"
)

// BatchResult counts the files seen by a batch run.
type BatchResult struct {
	Converted int
	Skipped   int
}

// RunBatch converts every .ged file found below dir, using base for all
// options except input and output. Outputs are named after their input with
// the extension of the output format and written to outDir, or next to the
// input when outDir is empty. Files that do not start with a GEDCOM header
// are skipped. Conversions run concurrently, each on its own graph; the
// first failure cancels the rest and is returned.
func (a *App) RunBatch(ctx context.Context, dir, outDir string, base *config.Config) (BatchResult, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(dir, ".ged")
	if err != nil {
		return BatchResult{}, fmt.Errorf("failed to find GEDCOM files in %s: %w", dir, err)
	}
	if len(files) == 0 {
		logger.Warn("No .ged files found in batch directory.", "dir", dir)
		return BatchResult{}, nil
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return BatchResult{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	assetDir, err := a.materializeAssets(ctx, base)
	if err != nil {
		return BatchResult{}, err
	}

	workers := a.config.WorkerCount
	if workers < 1 {
		workers = 1
	}
	logger.Info("Starting batch conversion.", "dir", dir, "files", len(files), "workers", workers)

	var converted, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buf, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if !gedcom.Detect(buf) {
				logger.Warn("Skipping file without GEDCOM header.", "input", file)
				skipped.Add(1)
				return nil
			}

			cfg := batchConfig(base, file, outDir)
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := a.convert(gctx, buf, cfg, assetDir); err != nil {
				return err
			}
			converted.Add(1)
			return nil
		})
	}

	result := BatchResult{}
	err = g.Wait()
	result.Converted = int(converted.Load())
	result.Skipped = int(skipped.Load())
	if err != nil {
		return result, err
	}
	logger.Info("Batch conversion finished.", "converted", result.Converted, "skipped", result.Skipped)
	return result, nil
}

// batchConfig derives the options of one batch conversion from base.
func batchConfig(base *config.Config, input, outDir string) *config.Config {
	cfg := *base
	cfg.Format = base.OutputFormat()
	cfg.Input = input

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	cfg.Output = filepath.Join(dir, name+"."+cfg.Format)
	return &cfg
}
