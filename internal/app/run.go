package app

import (
	"context"

	"github.com/specialistvlad/ged2dot/internal/ctxlog"
)

// Run resolves the conversion options and converts either the configured
// input or, in batch mode, every GEDCOM file of the batch directory.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	opts, err := a.Options(ctx)
	if err != nil {
		return err
	}

	if a.config.BatchDir != "" {
		_, err = a.RunBatch(ctx, a.config.BatchDir, a.config.OutDir, opts)
	} else {
		err = a.Convert(ctx, opts)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
