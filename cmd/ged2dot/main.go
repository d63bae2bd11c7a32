package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/specialistvlad/ged2dot/internal/app"
	"github.com/specialistvlad/ged2dot/internal/cli"
)

// main is the entrypoint for the ged2dot application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		os.Exit(report(os.Stderr, err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
// Converted output goes to outW, usage text and logs to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ged2dotApp := app.NewApp(outW, errW, appConfig)
	return ged2dotApp.Run(ctx)
}

// report prints err with a red prefix when w is a terminal and returns the
// process exit code.
func report(w io.Writer, err error) int {
	prefix := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		prefix.DisableColor()
	}

	code, message := 1, err.Error()
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		code, message = exitErr.Code, exitErr.Message
	}
	fmt.Fprintf(w, "%s %s\n", prefix.Sprint("error:"), message)
	return code
}
