package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/ged2dot/internal/app"
	"github.com/specialistvlad/ged2dot/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Only conversion options given explicitly end up in Config.Overrides, so a
// config file can still set the rest.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("ged2dot", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ged2dot - Converts a GEDCOM family tree to a Graphviz DOT graph.

Usage:
  ged2dot [options] [INPUT]

Arguments:
  INPUT
    Path to the GEDCOM file. "-" or nothing reads standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := flagSet.String("config", "", "Configuration file: HCL when it ends in .hcl, INI otherwise.")
	flagSet.String(config.KeyInput, defaults.Input, "Input GEDCOM file.")
	flagSet.String(config.KeyOutput, defaults.Output, "Output file.")
	flagSet.String(config.KeyRootFamily, defaults.RootFamily, "Identifier of the root family.")
	flagSet.Int(config.KeyFamilyDepth, defaults.FamilyDepth, "Number of generations to draw around the root family.")
	flagSet.String(config.KeyImageDir, defaults.ImageDir, "Portrait directory, relative to the input file.")
	flagSet.String(config.KeyNameOrder, defaults.NameOrder, "Name order. Options: 'little' or 'big'.")
	flagSet.String(config.KeyDirection, string(defaults.Direction), "Traversal direction. Options: 'both' or 'child'.")
	flagSet.String(config.KeyBirthFormat, defaults.BirthFormat, "Birth format when death is missing, e.g. '{}-' gives '1942-'.")
	flagSet.Bool(config.KeyRelPath, defaults.RelPath, "Use image paths relative to the output file.")
	flagSet.String(config.KeyFormat, "", "Output format. Options: 'dot', 'svg' or 'png'. Inferred from the output when empty.")
	flagSet.Bool(config.KeyInline, defaults.Inline, "Embed images into SVG output.")
	flagSet.String(config.KeyAssetDir, "", "Directory for placeholder images. Defaults to the user cache directory.")
	batchFlag := flagSet.String("batch", "", "Convert every .ged file below this directory.")
	outDirFlag := flagSet.String("outdir", "", "Output directory for batch mode. Defaults to next to each input.")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent batch conversions. 0 means one per CPU.")
	logFormatFlag := flagSet.String("log-format", "auto", "Log output format. Options: 'text', 'json' or 'auto'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	overrides := map[string]string{}
	flagSet.Visit(func(f *flag.Flag) {
		if isOptionKey(f.Name) {
			overrides[f.Name] = f.Value.String()
		}
	})

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one input path may be given"}
	}
	if flagSet.NArg() == 1 {
		if _, ok := overrides[config.KeyInput]; ok {
			return nil, false, &ExitError{Code: 2, Message: "input given both as a flag and as an argument"}
		}
		overrides[config.KeyInput] = flagSet.Arg(0)
	}
	slog.Debug("Conversion options determined.", "overrides", overrides)

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "text", "json", "auto":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text', 'json' or 'auto'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if depth, ok := overrides[config.KeyFamilyDepth]; ok {
		if n, _ := strconv.Atoi(depth); n < 0 {
			return nil, false, &ExitError{Code: 2, Message: "invalid familydepth: must not be negative"}
		}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ConfigPath:  *configFlag,
		Overrides:   overrides,
		BatchDir:    *batchFlag,
		OutDir:      *outDirFlag,
		WorkerCount: *workersFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func isOptionKey(name string) bool {
	for _, key := range config.Keys {
		if key == name {
			return true
		}
	}
	return false
}
