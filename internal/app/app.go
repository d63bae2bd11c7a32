package app

import (
	"io"
	"log/slog"
	"os"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. outW receives
// conversion output written to "-", logs go to errW.
func NewApp(outW, errW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		inR:    os.Stdin,
		outW:   outW,
		logger: logger,
		config: appConfig,
	}
}
