// Package logger builds the zerolog loggers used by the CLI.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New picks a logger based on the ENV environment variable: JSON output
// for production values, a console writer otherwise.
func New() zerolog.Logger {
	switch os.Getenv("ENV") {
	case "production", "prod":
		return NewProduction()
	}
	return NewDevelopment()
}

// NewDevelopment returns a human-readable console logger on stderr.
func NewDevelopment() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewProduction returns a JSON logger with UNIX timestamps.
func NewProduction() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
