package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New logs to stderr so command output on stdout stays machine readable.
func New() zerolog.Logger {
	return ForLevel(os.Getenv("LOG_LEVEL"))
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(level)

	return logger
}

// ForLevel parses a LOG_LEVEL value, falling back to info.
func ForLevel(name string) zerolog.Logger {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return SetLevel(level)
}
