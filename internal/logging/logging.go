package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a text logger writing to out at the given level name
// ("debug", "info", "warn", ...).
func New(level string, out io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return logger, nil
}

// Discard returns a logger that drops everything. Used by tests and callers
// that have no logger of their own.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
