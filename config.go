package stockroom

import (
	"io"
	"log/slog"
)

// Config holds global configuration for the storage system
var Config config

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type config struct {
	logger *slog.Logger
}

// SetLogger routes the package's debug logging to l. Logging is discarded
// when no logger is set.
func (c *config) SetLogger(l *slog.Logger) {
	c.logger = l
}

func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return discardLogger
	}
	return c.logger
}
