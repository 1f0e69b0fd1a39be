package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. The TUI owns the terminal, so
// logs go to a file; with no path configured everything is discarded.
func NewLogger(path string) (zerolog.Logger, error) {
	if path == "" {
		return zerolog.New(io.Discard), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.New(io.Discard), err
	}
	return zerolog.New(f).With().Timestamp().Logger(), nil
}
