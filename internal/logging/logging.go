// Package logging configures the process-wide slog default and hands out
// component-scoped loggers. Diagnostics go to stderr; stdout is reserved for
// the "Saved <file>" confirmation lines.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Init installs a text handler at the given level as the slog default.
// A nil writer means os.Stderr.
func Init(level slog.Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// New returns a logger tagged with a "component" attribute.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
