package logging

import (
	"context"
	"log/slog"

	"github.com/ai-labs/claude-skills/internal/errors"
)

// teeHandler backs --log-file: every record goes to the console handler
// and, as JSON, to the log file.
type teeHandler struct {
	console slog.Handler
	file    slog.Handler
}

func newTeeHandler(console, file slog.Handler) *teeHandler {
	return &teeHandler{console: console, file: file}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.console.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

// Handle writes to both sides even when one of them fails. Each side gets
// its own clone of the record so attrs added downstream stay local.
func (h *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, side := range []slog.Handler{h.console, h.file} {
		if !side.Enabled(ctx, r.Level) {
			continue
		}
		if err := side.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newTeeHandler(h.console.WithAttrs(attrs), h.file.WithAttrs(attrs))
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return newTeeHandler(h.console.WithGroup(name), h.file.WithGroup(name))
}
