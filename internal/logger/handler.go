package logger

import (
	"context"
	"log/slog"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler to apply tag filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Reference to processed config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{baseHandler: base, cfg: cfg}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// Handle applies tag filtering before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	var tagValue string
	var tagFound bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tagValue = strings.ToLower(a.Value.String())
			tagFound = true
			return false // stop iteration
		}
		return true
	})

	if tagFound {
		if _, disabled := h.cfg.disabledTagsSet[tagValue]; disabled {
			return nil // drop the message
		}
		if h.cfg.enabledTagsSet != nil {
			if _, enabled := h.cfg.enabledTagsSet[tagValue]; !enabled {
				return nil
			}
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Filtering for specific tags; untagged messages are dropped only
		// when they are debug records (info and above always pass).
		if r.Level < slog.LevelInfo {
			return nil
		}
	}

	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
