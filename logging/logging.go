// SPDX-License-Identifier: MIT
// Package logging builds the slog loggers shared by the loader, the network
// facade and the command line front-ends.
//
// Engine packages (core, bfs, dfs, dijkstra) never log. Everything above them
// receives a *slog.Logger through a functional option and defaults to Discard.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures New.
type Options struct {
	// Level is the minimum level emitted.
	Level slog.Level

	// Format is FormatText or FormatJSON. Anything else falls back to text.
	Format string

	// AddSource attaches file:line to every record.
	AddSource bool
}

// New returns a logger writing to w in the requested format.
// A nil writer yields Discard().
func New(w io.Writer, opts Options) *slog.Logger {
	if w == nil {
		return Discard()
	}
	ho := &slog.HandlerOptions{Level: opts.Level, AddSource: opts.AddSource}
	if strings.EqualFold(opts.Format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, ho))
	}

	return slog.New(slog.NewTextHandler(w, ho))
}

// ParseLevel maps a level name to a slog.Level. Matching is case-insensitive;
// unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns l, or Discard() when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}

	return l
}
