// SPDX-License-Identifier: MIT
// Package server exposes the analyzer over HTTP with gin, optionally
// reloading the roster when its file changes.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netanalyzer/logging"
	"github.com/katalvlaran/netanalyzer/metrics"
	"github.com/katalvlaran/netanalyzer/network"
)

const shutdownTimeout = 5 * time.Second

// Config holds the listener settings.
type Config struct {
	// Address is the listen address, for example ":8080".
	Address string
	// WatchPath, when set, is reloaded into the network on every change.
	WatchPath string
	// Debounce overrides DefaultDebounce.
	Debounce time.Duration
}

// Server is a running HTTP front-end.
type Server struct {
	cfg  Config
	net  *network.Network
	http *http.Server
	log  *slog.Logger
}

// New wires the router for h. rec may be nil.
func New(cfg Config, net *network.Network, h *Handlers, rec *metrics.Recorder, log *slog.Logger) *Server {
	return &Server{
		cfg: cfg,
		net: net,
		http: &http.Server{
			Addr:              cfg.Address,
			Handler:           NewRouter(h, rec),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: logging.OrDiscard(log),
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run serves until ctx is cancelled, then shuts down gracefully. The file
// watcher, when configured, runs alongside the listener; the first failure
// of either stops both.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", s.cfg.Address))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen %s: %w", s.cfg.Address, err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(sctx)
	})

	if s.cfg.WatchPath != "" {
		g.Go(func() error {
			return Watch(ctx, s.cfg.WatchPath, s.cfg.Debounce, func(path string) error {
				_, err := s.net.Reload(path)
				return err
			}, s.log)
		})
	}

	return g.Wait()
}
