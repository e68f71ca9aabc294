// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netanalyzer/config"
	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/export"
	"github.com/katalvlaran/netanalyzer/loader"
	"github.com/katalvlaran/netanalyzer/logging"
	"github.com/katalvlaran/netanalyzer/metrics"
	"github.com/katalvlaran/netanalyzer/network"
)

// errNoInput is returned by commands that need a roster when none was given.
var errNoInput = errors.New("no input file: pass --input or set " + config.EnvInput)

// app carries what every command needs after flag and config resolution.
type app struct {
	cfgPath     string
	input       string
	logLevel    string
	logFormat   string
	metricsAddr string

	cfg       config.Config
	log       *slog.Logger
	rec       *metrics.Recorder
	sessionID string
	metricsSv *http.Server
}

// setup resolves configuration: file, then environment, then flags that were
// explicitly set.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = a.input
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Address = a.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.sessionID = uuid.NewString()
	a.log = logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}).With(slog.String("session_id", a.sessionID))
	a.rec = metrics.NewRecorder()

	if cfg.Metrics.Enabled {
		a.serveMetrics(cfg.Metrics.Address)
	}

	return nil
}

// serveMetrics exposes the recorder on addr for the lifetime of the command.
func (a *app) serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.rec.Handler())
	a.metricsSv = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		a.log.Info("metrics listening", slog.String("addr", addr))
		if err := a.metricsSv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics listener", slog.String("error", err.Error()))
		}
	}()
}

func (a *app) teardown() {
	if a.metricsSv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = a.metricsSv.Shutdown(ctx)
}

// open loads path into a network wired to the app's logger and recorder.
func (a *app) open(path string) (*network.Network, loader.Stats, error) {
	return network.Open(path, network.WithLogger(a.log), network.WithMetrics(a.rec))
}

// mustOpen opens the configured input or fails with errNoInput.
func (a *app) mustOpen() (*network.Network, error) {
	if a.cfg.Input == "" {
		return nil, errNoInput
	}
	n, _, err := a.open(a.cfg.Input)

	return n, err
}

func (a *app) groupAttribute() (entity.Attribute, error) {
	return entity.ParseAttribute(a.cfg.GroupAttribute)
}

func (a *app) exportStyle() export.Style {
	s := export.DefaultStyle()
	if a.cfg.Export.ConnectorColor != "" {
		s.ConnectorColor = a.cfg.Export.ConnectorColor
	}
	if a.cfg.Export.NodeColor != "" {
		s.NodeColor = a.cfg.Export.NodeColor
	}

	return s
}
