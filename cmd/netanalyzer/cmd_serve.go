// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netanalyzer/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer over HTTP",
		Long: `Serve the analyzer API (/api/...), the graph exports (/graph.json,
/graph.html), /healthz and /metrics. With --watch the roster is reloaded
whenever its file changes; a failed reload keeps the previous graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.mustOpen()
			if err != nil {
				return err
			}
			attr, err := a.groupAttribute()
			if err != nil {
				return err
			}
			cfg := server.Config{Address: a.cfg.Server.Address}
			if cmd.Flags().Changed("addr") {
				cfg.Address = addr
			}
			if watch || a.cfg.Server.Watch {
				cfg.WatchPath = a.cfg.Input
			}
			h := server.NewHandlers(n,
				server.WithGroupAttribute(attr),
				server.WithExport(a.cfg.Export.Title, a.exportStyle()),
				server.WithLogger(a.log),
			)

			return server.New(cfg, n, h, a.rec, a.log).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the roster when the file changes")

	return cmd
}
