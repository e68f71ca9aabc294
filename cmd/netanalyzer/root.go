// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "netanalyzer",
		Short: "Analyze the connection network described by a roster file",
		Long: `netanalyzer loads a tab-separated roster (id, nodeName, group, unit,
contact, connectionCount, connectionID...) into an undirected graph and
answers structural questions about it.

Without a subcommand it runs the numbered interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, a)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVarP(&a.input, "input", "i", "", "roster file (tab-separated)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text, json")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	root.AddCommand(
		newInteractiveCmd(a),
		newTUICmd(a),
		newStatsCmd(a),
		newConnectionsCmd(a),
		newGroupsCmd(a),
		newClosenessCmd(a),
		newConnectorsCmd(a),
		newImpactCmd(a),
		newExportCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
	)

	return root
}
