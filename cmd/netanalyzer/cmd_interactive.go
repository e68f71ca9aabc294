// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netanalyzer/session"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run the numbered menu on standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, a)
		},
	}
}

// runInteractive prompts for the roster when none is configured, prints the
// load banner and runs the menu until Exit or end of input.
func runInteractive(cmd *cobra.Command, a *app) error {
	con := session.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	out := con.Out()

	path := a.cfg.Input
	if path == "" {
		p, err := con.Prompt("Enter input filename: ")
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		path = p
	}

	n, stats, err := a.open(path)
	if err != nil {
		fmt.Fprintf(out, "Error reading file: %v\n", err)
		return nil
	}
	a.log.Debug("roster loaded", slog.String("path", path), slog.Int("rows", stats.Rows), slog.Int("skipped", stats.Skipped))
	session.WriteSummary(out, n.Summary())

	attr, err := a.groupAttribute()
	if err != nil {
		return err
	}
	s := session.New(con, session.NewDispatcher(n, attr), session.WithLogger(a.log))

	return s.Run(cmd.Context())
}
