// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netanalyzer/session"
	"github.com/katalvlaran/netanalyzer/tui"
)

var errNotTerminal = errors.New("tui needs a terminal; use the interactive command instead")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the menu as a full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNotTerminal
			}
			n, err := a.mustOpen()
			if err != nil {
				return err
			}
			attr, err := a.groupAttribute()
			if err != nil {
				return err
			}
			m := tui.New(session.NewDispatcher(n, attr), n.Summary, a.cfg.Export.Title)

			return tui.Run(cmd.Context(), m, os.Stdin, os.Stdout)
		},
	}
}
