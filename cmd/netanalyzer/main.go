// SPDX-License-Identifier: MIT
// Command netanalyzer loads a tab-separated roster and answers structural
// questions about the network it describes: connection counts, groups,
// closeness centrality and connectors.
//
// Usage:
//
//	netanalyzer                      # interactive menu, prompts for the file
//	netanalyzer -i roster.tsv tui    # full-screen menu
//	netanalyzer -i roster.tsv connectors
//	netanalyzer -i roster.tsv serve --watch
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "netanalyzer:", err)
		stop()
		os.Exit(1)
	}
}
