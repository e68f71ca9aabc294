// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/network"
	"github.com/katalvlaran/netanalyzer/session"
)

// oneShot opens the input and runs c once with args, printing exactly what
// the menu would print.
func oneShot(cmd *cobra.Command, a *app, c session.Command, attr entity.Attribute, args ...string) error {
	n, err := a.mustOpen()
	if err != nil {
		return err
	}
	warnAmbiguous(cmd, n, args...)

	return session.NewDispatcher(n, attr).Execute(c, args, cmd.OutOrStdout())
}

// warnAmbiguous notes on stderr when a name matches more than one vertex.
func warnAmbiguous(cmd *cobra.Command, n *network.Network, names ...string) {
	for _, name := range names {
		if all := n.Ambiguous(name); len(all) > 1 {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d nodes are named %q; using id %d\n", len(all), name, all[0].ID)
		}
	}
}

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the vertex and edge totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.mustOpen()
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(n.Summary())
			}
			session.WriteSummary(cmd.OutOrStdout(), n.Summary())

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func newConnectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connections <name>",
		Short: "Count and list the connections of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oneShot(cmd, a, session.CountConnections, entity.AttrAffiliation, args[0])
		},
	}
}

func newGroupsCmd(a *app) *cobra.Command {
	var attrName string
	cmd := &cobra.Command{
		Use:   "groups <value>",
		Short: "List the connection groups of the nodes matching value",
		Long: `List, per connected component, the nodes whose attribute equals value
(case-insensitive). The attribute defaults to the configured group_attribute.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.GroupAttribute
			if attrName != "" {
				name = attrName
			}
			attr, err := entity.ParseAttribute(name)
			if err != nil {
				return err
			}
			return oneShot(cmd, a, session.ConnectionGroups, attr, args[0])
		},
	}
	cmd.Flags().StringVar(&attrName, "attr", "", "attribute to match: unit, group or name")

	return cmd
}

func newClosenessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "closeness <name>",
		Short: "Print the closeness centrality of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return oneShot(cmd, a, session.Closeness, entity.AttrAffiliation, args[0])
		},
	}
}

func newConnectorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connectors",
		Short: "List the nodes whose removal disconnects the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return oneShot(cmd, a, session.FindConnectors, entity.AttrAffiliation)
		},
	}
}

func newImpactCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "impact <name>",
		Short: "Show what deleting a node would do, without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.mustOpen()
			if err != nil {
				return err
			}
			warnAmbiguous(cmd, n, args[0])
			r, err := n.ImpactOfRemoval(args[0])
			if err != nil {
				return err
			}
			writeImpact(cmd, r)

			return nil
		},
	}
}

func writeImpact(cmd *cobra.Command, r network.ImpactReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Deleting %s would remove %d edges.\n", r.Node.Name, r.EdgesRemoved)
	fmt.Fprintf(out, "Connected components: %d before, %d after\n", r.ComponentsBefore, r.ComponentsAfter)
	if !r.Splits() {
		fmt.Fprintf(out, "%s is not a connector.\n", r.Node.Name)
		return
	}
	sizes := make([]string, len(r.Fragments))
	for i, f := range r.Fragments {
		sizes[i] = fmt.Sprint(f)
	}
	fmt.Fprintf(out, "%s is a connector; its component would split into parts of size %s\n",
		r.Node.Name, strings.Join(sizes, ", "))
}
