// SPDX-License-Identifier: MIT
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/network"
)

// Messages shared by the handlers.
const (
	msgSorry       = "Sorry.. "
	msgInvalid     = "Invalid option. Please try again."
	msgExit        = "Exiting from the program."
	msgNoConnector = "There are no connectors in the graph."
)

// Handler renders the result of one command to w. args holds the answers to
// the command's prompts, in order.
type Handler func(args []string, w io.Writer) error

// Action is one row of the command table.
type Action struct {
	Command Command
	Prompts []string
	Run     Handler
}

// Dispatcher maps commands to actions over one network.
type Dispatcher struct {
	net     *network.Network
	attr    entity.Attribute
	actions map[Command]Action
}

// NewDispatcher builds the command table. attr selects the field the
// connection-groups command matches against.
func NewDispatcher(net *network.Network, attr entity.Attribute) *Dispatcher {
	d := &Dispatcher{net: net, attr: attr}
	d.actions = map[Command]Action{
		RemoveConnection: {RemoveConnection, []string{"Enter first node's name: ", "Enter second node's name: "}, d.removeConnection},
		DeleteNode:       {DeleteNode, []string{"Enter node's name to delete: "}, d.deleteNode},
		CountConnections: {CountConnections, []string{"Enter node's name: "}, d.countConnections},
		ConnectionGroups: {ConnectionGroups, []string{"Enter " + groupNoun(attr) + " name: "}, d.connectionGroups},
		Closeness:        {Closeness, []string{"Enter node's name: "}, d.closeness},
		FindConnectors:   {FindConnectors, nil, d.findConnectors},
		Exit:             {Exit, nil, d.exit},
	}

	return d
}

// groupNoun is the roster column name of attr.
func groupNoun(attr entity.Attribute) string {
	switch attr {
	case entity.AttrCategory:
		return "group"
	case entity.AttrName:
		return "node"
	default:
		return "unit"
	}
}

// Action returns the table row for c.
func (d *Dispatcher) Action(c Command) (Action, bool) {
	a, ok := d.actions[c]

	return a, ok
}

// Execute runs c with the given prompt answers.
func (d *Dispatcher) Execute(c Command, args []string, w io.Writer) error {
	a, ok := d.actions[c]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCommand, int(c))
	}
	if len(args) < len(a.Prompts) {
		return fmt.Errorf("session: %s needs %d answers, got %d", c, len(a.Prompts), len(args))
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	return a.Run(args, w)
}

// WriteMenu prints the menu preceded by a blank line.
func WriteMenu(w io.Writer) {
	fmt.Fprintln(w)
	for _, c := range Commands() {
		fmt.Fprintf(w, "%d. %s\n", int(c), c)
	}
}

// WriteSummary prints the load banner.
func WriteSummary(w io.Writer, s network.Summary) {
	fmt.Fprintln(w, "Input file is read successfully..")
	writeTotals(w, "vertices", s)
}

func writeTotals(w io.Writer, noun string, s network.Summary) {
	fmt.Fprintf(w, "Total number of %s in the graph: %d\n", noun, s.Vertices)
	fmt.Fprintf(w, "Total number of edges in the graph: %d\n", s.Edges)
}

// notFound prints the apology for every missing name and reports whether
// err was a lookup failure.
func notFound(w io.Writer, err error) bool {
	var nf *network.NotFoundError
	if !errors.As(err, &nf) {
		return false
	}
	for _, name := range nf.Names {
		fmt.Fprintln(w, msgSorry)
		fmt.Fprintf(w, "%s not found!\n", name)
	}

	return true
}

func (d *Dispatcher) removeConnection(args []string, w io.Writer) error {
	r, err := d.net.RemoveConnection(args[0], args[1])
	if notFound(w, err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !r.Removed {
		fmt.Fprintf(w, "Sorry.. There is no edge between the vertices %s and %s.\n", r.A.Name, r.B.Name)
		return nil
	}
	fmt.Fprintf(w, "The edge between the nodes %s and %s has been successfully removed..\n", r.A.Name, r.B.Name)
	writeTotals(w, "nodes", d.net.Summary())

	return nil
}

func (d *Dispatcher) deleteNode(args []string, w io.Writer) error {
	_, _, err := d.net.DeleteNode(args[0])
	if notFound(w, err) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The node %s has been successfully removed..\n", args[0])
	writeTotals(w, "vertices", d.net.Summary())

	return nil
}

func (d *Dispatcher) countConnections(args []string, w io.Writer) error {
	e, nbrs, err := d.net.Connections(args[0])
	if notFound(w, err) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Connection count for %s: %d\n", e.Name, len(nbrs))
	fmt.Fprintf(w, "Connections of %s are:\n", e.Name)
	for _, n := range nbrs {
		fmt.Fprintln(w, n.Name)
	}

	return nil
}

func (d *Dispatcher) connectionGroups(args []string, w io.Writer) error {
	groups, err := d.net.ConnectionGroups(d.attr, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Following are the connection groups in the %s %s:\n", groupNoun(d.attr), args[0])
	for _, g := range groups {
		names := make([]string, len(g))
		for i, e := range g {
			names[i] = e.Name
		}
		fmt.Fprintln(w, strings.Join(names, " - "))
	}

	return nil
}

func (d *Dispatcher) closeness(args []string, w io.Writer) error {
	e, score, err := d.net.Closeness(args[0])
	if notFound(w, err) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The Closeness Centrality for %s: %.2f\n", e.Name, score.Raw)
	fmt.Fprintf(w, "The Normalized Closeness Centrality for %s: %.2f\n", e.Name, score.Normalized)

	return nil
}

func (d *Dispatcher) findConnectors(_ []string, w io.Writer) error {
	cs, err := d.net.Connectors()
	if err != nil {
		return err
	}
	if len(cs) == 0 {
		fmt.Fprintln(w, msgNoConnector)
		return nil
	}
	fmt.Fprintln(w, "The connectors in the graph are as follows:")
	for _, e := range cs {
		fmt.Fprintf(w, "%s from %s\n", e.Name, e.Affiliation)
	}

	return nil
}

func (d *Dispatcher) exit(_ []string, w io.Writer) error {
	fmt.Fprintln(w, msgExit)

	return nil
}
