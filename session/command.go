// SPDX-License-Identifier: MIT
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Command is one numbered menu entry.
type Command int

// Menu commands, numbered as shown to the user.
const (
	RemoveConnection Command = iota + 1
	DeleteNode
	CountConnections
	ConnectionGroups
	Closeness
	FindConnectors
	Exit
)

// ErrUnknownCommand is returned by ParseCommand for input outside the menu.
var ErrUnknownCommand = errors.New("session: unknown command")

// Commands lists every command in menu order.
func Commands() []Command {
	return []Command{RemoveConnection, DeleteNode, CountConnections, ConnectionGroups, Closeness, FindConnectors, Exit}
}

// String returns the menu label.
func (c Command) String() string {
	switch c {
	case RemoveConnection:
		return "Remove connection"
	case DeleteNode:
		return "Delete Node"
	case CountConnections:
		return "Count connections"
	case ConnectionGroups:
		return "Connection Groups"
	case Closeness:
		return "Closeness centrality"
	case FindConnectors:
		return "Find Connectors"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// ParseCommand reads a menu number.
func ParseCommand(s string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(RemoveConnection) || n > int(Exit) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}

	return Command(n), nil
}
