// SPDX-License-Identifier: MIT
// Package session implements the numbered-menu console over a network.
//
// The menu has seven commands. A Dispatcher owns the command table: for each
// Command it knows the prompts to ask and how to render the result as text.
// Session drives the table from a line-oriented Console; the terminal UI in
// package tui drives the same table from its own input widgets, so both
// front-ends print identical messages.
package session
