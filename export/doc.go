// SPDX-License-Identifier: MIT
// Package export renders a network graph for people and for other programs.
//
// Snapshot captures the graph together with its connectors and bridges.
// A Document can then be written as indented JSON, as a snappy-framed JSON
// stream for large rosters, or as a self-contained HTML page that draws the
// network with vis-network and highlights every connector.
package export
