// SPDX-License-Identifier: MIT
// Package network is the engine surface used by the command-line, terminal
// and HTTP front-ends.
//
// A Network owns one core.Graph and serializes access to it with a single
// RWMutex: queries share the read lock, mutations take the write lock for the
// whole operation. Callers address vertices by display name; lookups are
// case-insensitive and resolve to the first match in insertion order.
//
// Every operation is logged at debug level and, when a metrics.Recorder is
// attached, counted and timed under its operation name.
//
// Results are returned as entity.Entity values so that nothing handed out by
// a Network aliases the guarded graph.
package network
