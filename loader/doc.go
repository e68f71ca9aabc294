// SPDX-License-Identifier: MIT
// Package loader turns a tab-separated roster into a populated core.Graph.
//
// Input format
//
//	id<TAB>nodeName<TAB>group<TAB>unit<TAB>contact<TAB>connectionCount<TAB>connectionID1 ... connectionIDn
//
// The first line is a header and is discarded. Blank lines are ignored.
// Rows with fewer than six columns are skipped and counted, never fatal.
// A column that must be numeric (id, connectionCount, a non-empty connection
// id) and does not parse aborts the whole load with ErrMalformedField.
//
// Construction runs in two passes:
//
//  1. every row becomes a vertex (first row wins on duplicate ids) and its
//     declared connection ids are queued as pending (owner, neighbor) pairs;
//  2. once the vertex set is complete, each pending pair is applied:
//     self references are dropped, only the owner < neighbor direction is
//     linked, and references to unknown ids are ignored.
//
// Canonicalising on owner < neighbor means a pair declared on both sides is
// linked exactly once. A pair declared only by the higher id is not linked.
//
// Build is pure and never logs. Load and LoadFile wrap ReadRows and Build,
// logging a debug summary of Stats through the optional *slog.Logger.
//
// WriteRows emits the same format, so generated fixtures round-trip.
package loader
