// Package netanalyzer loads a tab-separated roster of people or
// infrastructure nodes and answers structural questions about the network
// their connections form.
//
// What is inside?
//
//	core/      undirected, unweighted Graph: vertex arena, symmetric
//	           neighbor lists, edge counter kept in sync by every mutation
//	entity/    the immutable record carried by each vertex
//	loader/    roster reader: two-pass construction, lenient by default
//	bfs/       traversal, connected components, grouping by attribute
//	dijkstra/  unit-weight shortest paths and closeness centrality
//	dfs/       traversal and iterative articulation points (connectors)
//	builder/   synthetic rosters from topology shapes
//	network/   one guarded graph with the analyzer operations by name
//	session/   the numbered console menu
//	tui/       the same menu as a bubbletea program
//	server/    the same operations over HTTP (gin), with file watching
//	export/    JSON, snappy-compressed JSON and vis-network HTML
//	config/    YAML settings with env and flag overrides
//	logging/   slog handlers
//	metrics/   Prometheus counters and gauges
//
// A roster line looks like
//
//	id  nodeName  group  unit  contact  connectionCount  connectionID...
//
// and the square
//
//	    A───B
//	    │   │
//	    C───D
//
// is four lines, each naming its two neighbors.
//
//	go install github.com/katalvlaran/netanalyzer/cmd/netanalyzer@latest
package netanalyzer
