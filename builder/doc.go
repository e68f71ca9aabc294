// Package builder produces deterministic roster fixtures: classic topologies
// (path, star, cycle, wheel, complete, grid, random sparse) emitted as
// loader.Row values, ready to be written as TSV or built into a core.Graph.
//
// The package offers the following key components:
//
//   - Constructors: Path, Star, Cycle, Wheel, Complete, Grid, RandomSparse.
//     Each one appends a new connected block of vertices; composing several
//     constructors in BuildRows yields one roster with several components.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds the RNG, the name scheme, affiliations, first id.
//   - Name schemes (NameFn implementations):
//     – DefaultNameFn:      "n0", "n1", …
//     – SymbolNameFn:       single letters ("A","B",…).
//     – ExcelColumnNameFn:  spreadsheet columns ("A","Z","AA",…).
//     – PrefixNameFn:       prefix + decimal index.
//
// Guarantees:
//
//   - Determinism: the same constructors, options and seed give the same rows.
//   - Every connection is declared on both rows of the pair, as a hand written
//     roster would be, so the loader's lower-to-higher rule creates each edge once.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return the sentinels in errors.go.
package builder
