// Package builder provides internal helper functions used by Constructor
// implementations to emit roster rows.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Global indices: every constructor appends a block of rows; index i of
//     the whole roster maps to id firstID+i and name nameFn(i).
package builder

import (
	"strings"

	"github.com/katalvlaran/netanalyzer/entity"
	"github.com/katalvlaran/netanalyzer/loader"
)

// rowSet accumulates rows across constructors.
type rowSet struct {
	rows []loader.Row
}

// addBlock appends n rows tagged with method and returns the global index of
// the first one.
//
// Complexity: O(n) time, O(n) space.
func (rs *rowSet) addBlock(method string, n int, cfg builderConfig) int {
	base := len(rs.rows)
	category := strings.ToLower(method)
	for i := base; i < base+n; i++ {
		name := cfg.nameFn(i)
		contact := ""
		if cfg.contactDomain != "" {
			contact = strings.ToLower(name) + "@" + cfg.contactDomain
		}
		rs.rows = append(rs.rows, loader.Row{
			Entity: entity.New(cfg.firstID+int64(i), name, category, cfg.affiliation(i), contact),
		})
	}

	return base
}

// link declares the connection on both rows, as a roster lists it.
// Self links are ignored.
func (rs *rowSet) link(i, j int) {
	if i == j {
		return
	}
	a, b := &rs.rows[i], &rs.rows[j]
	a.NeighborIDs = append(a.NeighborIDs, b.Entity.ID)
	b.NeighborIDs = append(b.NeighborIDs, a.Entity.ID)
}

// linkRing connects base..base+n-1 into a cycle: i→i+1, then last→first.
func (rs *rowSet) linkRing(base, n int) {
	for i := 1; i < n; i++ {
		rs.link(base+i-1, base+i)
	}
	rs.link(base+n-1, base)
}
