// SPDX-License-Identifier: MIT
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteRows writes rows in roster format, header first. The header names as
// many connectionID columns as the widest row needs.
func WriteRows(w io.Writer, rows []Row) error {
	width := 0
	for _, r := range rows {
		if len(r.NeighborIDs) > width {
			width = len(r.NeighborIDs)
		}
	}

	bw := bufio.NewWriter(w)
	var sb strings.Builder
	sb.WriteString(Header)
	for i := 1; i <= width; i++ {
		sb.WriteString("\tconnectionID")
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('\n')
	if _, err := bw.WriteString(sb.String()); err != nil {
		return fmt.Errorf("loader: write header: %w", err)
	}

	for _, r := range rows {
		sb.Reset()
		e := r.Entity
		sb.WriteString(strconv.FormatInt(e.ID, 10))
		for _, s := range []string{e.Name, e.Category, e.Affiliation, e.Contact} {
			sb.WriteByte('\t')
			sb.WriteString(sanitize(s))
		}
		sb.WriteByte('\t')
		sb.WriteString(strconv.Itoa(len(r.NeighborIDs)))
		for _, nid := range r.NeighborIDs {
			sb.WriteByte('\t')
			sb.WriteString(strconv.FormatInt(nid, 10))
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return fmt.Errorf("loader: write row %d: %w", e.ID, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: flush: %w", err)
	}

	return nil
}

// sanitize keeps a text column on one cell.
func sanitize(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
