// SPDX-License-Identifier: MIT
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/netanalyzer/entity"
)

// maxLineBytes bounds a single roster line; rows with thousands of
// connection columns still fit.
const maxLineBytes = 1 << 20

// splitFields splits a line on tabs and drops trailing empty columns, so a
// row padded with tabs is judged by the columns it actually fills.
func splitFields(line string) []string {
	fields := strings.Split(line, "\t")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return fields
}

// ParseLine parses one data line. lineNo is 1-based and only used in errors.
//
// It returns ok=false with a nil error when the line is blank or has fewer
// than MinFields columns. Connection columns beyond connectionCount are
// ignored; declared columns that are missing or empty are skipped.
// A negative connectionCount declares no connections.
func ParseLine(line string, lineNo int) (Row, bool, error) {
	if strings.TrimSpace(line) == "" {
		return Row{}, false, nil
	}
	fields := splitFields(line)
	if len(fields) < MinFields {
		return Row{}, false, nil
	}

	id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return Row{}, false, fmt.Errorf("%w: line %d: id %q: %v", ErrMalformedField, lineNo, fields[0], err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(fields[5]))
	if err != nil {
		return Row{}, false, fmt.Errorf("%w: line %d: connectionCount %q: %v", ErrMalformedField, lineNo, fields[5], err)
	}

	row := Row{Entity: entity.New(id, fields[1], fields[2], fields[3], fields[4])}
	// connectionCount is untrusted; only the columns present are read.
	declared := min(count, len(fields)-MinFields)
	if declared > 0 {
		row.NeighborIDs = make([]int64, 0, declared)
	}
	for i := 0; i < declared; i++ {
		c := strings.TrimSpace(fields[MinFields+i])
		if c == "" {
			continue
		}
		nid, err := strconv.ParseInt(c, 10, 64)
		if err != nil {
			return Row{}, false, fmt.Errorf("%w: line %d: connectionID%d %q: %v", ErrMalformedField, lineNo, i+1, c, err)
		}
		row.NeighborIDs = append(row.NeighborIDs, nid)
	}

	return row, true, nil
}

// ReadRows reads a whole roster from r. The first line is the header and is
// discarded. Only Rows, Skipped and Blank are filled in the returned Stats.
//
// Any read failure is wrapped in ErrRead; any numeric failure is returned as
// is (ErrMalformedField). In both cases no rows are returned.
func ReadRows(r io.Reader) ([]Row, Stats, error) {
	var (
		rows  []Row
		stats Stats
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			stats.Blank++
			continue
		}
		row, ok, err := ParseLine(line, lineNo)
		if err != nil {
			return nil, Stats{}, err
		}
		if !ok {
			stats.Skipped++
			continue
		}
		rows = append(rows, row)
		stats.Rows++
	}
	if err := sc.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("%w: line %d: %v", ErrRead, lineNo+1, err)
	}

	return rows, stats, nil
}
