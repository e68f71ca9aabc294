// SPDX-License-Identifier: MIT
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}

	return nil
}

// WriteCompressedJSON writes doc as JSON inside a snappy framed stream.
func WriteCompressedJSON(w io.Writer, doc Document) error {
	sw := snappy.NewBufferedWriter(w)
	if err := json.NewEncoder(sw).Encode(doc); err != nil {
		sw.Close()
		return fmt.Errorf("export: encode json: %w", err)
	}
	if err := sw.Close(); err != nil {
		return fmt.Errorf("export: flush snappy stream: %w", err)
	}

	return nil
}

// ReadCompressedJSON decodes a stream written by WriteCompressedJSON.
func ReadCompressedJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(snappy.NewReader(r)).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("export: decode snappy json: %w", err)
	}

	return doc, nil
}
