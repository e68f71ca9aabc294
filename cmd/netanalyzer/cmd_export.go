// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netanalyzer/core"
	"github.com/katalvlaran/netanalyzer/export"
)

// Export formats.
const (
	formatJSON = "json"
	formatHTML = "html"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format   string
		output   string
		title    string
		compress bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graph as JSON or as an interactive HTML page",
		Long: `Write the graph with its connectors and bridges marked.

  --format json   the snapshot document (add --compress for a snappy stream)
  --format html   a self-contained vis-network page; connectors are labelled
                  "CRITICAL: <name>" and bridges are dashed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatJSON && format != formatHTML {
				return fmt.Errorf("unknown format %q: want %s or %s", format, formatJSON, formatHTML)
			}
			n, err := a.mustOpen()
			if err != nil {
				return err
			}
			if title == "" {
				title = a.cfg.Export.Title
			}
			var doc export.Document
			if err := n.View(func(g *core.Graph) error {
				var err error
				doc, err = export.Snapshot(g, title)
				return err
			}); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return writeDocument(w, doc, format, compress || a.cfg.Export.Compress, a.exportStyle())
		},
	}
	f := cmd.Flags()
	f.StringVar(&format, "format", formatHTML, "output format: json or html")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&title, "title", "", "document title (default from config)")
	f.BoolVar(&compress, "compress", false, "snappy-compress JSON output")

	return cmd
}

func writeDocument(w io.Writer, doc export.Document, format string, compress bool, style export.Style) error {
	switch {
	case format == formatHTML:
		return export.WriteHTML(w, doc, style)
	case compress:
		return export.WriteCompressedJSON(w, doc)
	default:
		return export.WriteJSON(w, doc)
	}
}
