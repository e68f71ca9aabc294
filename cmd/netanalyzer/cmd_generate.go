// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netanalyzer/builder"
	"github.com/katalvlaran/netanalyzer/loader"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		names  string
		units  []string
		seed   int64
		first  int64
		domain string
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate <shape>...",
		Short: "Write a synthetic roster built from topology shapes",
		Long: `Write a synthetic roster. Each shape adds one connected block; ids and
names continue across blocks.

Shapes:
  path:N  cycle:N  star:N  wheel:N  complete:N  grid:RxC  random:N:P

Example:
  netanalyzer generate star:5 grid:3x4 random:20:0.15 --seed 7 -o roster.tsv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cons := make([]builder.Constructor, 0, len(args))
			for _, s := range args {
				c, err := parseShape(s)
				if err != nil {
					return err
				}
				cons = append(cons, c)
			}
			opts, err := builderOptions(names, units, seed, first, domain)
			if err != nil {
				return err
			}
			rows, err := builder.BuildRows(opts, cons...)
			if err != nil {
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
			if err := loader.WriteRows(w, rows); err != nil {
				return err
			}
			a.log.Debug("roster generated", slog.Int("rows", len(rows)), slog.Int("shapes", len(cons)))

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&names, "names", "default", "name scheme: default, symbol, excel or prefix=<p>")
	f.StringSliceVar(&units, "units", nil, "unit values assigned round-robin")
	f.Int64Var(&seed, "seed", 1, "seed for random shapes")
	f.Int64Var(&first, "first-id", builder.DefaultFirstID, "id of the first generated row")
	f.StringVar(&domain, "domain", builder.DefaultContactDomain, "contact address domain (empty for none)")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func builderOptions(names string, units []string, seed, first int64, domain string) ([]builder.BuilderOption, error) {
	if first < 0 {
		return nil, fmt.Errorf("first-id must be >= 0, got %d", first)
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithFirstID(first),
		builder.WithContactDomain(domain),
	}
	if len(units) > 0 {
		opts = append(opts, builder.WithAffiliations(units...))
	}
	switch {
	case names == "default":
	case names == "symbol":
		opts = append(opts, builder.WithSymbolNames())
	case names == "excel":
		opts = append(opts, builder.WithExcelColumnNames())
	case strings.HasPrefix(names, "prefix="):
		opts = append(opts, builder.WithPrefixNames(strings.TrimPrefix(names, "prefix=")))
	default:
		return nil, fmt.Errorf("unknown name scheme %q", names)
	}

	return opts, nil
}

// parseShape turns "kind:args" into a constructor.
func parseShape(s string) (builder.Constructor, error) {
	kind, rest, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	bad := func(err error) (builder.Constructor, error) {
		return nil, fmt.Errorf("shape %q: %w", s, err)
	}

	switch kind {
	case "path", "cycle", "star", "wheel", "complete":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return bad(err)
		}
		switch kind {
		case "path":
			return builder.Path(n), nil
		case "cycle":
			return builder.Cycle(n), nil
		case "star":
			return builder.Star(n), nil
		case "wheel":
			return builder.Wheel(n), nil
		default:
			return builder.Complete(n), nil
		}

	case "grid":
		r, c, ok := strings.Cut(rest, "x")
		if !ok {
			return bad(fmt.Errorf("want grid:RxC"))
		}
		rows, err := strconv.Atoi(r)
		if err != nil {
			return bad(err)
		}
		cols, err := strconv.Atoi(c)
		if err != nil {
			return bad(err)
		}
		return builder.Grid(rows, cols), nil

	case "random":
		ns, ps, ok := strings.Cut(rest, ":")
		if !ok {
			return bad(fmt.Errorf("want random:N:P"))
		}
		n, err := strconv.Atoi(ns)
		if err != nil {
			return bad(err)
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return bad(err)
		}
		return builder.RandomSparse(n, p), nil

	default:
		return bad(fmt.Errorf("unknown kind %q", kind))
	}
}
