// Command spdbinfo prints the contents of the spectral database.
//
// Usage:
//
//	spdbinfo [flags] [dataset-path ...]
//
// Without arguments it prints the shape of every dataset. A dataset path is
// a slash separated key path such as rfl/macbeth/CC/R.
//
// Examples:
//
//	spdbinfo -list
//	spdbinfo rfl/cri/ies-tm30/99/1nm
//	spdbinfo -curves illuminants/D65
//	spdbinfo -product illuminants/D65=rfl/macbeth/CC/R
//	spdbinfo -root ./data -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectra/spectra/spdb"
	"github.com/cwbudde/algo-spectra/spectra/table"
)

func main() {
	root := flag.String("root", spdb.DefaultRoot(), "data root holding spds/ and rfls/")
	list := flag.Bool("list", false, "list dataset paths only")
	curves := flag.Bool("curves", false, "print per-curve statistics for the named datasets")
	product := flag.String("product", "", "print stimulus statistics for SPD=RFL dataset paths")
	noCapbone := flag.Bool("no-capbone", false, "do not load the optional Capbone archive")
	verbose := flag.Bool("v", false, "log every loaded file to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spdbinfo [flags] [dataset-path ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the datasets of the spectral database.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  spdbinfo -list\n")
		fmt.Fprintf(os.Stderr, "  spdbinfo -curves illuminants/D65\n")
		fmt.Fprintf(os.Stderr, "  spdbinfo -product illuminants/D65=rfl/macbeth/CC/R\n")
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	db, err := spdb.LoadDir(*root, spdb.WithLogger(logger), spdb.WithCapbone(!*noCapbone))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, db, *list, *curves, *product, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, db *spdb.Database, list, curves bool, product string, paths []string) error {
	if product != "" {
		spdPath, rflPath, ok := strings.Cut(product, "=")
		if !ok {
			return fmt.Errorf("product %q: want SPD=RFL", product)
		}
		spd, err := lookupTable(db, spdPath)
		if err != nil {
			return err
		}
		rfl, err := lookupTable(db, rflPath)
		if err != nil {
			return err
		}
		stim, err := table.Product(spd, rfl)
		if err != nil {
			return err
		}
		return printCurves(w, stim)
	}

	var sets []spdb.Dataset
	if len(paths) == 0 {
		sets = spdb.Datasets(db)
	} else {
		for _, p := range paths {
			t, err := lookupTable(db, p)
			if err != nil {
				return err
			}
			sets = append(sets, spdb.Dataset{Path: p, Table: t})
		}
	}

	if list {
		for _, d := range sets {
			if _, err := fmt.Fprintln(w, d.Path); err != nil {
				return err
			}
		}
		return nil
	}
	if curves {
		for _, d := range sets {
			if _, err := fmt.Fprintf(w, "%s\n", d.Path); err != nil {
				return err
			}
			if err := printCurves(w, d.Table); err != nil {
				return err
			}
		}
		return nil
	}
	return printShapes(w, sets)
}

// lookupTable resolves a slash separated path to a table.
func lookupTable(db *spdb.Database, p string) (*table.Table, error) {
	v, err := db.Lookup(strings.Split(strings.Trim(p, "/"), "/")...)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case *table.Table:
		return x, nil
	case spdb.OptionalTable:
		return x.Get()
	}
	return nil, fmt.Errorf("%s: not a table (%T): %w", p, v, errors.ErrUnsupported)
}

func printShapes(w io.Writer, sets []spdb.Dataset) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Dataset\tCurves\tSamples\tFrom [nm]\tTo [nm]\tStep [nm]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-------\t------\t-------\t---------\t-------\t---------\n"); err != nil {
		return err
	}
	for _, d := range sets {
		wl := d.Table.Wavelengths()
		step := "-"
		if s := d.Table.Step(); s > 0 {
			step = fmt.Sprintf("%g", s)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%g\t%g\t%s\n",
			d.Path, d.Table.NumCurves(), d.Table.Len(), wl[0], wl[len(wl)-1], step); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printCurves(w io.Writer, t *table.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Curve\tMin\tMax\tPeak [nm]\tMean\tArea\n"); err != nil {
		return err
	}
	for i, s := range table.Summarize(t) {
		if _, err := fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%g\t%.6g\t%.6g\n",
			i+1, s.Min, s.Max, s.MaxAt, s.Mean, s.Area); err != nil {
			return err
		}
	}
	return tw.Flush()
}
