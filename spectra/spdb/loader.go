package spdb

import (
	"fmt"
	"io/fs"
	"math"
	"path"

	"github.com/cwbudde/algo-spectra/internal/tabular"
	"github.com/cwbudde/algo-spectra/spectra/table"
)

type loader struct {
	fsys fs.FS
	cfg  Config
}

// table reads a column-oriented file (wavelength in the first column) and
// returns it wavelength-first.
func (l *loader) table(dir, name string, curves int) (*table.Table, error) {
	p := path.Join(dir, name)
	_, cols, err := tabular.ReadNumeric(l.fsys, p, false)
	if err != nil {
		return nil, fmt.Errorf("spdb: %w", err)
	}
	t, err := table.FromColumns(cols)
	if err != nil {
		return nil, fmt.Errorf("spdb: %s: %w", p, err)
	}
	if err := l.checkCurves(p, t, curves); err != nil {
		return nil, err
	}
	l.cfg.Logger.Debug("loaded dataset", "file", p, "curves", t.NumCurves(), "wavelengths", t.Len())
	return t, nil
}

// frame reads a labelled file.
func (l *loader) frame(dir, name string, header bool) (*tabular.Frame, error) {
	p := path.Join(dir, name)
	fr, err := tabular.ReadFrame(l.fsys, p, header)
	if err != nil {
		return nil, fmt.Errorf("spdb: %w", err)
	}
	l.cfg.Logger.Debug("loaded info", "file", p, "rows", len(fr.Rows), "columns", fr.Width())
	return fr, nil
}

func (l *loader) checkCurves(p string, t *table.Table, want int) error {
	if !l.cfg.StrictShapes || want <= 0 || t.NumCurves() == want {
		return nil
	}
	return fmt.Errorf("spdb: %s: %d curves, want %d: %w", p, t.NumCurves(), want, ErrShape)
}

// categories maps 1-based category indices to names.
func categories(idx []float64, names []string) ([]string, error) {
	out := make([]string, len(idx))
	for i, v := range idx {
		if math.IsNaN(v) || v != math.Trunc(v) || v < 1 || v > float64(len(names)) {
			return nil, fmt.Errorf("entry %d: %v not in 1..%d: %w", i, v, len(names), ErrCategory)
		}
		out[i] = names[int(v)-1]
	}
	return out, nil
}
