package table

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Product multiplies the single light-source curve of spd into every curve of
// rfl, giving the stimulus spectra reflected by each sample. Both tables must
// share the exact same wavelength axis; no resampling is done.
func Product(spd, rfl *Table) (*Table, error) {
	if spd.NumCurves() != 1 {
		return nil, fmt.Errorf("table: product needs a single-curve spd, got %d curves", spd.NumCurves())
	}
	if !sameAxis(spd.Wavelengths(), rfl.Wavelengths()) {
		return nil, fmt.Errorf("spd %g-%g nm (%d) vs rfl %g-%g nm (%d): %w",
			spd.rows[0][0], spd.rows[0][spd.Len()-1], spd.Len(),
			rfl.rows[0][0], rfl.rows[0][rfl.Len()-1], rfl.Len(), ErrAxisMismatch)
	}

	return Weight(rfl, spd.Curve(0))
}

// Weight multiplies every curve of t by w into a new table. w must have the
// table's axis length.
func Weight(t *Table, w []float64) (*Table, error) {
	if len(w) != t.Len() {
		return nil, fmt.Errorf("table: weight length %d, want %d: %w", len(w), t.Len(), ErrRagged)
	}
	out := t.Clone()
	for i := 1; i < len(out.rows); i++ {
		vecmath.MulBlock(out.rows[i], t.rows[i], w)
	}
	return out, nil
}

func sameAxis(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
