package table

import "fmt"

// Table is a 2-D spectral table: row 0 holds wavelengths, rows 1.. hold curves.
type Table struct {
	rows [][]float64
}

// New builds a table from wavelength-first rows. The rows are used as
// backing storage without copying.
func New(rows [][]float64) (*Table, error) {
	t := &Table{rows: rows}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromColumns builds a table from column-oriented data, where each input row
// is one wavelength sample: the first column is the wavelength and the
// remaining columns are curves.
func FromColumns(cols [][]float64) (*Table, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(cols[0])
	rows := make([][]float64, width)
	backing := make([]float64, width*len(cols))
	for j := range rows {
		rows[j] = backing[j*len(cols) : (j+1)*len(cols) : (j+1)*len(cols)]
	}
	for i, c := range cols {
		if len(c) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(c), width, ErrRagged)
		}
		for j, v := range c {
			rows[j][i] = v
		}
	}
	return New(rows)
}

// Validate checks the shape invariants: a non-empty, strictly increasing
// axis and curves of equal length.
func (t *Table) Validate() error {
	if t == nil || len(t.rows) == 0 || len(t.rows[0]) == 0 {
		return ErrEmpty
	}
	wl := t.rows[0]
	for i := 1; i < len(wl); i++ {
		if !(wl[i] > wl[i-1]) {
			return fmt.Errorf("index %d (%g after %g): %w", i, wl[i], wl[i-1], ErrNotIncreasing)
		}
	}
	for i := 1; i < len(t.rows); i++ {
		if len(t.rows[i]) != len(wl) {
			return fmt.Errorf("curve %d has %d values, want %d: %w", i-1, len(t.rows[i]), len(wl), ErrRagged)
		}
	}
	return nil
}

// Wavelengths returns the wavelength axis.
func (t *Table) Wavelengths() []float64 { return t.rows[0] }

// Len returns the number of wavelength samples.
func (t *Table) Len() int { return len(t.rows[0]) }

// NumCurves returns the number of curves (rows after the axis).
func (t *Table) NumCurves() int { return len(t.rows) - 1 }

// Curve returns curve i (0-based, not counting the axis). The returned slice
// aliases the table.
func (t *Table) Curve(i int) []float64 { return t.rows[i+1] }

// Rows returns all rows, axis first. The slices alias the table.
func (t *Table) Rows() [][]float64 { return t.rows }

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	return &Table{rows: cloneRows(t.rows)}
}

// Head returns a copy holding the axis and the first n curves.
func (t *Table) Head(n int) (*Table, error) {
	if n < 0 || n > t.NumCurves() {
		return nil, fmt.Errorf("table: head %d of %d curves", n, t.NumCurves())
	}
	return &Table{rows: cloneRows(t.rows[:n+1])}, nil
}

// Select returns a copy holding the axis and curve i only.
func (t *Table) Select(i int) (*Table, error) {
	if i < 0 || i >= t.NumCurves() {
		return nil, fmt.Errorf("table: curve %d of %d", i, t.NumCurves())
	}
	return &Table{rows: cloneRows([][]float64{t.rows[0], t.rows[i+1]})}, nil
}

// Step returns the wavelength spacing when the axis is uniformly spaced, or 0.
func (t *Table) Step() float64 {
	wl := t.rows[0]
	if len(wl) < 2 {
		return 0
	}
	step := wl[1] - wl[0]
	for i := 2; i < len(wl); i++ {
		if d := wl[i] - wl[i-1]; d-step > 1e-9 || step-d > 1e-9 {
			return 0
		}
	}
	return step
}

// Equal reports whether a and b have identical shape and values.
func Equal(a, b *Table) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.rows) != len(b.rows) {
		return false
	}
	for i := range a.rows {
		if len(a.rows[i]) != len(b.rows[i]) {
			return false
		}
		for j := range a.rows[i] {
			if a.rows[i][j] != b.rows[i][j] {
				return false
			}
		}
	}
	return true
}

func cloneRows(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	backing := make([]float64, 0, width*len(rows))
	out := make([][]float64, len(rows))
	for i, r := range rows {
		start := len(backing)
		backing = append(backing, r...)
		out[i] = backing[start:len(backing):len(backing)]
	}
	return out
}
