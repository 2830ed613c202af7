package spdb

import (
	"fmt"
	"path"

	"github.com/cwbudde/algo-spectra/spectra/table"
)

// Column layout of the Munsell notation file, after the header row.
const (
	munsellColH = 1 + iota
	munsellColV
	munsellColC
	munsellColHab
	munsellColA
	munsellColB
)

// MunsellSet holds the 1269 matt Munsell samples. Every coordinate slice is
// aligned with the curves of R.
type MunsellSet struct {
	CIEObs string
	Lw     float64
	Yb     float64

	R   *table.Table
	H   []string     // Munsell hue notation
	V   []float64    // value
	C   []float64    // chroma
	Hab []float64    // hue angle h
	AB  [][2]float64 // a, b
}

// Child implements Node.
func (m *MunsellSet) Child(key string) (any, bool) {
	switch key {
	case "cieobs":
		return m.CIEObs, true
	case "Lw":
		return m.Lw, true
	case "Yb":
		return m.Yb, true
	case "R":
		return m.R, true
	case "H":
		return m.H, true
	case "V":
		return m.V, true
	case "C":
		return m.C, true
	case "h":
		return m.Hab, true
	case "ab":
		return m.AB, true
	}
	return nil, false
}

// Keys implements Node.
func (m *MunsellSet) Keys() []string {
	return []string{"cieobs", "Lw", "Yb", "R", "H", "V", "C", "h", "ab"}
}

func (l *loader) munsell() (*MunsellSet, error) {
	r, err := l.table(RFLDir, fileMunsell, curvesMunsell)
	if err != nil {
		return nil, err
	}
	info, err := l.frame(RFLDir, fileMunsellInfo, true)
	if err != nil {
		return nil, err
	}

	p := path.Join(RFLDir, fileMunsellInfo)
	if len(info.Rows) != r.NumCurves() {
		return nil, fmt.Errorf("spdb: %s: %d notation rows for %d samples: %w", p, len(info.Rows), r.NumCurves(), ErrShape)
	}
	if info.Width() <= munsellColB {
		return nil, fmt.Errorf("spdb: %s: %d columns, want %d: %w", p, info.Width(), munsellColB+1, ErrShape)
	}

	m := &MunsellSet{
		CIEObs: MunsellCIEObs,
		Lw:     MunsellLw,
		Yb:     MunsellYb,
		R:      r,
		H:      info.StringColumn(munsellColH),
	}
	cols := []struct {
		dst *[]float64
		col int
	}{{&m.V, munsellColV}, {&m.C, munsellColC}, {&m.Hab, munsellColHab}}
	for _, c := range cols {
		if *c.dst, err = info.FloatColumn(c.col); err != nil {
			return nil, fmt.Errorf("spdb: %s: %w", p, err)
		}
	}

	a, err := info.FloatColumn(munsellColA)
	if err != nil {
		return nil, fmt.Errorf("spdb: %s: %w", p, err)
	}
	b, err := info.FloatColumn(munsellColB)
	if err != nil {
		return nil, fmt.Errorf("spdb: %s: %w", p, err)
	}
	m.AB = make([][2]float64, len(a))
	for i := range a {
		m.AB[i] = [2]float64{a[i], b[i]}
	}
	return m, nil
}
