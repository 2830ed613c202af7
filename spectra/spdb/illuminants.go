package spdb

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectra/table"
)

// IlluminantSet holds the CIE illuminants as 2xN wavelength/value tables.
type IlluminantSet struct {
	// Types lists every illuminant key in load order.
	Types []string
	byKey map[string]*table.Table
}

// Get returns the illuminant called key.
func (s *IlluminantSet) Get(key string) (*table.Table, bool) {
	t, ok := s.byKey[key]
	return t, ok
}

// Child implements Node. "types" yields the key list.
func (s *IlluminantSet) Child(key string) (any, bool) {
	if key == "types" {
		return s.Types, true
	}
	return s.Get(key)
}

// Keys implements Node.
func (s *IlluminantSet) Keys() []string {
	return append(append([]string(nil), s.Types...), "types")
}

func (s *IlluminantSet) add(key string, t *table.Table) {
	if _, dup := s.byKey[key]; !dup {
		s.Types = append(s.Types, key)
	}
	s.byKey[key] = t
}

func (l *loader) illuminants() (*IlluminantSet, error) {
	set := &IlluminantSet{byKey: make(map[string]*table.Table)}

	e, err := equalEnergy()
	if err != nil {
		return nil, err
	}
	set.add("E", e)

	for _, f := range []struct{ key, file string }{{"D65", fileD65}, {"A", fileA}} {
		t, err := l.table(SPDDir, f.file, curvesSingle)
		if err != nil {
			return nil, err
		}
		set.add(f.key, t)
	}

	b, err := builtinIlluminant(cieBValues)
	if err != nil {
		return nil, err
	}
	set.add("B", b)
	c, err := builtinIlluminant(cieCValues)
	if err != nil {
		return nil, err
	}
	set.add("C", c)

	series := []struct {
		file   string
		format string
		curves int
		take   int
	}{
		{fileF1to12, "F%d", curvesF, curvesF},
		{fileF3to15, "F3.%d", curvesF3, curvesF3},
		{fileHP1to5, "HP%d", curvesF3, curvesHP},
	}
	for _, s := range series {
		t, err := l.table(SPDDir, s.file, s.curves)
		if err != nil {
			return nil, err
		}
		for i := 0; i < s.take; i++ {
			one, err := t.Select(i)
			if err != nil {
				return nil, fmt.Errorf("spdb: %s: %w", s.file, err)
			}
			set.add(fmt.Sprintf(s.format, i+1), one)
		}
	}
	return set, nil
}

// equalEnergy returns illuminant E: 360-830 nm at 1 nm, all ones.
func equalEnergy() (*table.Table, error) {
	wl := builtinAxis()
	ones := make([]float64, len(wl))
	for i := range ones {
		ones[i] = 1
	}
	return table.New([][]float64{wl, ones})
}

func builtinIlluminant(values []float64) (*table.Table, error) {
	v := append([]float64(nil), values...)
	return table.New([][]float64{builtinAxis(), v})
}

// builtinAxis is the 360-830 nm, 1 nm axis of the built-in illuminants.
func builtinAxis() []float64 {
	wl := make([]float64, 471)
	for i := range wl {
		wl[i] = float64(360 + i)
	}
	return wl
}
