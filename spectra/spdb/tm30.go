package spdb

import (
	"fmt"
	"path"

	"github.com/cwbudde/algo-spectra/internal/tabular"
	"github.com/cwbudde/algo-spectra/spectra/table"
)

// SourceSet holds the light sources of the TM30 calculator and their
// descriptive info table.
type SourceSet struct {
	Data *table.Table
	Info *tabular.Frame
}

// Child implements Node.
func (s *SourceSet) Child(key string) (any, bool) {
	switch key {
	case "data":
		return s.Data, true
	case "info":
		return s.Info, true
	}
	return nil, false
}

// Keys implements Node.
func (s *SourceSet) Keys() []string { return []string{"data", "info"} }

// TM30Bundle is the IES TM30 calculator database: sources S and samples R.
type TM30Bundle struct {
	S *SourceSet
	R *ReflectanceSet
}

// Child implements Node.
func (b *TM30Bundle) Child(key string) (any, bool) {
	switch key {
	case "S":
		return b.S, true
	case "R":
		return b.R, true
	}
	return nil, false
}

// Keys implements Node.
func (b *TM30Bundle) Keys() []string { return []string{"S", "R"} }

func (l *loader) tm30Sources() (*SourceSet, error) {
	data, err := l.table(SPDDir, fileTM30Sources, 0)
	if err != nil {
		return nil, err
	}
	info, err := l.frame(SPDDir, fileTM30SourceInfo, true)
	if err != nil {
		return nil, err
	}
	return &SourceSet{Data: data, Info: info}, nil
}

func (l *loader) tm3015() (*TM30Bundle, error) {
	s, err := l.tm30Sources()
	if err != nil {
		return nil, err
	}

	r4880, err := l.table(RFLDir, fileTM30R4880, curves4880)
	if err != nil {
		return nil, err
	}
	r99 := &SampleSet{}
	if r99.Res1nm, err = l.table(RFLDir, fileTM30R99_1nm, curves99); err != nil {
		return nil, err
	}
	if r99.Res5nm, err = l.table(RFLDir, fileTM30R99_5nm, curves99); err != nil {
		return nil, err
	}
	if r99.Info, err = l.ies99Info(r99.Res1nm.NumCurves()); err != nil {
		return nil, err
	}

	return &TM30Bundle{
		S: s,
		R: &ReflectanceSet{R99: r99, R4880: &SampleSet{Res5nm: r4880}},
	}, nil
}

// ies99Info reads the single row of 1-based category indices of the 99 set.
func (l *loader) ies99Info(want int) ([]string, error) {
	p := path.Join(RFLDir, fileTM30R99Info)
	_, rows, err := tabular.ReadNumeric(l.fsys, p, false)
	if err != nil {
		return nil, fmt.Errorf("spdb: %w", err)
	}
	if len(rows[0]) != want {
		return nil, fmt.Errorf("spdb: %s: %d categories for %d samples: %w", p, len(rows[0]), want, ErrShape)
	}
	info, err := categories(rows[0], IES99Categories)
	if err != nil {
		return nil, fmt.Errorf("spdb: %s: %w", p, err)
	}
	return info, nil
}

// cie224 builds the CIE 224:2017 set. Its info is shared with TM30-15.
func (l *loader) cie224(tm3015 *TM30Bundle) (*ReflectanceSet, error) {
	r99 := &SampleSet{Info: tm3015.R.R99.Info}
	var err error
	if r99.Res1nm, err = l.table(RFLDir, fileCIE224R99_1nm, curves99); err != nil {
		return nil, err
	}
	if r99.Res5nm, err = l.table(RFLDir, fileCIE224R99_5nm, curves99); err != nil {
		return nil, err
	}
	return &ReflectanceSet{R99: r99}, nil
}

// deriveTM3018 builds TM30-18 from a deep copy of the TM30-15 samples with
// the 99-sample tables replaced by the CIE 224:2017 ones. tm3015 is left
// untouched.
func deriveTM3018(sources *SourceSet, tm3015 *TM30Bundle, cie224 *ReflectanceSet) *TM30Bundle {
	r := tm3015.R.Clone()
	r.R99.Res1nm = cie224.R99.Res1nm
	r.R99.Res5nm = cie224.R99.Res5nm
	return &TM30Bundle{S: sources, R: r}
}
