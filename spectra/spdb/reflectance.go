package spdb

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectra/table"
)

// SampleSet is one sample set at up to two resolutions with optional
// per-sample labels.
type SampleSet struct {
	Res1nm *table.Table
	Res5nm *table.Table
	Info   []string
}

// Child implements Node.
func (s *SampleSet) Child(key string) (any, bool) {
	switch key {
	case "1nm":
		return s.Res1nm, s.Res1nm != nil
	case "5nm":
		return s.Res5nm, s.Res5nm != nil
	case "info":
		return s.Info, s.Info != nil
	}
	return nil, false
}

// Keys implements Node.
func (s *SampleSet) Keys() []string {
	var keys []string
	if s.Res1nm != nil {
		keys = append(keys, "1nm")
	}
	if s.Res5nm != nil {
		keys = append(keys, "5nm")
	}
	if s.Info != nil {
		keys = append(keys, "info")
	}
	return keys
}

// Clone deep copies the set.
func (s *SampleSet) Clone() *SampleSet {
	if s == nil {
		return nil
	}
	var info []string
	if s.Info != nil {
		info = append([]string(nil), s.Info...)
	}
	return &SampleSet{Res1nm: s.Res1nm.Clone(), Res5nm: s.Res5nm.Clone(), Info: info}
}

// ReflectanceSet groups sample sets by sample count ("99", "4880").
type ReflectanceSet struct {
	R99   *SampleSet
	R4880 *SampleSet
}

// Child implements Node.
func (r *ReflectanceSet) Child(key string) (any, bool) {
	switch key {
	case "99":
		return r.R99, r.R99 != nil
	case "4880":
		return r.R4880, r.R4880 != nil
	}
	return nil, false
}

// Keys implements Node.
func (r *ReflectanceSet) Keys() []string {
	var keys []string
	if r.R99 != nil {
		keys = append(keys, "99")
	}
	if r.R4880 != nil {
		keys = append(keys, "4880")
	}
	return keys
}

// Clone deep copies the set.
func (r *ReflectanceSet) Clone() *ReflectanceSet {
	return &ReflectanceSet{R99: r.R99.Clone(), R4880: r.R4880.Clone()}
}

// RFLSet is a bare {"R": table} dataset.
type RFLSet struct {
	R *table.Table
}

// Child implements Node.
func (s *RFLSet) Child(key string) (any, bool) {
	if key == "R" {
		return s.R, true
	}
	return nil, false
}

// Keys implements Node.
func (s *RFLSet) Keys() []string { return []string{"R"} }

// CIE133Set holds the CIE 13.3-1995 test colour samples.
type CIE133Set struct {
	R14 *table.Table
	R8  *table.Table // first eight of R14, copied
}

// Child implements Node.
func (s *CIE133Set) Child(key string) (any, bool) {
	switch key {
	case "14":
		return s.R14, true
	case "8":
		return s.R8, true
	}
	return nil, false
}

// Keys implements Node.
func (s *CIE133Set) Keys() []string { return []string{"14", "8"} }

// CRI2012Set holds the CRI2012 mathematical and real sample sets.
type CRI2012Set struct {
	HL17    *table.Table
	HL1000  *table.Table
	Real210 *table.Table
}

// Child implements Node.
func (s *CRI2012Set) Child(key string) (any, bool) {
	switch key {
	case "HL17":
		return s.HL17, true
	case "HL1000":
		return s.HL1000, true
	case "Real210":
		return s.Real210, true
	}
	return nil, false
}

// Keys implements Node.
func (s *CRI2012Set) Keys() []string { return []string{"HL17", "HL1000", "Real210"} }

// MCRISet holds the memory colour rendition samples and their object names.
type MCRISet struct {
	R    *table.Table
	Info []string
}

// Child implements Node.
func (s *MCRISet) Child(key string) (any, bool) {
	switch key {
	case "R":
		return s.R, true
	case "info":
		return s.Info, true
	}
	return nil, false
}

// Keys implements Node.
func (s *MCRISet) Keys() []string { return []string{"R", "info"} }

// CQSSet holds the colour quality scale versions.
type CQSSet struct {
	V75 *table.Table
	V90 *table.Table
}

// Child implements Node.
func (s *CQSSet) Child(key string) (any, bool) {
	switch key {
	case "v7.5":
		return s.V75, true
	case "v9.0":
		return s.V90, true
	}
	return nil, false
}

// Keys implements Node.
func (s *CQSSet) Keys() []string { return []string{"v7.5", "v9.0"} }

// MacbethSet holds the ColorChecker chart.
type MacbethSet struct {
	CC *RFLSet
}

// Child implements Node.
func (s *MacbethSet) Child(key string) (any, bool) {
	if key == "CC" {
		return s.CC, true
	}
	return nil, false
}

// Keys implements Node.
func (s *MacbethSet) Keys() []string { return []string{"CC"} }

func (l *loader) cie133() (*CIE133Set, error) {
	r14, err := l.table(RFLDir, fileCIE133R14, curvesCIE133)
	if err != nil {
		return nil, err
	}
	r8, err := r14.Head(curvesCIE133R8)
	if err != nil {
		return nil, fmt.Errorf("spdb: %s: %w", fileCIE133R14, err)
	}
	return &CIE133Set{R14: r14, R8: r8}, nil
}

func (l *loader) cri2012() (*CRI2012Set, error) {
	var s CRI2012Set
	var err error
	if s.HL17, err = l.table(RFLDir, fileCRI2012HL17, curvesHL17); err != nil {
		return nil, err
	}
	if s.HL1000, err = l.table(RFLDir, fileCRI2012HL1000, curvesHL1000); err != nil {
		return nil, err
	}
	if s.Real210, err = l.table(RFLDir, fileCRI2012Real210, curvesReal210); err != nil {
		return nil, err
	}
	return &s, nil
}

func (l *loader) mcri() (*MCRISet, error) {
	r, err := l.table(RFLDir, fileMCRI, curvesMCRI)
	if err != nil {
		return nil, err
	}
	if r.NumCurves() != len(MCRIObjects) {
		return nil, fmt.Errorf("spdb: %s: %d curves for %d object names: %w", fileMCRI, r.NumCurves(), len(MCRIObjects), ErrShape)
	}
	return &MCRISet{R: r, Info: append([]string(nil), MCRIObjects...)}, nil
}

func (l *loader) cqs() (*CQSSet, error) {
	var s CQSSet
	var err error
	if s.V75, err = l.table(RFLDir, fileCQSv75, curvesCQS); err != nil {
		return nil, err
	}
	if s.V90, err = l.table(RFLDir, fileCQSv90, curvesCQS); err != nil {
		return nil, err
	}
	return &s, nil
}

func (l *loader) opstelten() (*RFLSet, error) {
	r, err := l.table(RFLDir, fileOpstelten, curvesOpstelten)
	if err != nil {
		return nil, err
	}
	return &RFLSet{R: r}, nil
}

func (l *loader) macbeth() (*MacbethSet, error) {
	r, err := l.table(RFLDir, fileMacbeth, curvesMacbeth)
	if err != nil {
		return nil, err
	}
	return &MacbethSet{CC: &RFLSet{R: r}}, nil
}
