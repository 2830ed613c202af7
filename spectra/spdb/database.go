package spdb

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Paths records where a Database was loaded from.
type Paths struct {
	Root string // data root, empty for a non-OS file system
	SPD  string // light-source spectra directory
	RFL  string // reflectance directory
}

func (p Paths) rfl(name string) string {
	if p.Root == "" {
		return path.Join(p.RFL, name)
	}
	return filepath.Join(p.RFL, name)
}

// Database is the complete set of spectral datasets. It is built once by
// Load and must not be modified afterwards.
type Database struct {
	Paths Paths

	Illuminants *IlluminantSet
	TM3015      *TM30Bundle
	TM3018      *TM30Bundle
	CIE224      *ReflectanceSet
	CIE133      *CIE133Set
	CRI2012     *CRI2012Set
	MCRI        *MCRISet
	CQS         *CQSSet
	Opstelten   *RFLSet
	Munsell     *MunsellSet
	Macbeth     *MacbethSet
	Capbone     *CapboneSet

	// CRI holds the sample sets of every colour rendition standard, keyed
	// by standard name.
	CRI Registry
	// RFL holds every reflectance database, keyed by source name.
	RFL Registry
}

// Load reads the full catalogue from fsys, whose root holds the spds and
// rfls directories. Any missing or malformed required file is an error;
// the Capbone archive is optional.
func Load(fsys fs.FS, opts ...Option) (*Database, error) {
	return load(fsys, Paths{SPD: SPDDir, RFL: RFLDir}, ApplyOptions(opts...))
}

// LoadDir is Load on the OS directory root.
func LoadDir(root string, opts ...Option) (*Database, error) {
	p := Paths{
		Root: root,
		SPD:  filepath.Join(root, SPDDir),
		RFL:  filepath.Join(root, RFLDir),
	}
	return load(os.DirFS(root), p, ApplyOptions(opts...))
}

func load(fsys fs.FS, paths Paths, cfg Config) (*Database, error) {
	l := &loader{fsys: fsys, cfg: cfg}
	db := &Database{Paths: paths}
	var err error

	if db.Illuminants, err = l.illuminants(); err != nil {
		return nil, err
	}

	if db.TM3015, err = l.tm3015(); err != nil {
		return nil, err
	}
	if db.CIE224, err = l.cie224(db.TM3015); err != nil {
		return nil, err
	}
	// TM30-18 ships no source file of its own; the TM30-15 sources are
	// read again.
	s18, err := l.tm30Sources()
	if err != nil {
		return nil, err
	}
	db.TM3018 = deriveTM3018(s18, db.TM3015, db.CIE224)

	if db.CIE133, err = l.cie133(); err != nil {
		return nil, err
	}
	if db.CRI2012, err = l.cri2012(); err != nil {
		return nil, err
	}
	if db.MCRI, err = l.mcri(); err != nil {
		return nil, err
	}
	if db.CQS, err = l.cqs(); err != nil {
		return nil, err
	}
	if db.Opstelten, err = l.opstelten(); err != nil {
		return nil, err
	}
	if db.Munsell, err = l.munsell(); err != nil {
		return nil, err
	}
	if db.Macbeth, err = l.macbeth(); err != nil {
		return nil, err
	}
	db.Capbone = l.capbone(path.Join(RFLDir, fileCapbone), paths.rfl(fileCapbone))

	db.CRI = Registry{
		"cie-13.3-1995": db.CIE133,
		"cie-224-2017":  db.CIE224,
		"cri2012":       db.CRI2012,
		"ies-tm30-15":   db.TM3015.R,
		"ies-tm30-18":   db.TM3018.R,
		"ies-tm30":      db.TM3018.R,
		"mcri":          db.MCRI.R,
		"cqs":           db.CQS,
	}
	db.RFL = Registry{
		"munsell":   db.Munsell,
		"macbeth":   db.Macbeth,
		"capbone":   db.Capbone,
		"opstelten": db.Opstelten,
		"cri":       db.CRI,
	}

	cfg.Logger.Debug("spectral database loaded", "root", paths.Root,
		"illuminants", len(db.Illuminants.Types), "capbone", db.Capbone.K100.R.Available())
	return db, nil
}

// Child implements Node.
func (db *Database) Child(key string) (any, bool) {
	switch key {
	case "illuminants":
		return db.Illuminants, true
	case "tm30-15":
		return db.TM3015, true
	case "tm30-18":
		return db.TM3018, true
	case "cie-224-2017":
		return db.CIE224, true
	case "cri":
		return db.CRI, true
	case "rfl":
		return db.RFL, true
	}
	return nil, false
}

// Keys implements Node.
func (db *Database) Keys() []string {
	return []string{"illuminants", "tm30-15", "tm30-18", "cie-224-2017", "cri", "rfl"}
}

// Lookup resolves a key path such as "rfl", "cri", "ies-tm30", "99", "1nm".
func (db *Database) Lookup(keys ...string) (any, error) {
	return Walk(db, keys...)
}
