package spdb

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	defaultOnce sync.Once
	defaultDB   *Database
	defaultErr  error
)

// RootEnv names the environment variable that overrides DefaultRoot.
const RootEnv = "SPECTRA_DATA_ROOT"

// DefaultRoot returns the data root used by Default: $SPECTRA_DATA_ROOT when
// set, otherwise the data directory of this module's source tree. The
// fallback is resolved from the build machine's source path and only holds
// the published dataset files once they have been copied there (see
// data/README.md); binaries run elsewhere should set SPECTRA_DATA_ROOT or
// call LoadDir with an explicit root.
func DefaultRoot() string {
	if root := os.Getenv(RootEnv); root != "" {
		return root
	}
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "data"
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "data")
}

// Default returns the process-wide Database loaded from DefaultRoot. The
// load happens on first use; later calls return the same result, including
// the fs.ErrNotExist error of an unpopulated root.
func Default() (*Database, error) {
	defaultOnce.Do(func() {
		defaultDB, defaultErr = LoadDir(DefaultRoot())
	})
	return defaultDB, defaultErr
}

// MustDefault is Default, panicking when a required dataset is missing.
func MustDefault() *Database {
	db, err := Default()
	if err != nil {
		panic(err)
	}
	return db
}
