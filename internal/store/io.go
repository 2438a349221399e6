package store

import (
	"os"
	"path/filepath"

	"killerpack/internal/domain"
)

// readFile reads the whole file at path.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.IOError{Op: "read", Path: path, Err: err}
	}
	return b, nil
}

// stageFile writes b to a temp file next to path and returns the temp name.
// The caller renames or removes it.
func stageFile(path string, b []byte, mode os.FileMode) (string, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.IOError{Op: "mkdir", Path: dir, Err: err}
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return "", &domain.IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()

	fail := func(op string, err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", &domain.IOError{Op: op, Path: tmp, Err: err}
	}
	if _, err := f.Write(b); err != nil {
		return fail("write", err)
	}
	if err := f.Chmod(mode); err != nil {
		return fail("chmod", err)
	}
	if err := f.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.IOError{Op: "close", Path: tmp, Err: err}
	}
	return tmp, nil
}
