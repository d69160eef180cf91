// Package fs provides the filesystem seam used by config loading and the
// file-backed stores, plus an atomic write helper.
package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// FS is the subset of filesystem operations filemyrti needs.
// Tests substitute an in-memory stub.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Stat(path string) (iofs.FileInfo, error)
	Rename(oldpath, newpath string) error
	Remove(path string) error
	Chmod(path string, perm os.FileMode) error
	// CreateTemp creates a temp file in dir and returns its path and an
	// open handle.
	CreateTemp(dir, pattern string) (string, io.WriteCloser, error)
}

// RealFS is the real filesystem.
type RealFS struct{}

// NewRealFS returns the real filesystem.
func NewRealFS() FS {
	return RealFS{}
}

func (RealFS) ReadFile(path string) ([]byte, error)                     { return os.ReadFile(path) }
func (RealFS) WriteFile(path string, data []byte, perm os.FileMode) error { return os.WriteFile(path, data, perm) }
func (RealFS) MkdirAll(path string, perm os.FileMode) error             { return os.MkdirAll(path, perm) }
func (RealFS) Stat(path string) (iofs.FileInfo, error)                  { return os.Stat(path) }
func (RealFS) Rename(oldpath, newpath string) error                     { return os.Rename(oldpath, newpath) }
func (RealFS) Remove(path string) error                                 { return os.Remove(path) }
func (RealFS) Chmod(path string, perm os.FileMode) error                { return os.Chmod(path, perm) }

func (RealFS) CreateTemp(dir, pattern string) (string, io.WriteCloser, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, err
	}
	return f.Name(), f, nil
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory followed by rename. Parent directories are created.
// On failure the temp file is removed and path is left untouched.
func WriteFileAtomic(filesystem FS, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmpPath, w, err := filesystem.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		_ = filesystem.Remove(tmpPath)
		return err
	}
	if s, ok := w.(interface{ Sync() error }); ok {
		if err := s.Sync(); err != nil {
			_ = w.Close()
			_ = filesystem.Remove(tmpPath)
			return err
		}
	}
	if err := w.Close(); err != nil {
		_ = filesystem.Remove(tmpPath)
		return err
	}
	if err := filesystem.Chmod(tmpPath, perm); err != nil {
		_ = filesystem.Remove(tmpPath)
		return err
	}
	if err := filesystem.Rename(tmpPath, path); err != nil {
		_ = filesystem.Remove(tmpPath)
		return err
	}
	return nil
}
