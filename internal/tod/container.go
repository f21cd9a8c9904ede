// Package tod wraps the binary time-ordered-data container of a tag.
//
// The container is an HDF5 file (MATLAB v7.3 layout). Its internal
// structure is an external contract; this package only opens it
// read-only and hands the file out as an opaque handle.
package tod

import (
	"os"
	"path/filepath"

	"gonum.org/v1/hdf5"

	apperrors "kecktod/internal/errors"
)

// Container is an opaque read-only handle to a tag's sample data.
type Container struct {
	path string
	file *hdf5.File
}

// Open opens the container read-only. The file is not read beyond what
// the HDF5 library needs to validate it.
func Open(path string) (*Container, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.NewNotFoundError("time-ordered data container", err).
			WithContext("path", path)
	}

	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, apperrors.NewNotFoundError("time-ordered data container", err).
			WithContext("path", path)
	}

	return &Container{path: path, file: f}, nil
}

// File exposes the underlying HDF5 file for downstream consumers.
func (c *Container) File() *hdf5.File {
	return c.file
}

// Path returns the container's full path.
func (c *Container) Path() string {
	return c.path
}

// Filename returns the container's base name.
func (c *Container) Filename() string {
	return filepath.Base(c.path)
}

// Close releases the handle.
func (c *Container) Close() error {
	return c.file.Close()
}
