// Package filesystem provides the FileSystem interface and its implementations
// for walking catalog trees, whether they live on disk or inside an archive.
package filesystem

import (
	"io/fs"
	"os"

	"github.com/klauspost/compress/zip"
)

// FileSystem defines the operations needed to walk a catalog source and open
// the files found in it.
type FileSystem interface {
	Open(name string) (fs.File, error)
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// WrappedFS implements FileSystem for a generic fs.FS.
type WrappedFS struct {
	FS fs.FS
}

// NewWrappedFS returns a FileSystem rooted at the given directory.
func NewWrappedFS(root string) *WrappedFS {
	return &WrappedFS{
		FS: os.DirFS(root),
	}
}

func (d *WrappedFS) Open(name string) (fs.File, error) {
	return d.FS.Open(name)
}

func (d *WrappedFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(d.FS, root, fn)
}

// ZipFS implements FileSystem for a zip archive on disk. Close must be called
// when done.
type ZipFS struct {
	rc *zip.ReadCloser
}

// NewZipFS opens the archive at path.
func NewZipFS(path string) (*ZipFS, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	return &ZipFS{rc: rc}, nil
}

func (z *ZipFS) Open(name string) (fs.File, error) {
	return z.rc.Open(name)
}

func (z *ZipFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(z.rc, root, fn)
}

func (z *ZipFS) Close() error {
	return z.rc.Close()
}
