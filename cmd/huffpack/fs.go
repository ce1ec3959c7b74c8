package main

import (
	"io"
	"io/fs"
	"os"
)

//go:generate mockgen -source=fs.go -destination=mock_fs_test.go -package=main

// fileSystem is the subset of file system operations used by the app.
type fileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
	MkdirAll(path string, perm fs.FileMode) error
}

// osFS is a fileSystem backed by the os package.
type osFS struct{}

var _ fileSystem = osFS{}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (osFS) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func (osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}
