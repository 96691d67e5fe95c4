package x2l

import (
	"errors"
	"io/fs"
	"os"
)

type (
	Mode byte

	// fileSystem is the part of the os package the renamer touches.
	// Tests swap it to prove that simulation never mutates anything.
	fileSystem interface {
		Stat(name string) (fs.FileInfo, error)
		Lstat(name string) (fs.FileInfo, error)
		Rename(oldpath, newpath string) error
	}

	osFileSystem struct{}

	// Renamer checks the preconditions of a [Rename] and then either performs it or,
	// in [Simulate] mode, only pretends to.
	Renamer struct {
		fs   fileSystem
		mode Mode
	}
)

const (
	Simulate Mode = iota
	Execute
)

func (m Mode) String() string {
	if m == Execute {
		return "execute"
	}

	return "simulate"
}

func (osFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (osFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func NewRenamer(execute bool) *Renamer {
	r := Renamer{fs: osFileSystem{}, mode: Simulate}

	if execute {
		r.mode = Execute
	}

	return &r
}

func (r *Renamer) Mode() Mode {
	return r.mode
}

// Apply checks that rename.Src is a regular file and that rename.Dst does not exist,
// then renames in [Execute] mode. The checks and the rename are not atomic together.
//
// Non-nil returned error is a [*FilesystemError].
func (r *Renamer) Apply(rename Rename) error {
	if err := r.checkSrc(rename.Src); err != nil {
		return err
	}

	if err := r.checkDst(rename.Dst); err != nil {
		return err
	}

	if r.mode != Execute {
		return nil
	}

	if err := r.fs.Rename(rename.Src, rename.Dst); err != nil {
		return newFilesystemError(RenameOperation, rename.Dst, err)
	}

	return nil
}

func (r *Renamer) checkSrc(src string) error {
	info, err := r.fs.Stat(src)
	if err != nil {
		return newFilesystemError(SourceAccess, src, err)
	}

	if !info.Mode().IsRegular() {
		return newFilesystemError(SourceNotRegularFile, src, nil)
	}

	return nil
}

// checkDst uses Lstat so that a dangling symbolic link also counts as existing.
func (r *Renamer) checkDst(dst string) error {
	_, err := r.fs.Lstat(dst)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return newFilesystemError(DestinationExistenceCheck, dst, err)
	}

	return newFilesystemError(DestinationExists, dst, nil)
}
