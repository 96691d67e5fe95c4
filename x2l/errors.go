package x2l

import (
	"errors"
	"io/fs"
	"os"
)

type (
	// PathStringError tells why a path string cannot be turned into a [Rename].
	PathStringError int

	FilesystemErrorKind int

	// FilesystemError tells why a [Rename] could not be applied.
	// It unwraps to both the sentinel of its kind and the underlying I/O error, if any.
	FilesystemError struct {
		Err  error
		Path string
		Kind FilesystemErrorKind
	}
)

const (
	MissingFileName PathStringError = iota + 1
	MissingExtension
	NonUnicodeExtension
	LowercaseExtension
)

const (
	SourceAccess FilesystemErrorKind = iota + 1
	SourceNotRegularFile
	DestinationExistenceCheck
	DestinationExists
	RenameOperation
)

var (
	ErrSourceAccess      = errors.New("source cannot be accessed")
	ErrNotRegularFile    = errors.New("not a regular file")
	ErrDestinationCheck  = errors.New("destination existence cannot be checked")
	ErrDestinationExists = errors.New("destination exists")
	ErrRenameOperation   = errors.New("rename failed")
	ErrInputRead         = errors.New("failed to read input")
	ErrInvalidUTF8       = errors.New("stream did not contain valid UTF-8")
)

var _ error = (*FilesystemError)(nil)

func (e PathStringError) Error() string {
	switch e {
	case MissingFileName:
		return "missing file name"
	case MissingExtension:
		return "missing extension"
	case NonUnicodeExtension:
		return "non-Unicode extension"
	case LowercaseExtension:
		return "extension is lowercase"
	default:
		return "invalid path string"
	}
}

func (k FilesystemErrorKind) sentinel() error {
	switch k {
	case SourceAccess:
		return ErrSourceAccess
	case SourceNotRegularFile:
		return ErrNotRegularFile
	case DestinationExistenceCheck:
		return ErrDestinationCheck
	case DestinationExists:
		return ErrDestinationExists
	default:
		return ErrRenameOperation
	}
}

func newFilesystemError(kind FilesystemErrorKind, path string, cause error) *FilesystemError {
	return &FilesystemError{Kind: kind, Path: path, Err: cause}
}

// Error gives the phrase printed after "<original>: " on the diagnostic stream.
// Errors caused by the operating system print the OS description only, since the
// original path already leads the line.
func (e *FilesystemError) Error() string {
	if e == nil {
		return "(*FilesystemError)(nil)"
	}

	switch e.Kind {
	case SourceNotRegularFile:
		return ErrNotRegularFile.Error()
	case DestinationExists:
		return "Exists: " + e.Path
	}

	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}

	return osDescription(e.Err)
}

func (e *FilesystemError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}

	return []error{e.Kind.sentinel(), e.Err}
}

// osDescription strips the operation and path that the os package puts in front of
// the system error.
func osDescription(err error) string {
	var pathErr *fs.PathError

	var linkErr *os.LinkError

	switch {
	case errors.As(err, &pathErr):
		return pathErr.Err.Error()
	case errors.As(err, &linkErr):
		return linkErr.Err.Error()
	default:
		return err.Error()
	}
}
