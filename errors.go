package physfs

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotInitialized is returned by package-level functions before Init
	// has been called (or after Deinit).
	ErrNotInitialized = errors.New("physfs: not initialized")

	// ErrInitialized is returned by Init when the package-wide instance
	// already exists.
	ErrInitialized = errors.New("physfs: already initialized")

	// ErrNoWriteDir is returned by write operations when no write
	// directory has been configured.
	ErrNoWriteDir = errors.New("physfs: no write directory set")

	// ErrMounted is returned by Mount when the source is already part of
	// the search path.
	ErrMounted = errors.New("physfs: already mounted")

	// ErrNotMounted is returned when the named source is not part of the
	// search path.
	ErrNotMounted = errors.New("physfs: not mounted")

	// ErrNotDirectory is returned when a mount source or write directory
	// exists but is not a directory.
	ErrNotDirectory = errors.New("physfs: not a directory")

	// ErrIsDirectory is returned by OpenRead when the name resolves to a
	// directory rather than a file.
	ErrIsDirectory = errors.New("physfs: is a directory")

	// ErrNotExist is returned when a virtual path resolves to nothing on
	// the search path. Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrClosed is returned by operations on a closed File.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed
)

// pathError wraps err in a *fs.PathError carrying the virtual path the
// caller supplied. Errors from backing filesystems arrive with
// mount-relative paths; unwrap those so the caller sees the name they used.
func pathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}
