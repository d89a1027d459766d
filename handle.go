package physfs

import (
	"io"

	"github.com/go-git/go-billy/v5"
)

// Handle is the native interface of an open file inside the virtual
// filesystem: explicit-length block reads and writes at an explicitly
// positioned absolute offset. It is the contract File buffers over.
//
// A Handle is owned by exactly one File. It is invalid after Close;
// behavior of any call after Close is undefined.
type Handle interface {
	// ReadBytes reads up to len(p) bytes from the current position.
	// A short read is not an error. At end-of-file it returns 0, io.EOF.
	ReadBytes(p []byte) (int, error)

	// WriteBytes writes len(p) bytes at the current position and reports
	// how many were accepted.
	WriteBytes(p []byte) (int, error)

	// SeekTo moves the position to the given absolute offset.
	SeekTo(pos int64) error

	// Tell reports the current absolute position.
	Tell() (int64, error)

	// Length reports the total byte size of the underlying file.
	Length() (int64, error)

	// EOF reports whether the position is at or past end-of-file.
	EOF() (bool, error)

	// Close releases the handle.
	Close() error
}

// billyHandle adapts a billy.File to the Handle contract. The stored name
// is mount-relative; billy.File carries no Stat, so Length goes through
// the owning filesystem.
type billyHandle struct {
	file billy.File
	fs   billy.Basic
	name string
}

func (h *billyHandle) ReadBytes(p []byte) (int, error) {
	return h.file.Read(p)
}

func (h *billyHandle) WriteBytes(p []byte) (int, error) {
	return h.file.Write(p)
}

func (h *billyHandle) SeekTo(pos int64) error {
	_, err := h.file.Seek(pos, io.SeekStart)
	return err
}

func (h *billyHandle) Tell() (int64, error) {
	return h.file.Seek(0, io.SeekCurrent)
}

func (h *billyHandle) Length() (int64, error) {
	fi, err := h.fs.Stat(h.name)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func (h *billyHandle) EOF() (bool, error) {
	pos, err := h.Tell()
	if err != nil {
		return false, err
	}
	length, err := h.Length()
	if err != nil {
		return false, err
	}
	return pos >= length, nil
}

func (h *billyHandle) Close() error {
	return h.file.Close()
}

var _ Handle = (*billyHandle)(nil)
