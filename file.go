package physfs

import (
	"errors"
	"io"
	"io/fs"
)

// DefaultBufferSize is the size of a File's internal buffer when no
// explicit size is given to NewFile.
const DefaultBufferSize = 2048

// File presents byte-at-a-time sequential streaming (with random-access
// seeks) over a Handle whose native interface requires explicit-length
// block transfers at explicit absolute offsets.
//
// A single fixed-size buffer backs two regions that are never both
// non-empty: a read region of bytes physically fetched but not yet
// consumed, and a write region of bytes accepted but not yet flushed.
// Crossing from one direction to the other resets the opposite region —
// pending writes are flushed before a read, and buffered-but-unconsumed
// read bytes are discarded (with the handle rewound to the logical
// position) before a write.
//
// Close flushes pending writes before releasing the handle and is
// idempotent. A File must not be used from multiple goroutines at once.
type File struct {
	h    Handle
	name string
	buf  []byte

	// read region: unconsumed bytes are buf[rpos:rlim]
	rpos int
	rlim int

	// write region: pending bytes are buf[:wlen]
	wlen int

	closed bool
}

var (
	_ io.ReadWriteSeeker = (*File)(nil)
	_ io.ByteReader      = (*File)(nil)
	_ io.ByteWriter      = (*File)(nil)
	_ io.Closer          = (*File)(nil)
)

// NewFile wraps an already-open Handle in a buffered stream. Ownership of
// the handle transfers to the File; it is closed by File.Close. The name
// is used in error messages and Name. A bufSize of zero or less selects
// DefaultBufferSize.
//
// NewFile fails on a nil handle: a File must never exist without a live
// handle behind it.
func NewFile(h Handle, name string, bufSize int) (*File, error) {
	if h == nil {
		return nil, pathError("open", name, errors.New("nil handle"))
	}
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	return &File{h: h, name: name, buf: make([]byte, bufSize)}, nil
}

// Name returns the virtual path the file was opened with.
func (f *File) Name() string { return f.name }

// Read fills p from the read region, refilling it from the handle when
// exhausted. At most one underlying read is issued per call, so a short
// count with a nil error is common. End-of-file is reported as io.EOF and
// repeated reads keep returning io.EOF.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, pathError("read", f.name, fs.ErrClosed)
	}
	if f.wlen > 0 {
		if err := f.flush("read"); err != nil {
			return 0, err
		}
	}
	if len(p) == 0 {
		return 0, nil
	}
	if f.rpos == f.rlim {
		if err := f.fill(); err != nil {
			return 0, err
		}
	}
	n := copy(p, f.buf[f.rpos:f.rlim])
	f.rpos += n
	return n, nil
}

// ReadByte consumes and returns the next byte, refilling the read region
// when needed. End-of-file is io.EOF.
func (f *File) ReadByte() (byte, error) {
	if f.closed {
		return 0, pathError("read", f.name, fs.ErrClosed)
	}
	if f.wlen > 0 {
		if err := f.flush("read"); err != nil {
			return 0, err
		}
	}
	if f.rpos == f.rlim {
		if err := f.fill(); err != nil {
			return 0, err
		}
	}
	c := f.buf[f.rpos]
	f.rpos++
	return c, nil
}

// fill refills the read region from the handle. It returns io.EOF when no
// further bytes are available; a refill shorter than the buffer is valid
// and not an error.
func (f *File) fill() error {
	f.rpos, f.rlim = 0, 0
	eof, err := f.h.EOF()
	if err != nil {
		return pathError("read", f.name, err)
	}
	if eof {
		return io.EOF
	}
	n, err := f.h.ReadBytes(f.buf)
	if n <= 0 {
		if err != nil && err != io.EOF {
			return pathError("read", f.name, err)
		}
		return io.EOF
	}
	f.rlim = n
	return nil
}

// Write appends p to the write region, flushing to the handle each time
// the region fills. Writes never partially succeed silently: a failed
// flush reports how many bytes were accepted before it.
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, pathError("write", f.name, fs.ErrClosed)
	}
	if err := f.discardReadRegion("write"); err != nil {
		return 0, err
	}
	var n int
	for len(p) > 0 {
		if f.wlen == len(f.buf) {
			if err := f.flush("write"); err != nil {
				return n, err
			}
		}
		c := copy(f.buf[f.wlen:], p)
		f.wlen += c
		n += c
		p = p[c:]
	}
	return n, nil
}

// WriteByte appends a single byte to the write region, flushing first if
// the region is full.
func (f *File) WriteByte(c byte) error {
	if f.closed {
		return pathError("write", f.name, fs.ErrClosed)
	}
	if err := f.discardReadRegion("write"); err != nil {
		return err
	}
	if f.wlen == len(f.buf) {
		if err := f.flush("write"); err != nil {
			return err
		}
	}
	f.buf[f.wlen] = c
	f.wlen++
	return nil
}

// discardReadRegion drops buffered-but-unconsumed read bytes before a
// write. Those bytes were already physically read past the logical
// position, so the handle is rewound by the unconsumed count first.
func (f *File) discardReadRegion(op string) error {
	if f.rpos == f.rlim {
		f.rpos, f.rlim = 0, 0
		return nil
	}
	raw, err := f.h.Tell()
	if err != nil {
		return pathError(op, f.name, err)
	}
	if err := f.h.SeekTo(raw - int64(f.rlim-f.rpos)); err != nil {
		return pathError(op, f.name, err)
	}
	f.rpos, f.rlim = 0, 0
	return nil
}

// flush writes the pending write region to the handle. An empty region is
// a no-op. A short physical write fails the whole call with
// io.ErrShortWrite; the region is left intact so the failure is visible,
// not silently dropped.
func (f *File) flush(op string) error {
	if f.wlen == 0 {
		return nil
	}
	n, err := f.h.WriteBytes(f.buf[:f.wlen])
	if err != nil {
		return pathError(op, f.name, err)
	}
	if n < f.wlen {
		return pathError(op, f.name, io.ErrShortWrite)
	}
	f.wlen = 0
	return nil
}

// Flush forces pending writes out to the handle. Safe to call with
// nothing pending.
func (f *File) Flush() error {
	if f.closed {
		return pathError("flush", f.name, fs.ErrClosed)
	}
	return f.flush("flush")
}

// Seek moves the logical position per io.Seeker semantics and returns the
// resulting absolute position.
//
// io.SeekCurrent is relative to the logical position: the handle's raw
// position minus buffered-but-unconsumed read bytes. Pending writes are
// flushed before the handle moves rather than discarded (the latter loses
// data); the read region is invalidated afterward so the next read
// refills from the new position.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, pathError("seek", f.name, fs.ErrClosed)
	}
	if err := f.flush("seek"); err != nil {
		return 0, err
	}

	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		raw, err := f.h.Tell()
		if err != nil {
			return 0, pathError("seek", f.name, err)
		}
		target = raw + offset - int64(f.rlim-f.rpos)
	case io.SeekEnd:
		length, err := f.h.Length()
		if err != nil {
			return 0, pathError("seek", f.name, err)
		}
		target = length + offset
	default:
		return 0, pathError("seek", f.name, errors.New("invalid whence"))
	}
	if target < 0 {
		return 0, pathError("seek", f.name, errors.New("negative position"))
	}

	if err := f.h.SeekTo(target); err != nil {
		return 0, pathError("seek", f.name, err)
	}
	f.rpos, f.rlim = 0, 0

	pos, err := f.h.Tell()
	if err != nil {
		return 0, pathError("seek", f.name, err)
	}
	return pos, nil
}

// Tell reports the logical position: the handle's raw position adjusted
// for buffered-but-unconsumed reads and buffered-but-unflushed writes.
func (f *File) Tell() (int64, error) {
	if f.closed {
		return 0, pathError("tell", f.name, fs.ErrClosed)
	}
	raw, err := f.h.Tell()
	if err != nil {
		return 0, pathError("tell", f.name, err)
	}
	return raw - int64(f.rlim-f.rpos) + int64(f.wlen), nil
}

// Length reports the total byte size of the underlying file at the time
// of the call. Bytes still pending in the write region are not counted.
func (f *File) Length() (int64, error) {
	if f.closed {
		return 0, pathError("length", f.name, fs.ErrClosed)
	}
	n, err := f.h.Length()
	if err != nil {
		return 0, pathError("length", f.name, err)
	}
	return n, nil
}

// Close flushes pending writes, then releases the handle. Both always
// run; a flush failure is reported in preference to a close failure.
// Subsequent calls return nil.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	ferr := f.flush("close")
	cerr := f.h.Close()
	if ferr != nil {
		return ferr
	}
	if cerr != nil {
		return pathError("close", f.name, cerr)
	}
	return nil
}
