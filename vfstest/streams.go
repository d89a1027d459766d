package vfstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/kahowell/physfs"
)

// testStreams exercises the buffered stream contract: round-trips,
// end-of-stream semantics, logical-position seeks and flush-on-close.
func testStreams(t *testing.T, v *physfs.VFS) {
	t.Run("RoundTrip", func(t *testing.T) {
		testStreamRoundTrip(t, v)
	})
	t.Run("CloseFlushes", func(t *testing.T) {
		testStreamCloseFlushes(t, v)
	})
	t.Run("EndOfStream", func(t *testing.T) {
		testStreamEndOfStream(t, v)
	})
	t.Run("SeekCurrentLogical", func(t *testing.T) {
		testStreamSeekCurrentLogical(t, v)
	})
	t.Run("SeekEnd", func(t *testing.T) {
		testStreamSeekEnd(t, v)
	})
	t.Run("SeekFlushesPendingWrites", func(t *testing.T) {
		testStreamSeekFlushesPendingWrites(t, v)
	})
	t.Run("ReadWriteCrossing", func(t *testing.T) {
		testStreamReadWriteCrossing(t, v)
	})
	t.Run("Append", func(t *testing.T) {
		testStreamAppend(t, v)
	})
	t.Run("OpenMissing", func(t *testing.T) {
		testStreamOpenMissing(t, v)
	})
	t.Run("UseAfterClose", func(t *testing.T) {
		testStreamUseAfterClose(t, v)
	})
}

// testStreamRoundTrip writes a sequence, flushes, reopens for reading and
// expects the identical sequence back byte for byte.
func testStreamRoundTrip(t *testing.T, v *physfs.VFS) {
	want := []byte("hello")

	w, err := v.OpenWrite("/a.txt")
	if err != nil {
		t.Fatalf("OpenWrite(/a.txt): got error %v, want nil", err)
	}
	if n, err := w.Write(want); err != nil || n != len(want) {
		t.Fatalf("Write: got (%d, %v), want (%d, nil)", n, err, len(want))
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: got error %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}

	r, err := v.OpenRead("/a.txt")
	if err != nil {
		t.Fatalf("OpenRead(/a.txt): got error %v, want nil", err)
	}
	defer func() { _ = r.Close() }()

	got := make([]byte, len(want))
	if _, err := io.ReadFull(r, got); err != nil {
		t.Fatalf("ReadFull: got error %v, want nil", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("read back %q, want %q", got, want)
	}
	// The sixth byte is past the end: clean end-of-stream, not an error.
	if _, err := r.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadByte past end: got error %v, want io.EOF", err)
	}

	if n, err := r.Length(); err != nil || n != int64(len(want)) {
		t.Errorf("Length: got (%d, %v), want (%d, nil)", n, err, len(want))
	}
}

// testStreamCloseFlushes verifies the destructor-flush contract: bytes
// smaller than the buffer persist on Close without an explicit Flush.
func testStreamCloseFlushes(t *testing.T, v *physfs.VFS) {
	w, err := v.OpenWrite("/pending.txt")
	if err != nil {
		t.Fatalf("OpenWrite: got error %v, want nil", err)
	}
	if _, err := w.Write([]byte("buffered")); err != nil {
		t.Fatalf("Write: got error %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}
	// Close again: idempotent.
	if err := w.Close(); err != nil {
		t.Errorf("second Close: got error %v, want nil", err)
	}

	got, err := v.ReadFile("/pending.txt")
	if err != nil {
		t.Fatalf("ReadFile: got error %v, want nil", err)
	}
	if string(got) != "buffered" {
		t.Errorf("persisted %q, want %q", got, "buffered")
	}
}

// testStreamEndOfStream verifies end-of-stream is idempotent.
func testStreamEndOfStream(t *testing.T, v *physfs.VFS) {
	if err := v.WriteFile("/eof.txt", []byte("x")); err != nil {
		t.Fatalf("WriteFile: got error %v, want nil", err)
	}
	r, err := v.OpenRead("/eof.txt")
	if err != nil {
		t.Fatalf("OpenRead: got error %v, want nil", err)
	}
	defer func() { _ = r.Close() }()

	if _, err := io.Copy(io.Discard, r); err != nil {
		t.Fatalf("Copy: got error %v, want nil", err)
	}
	for i := 0; i < 3; i++ {
		if n, err := r.Read(make([]byte, 8)); n != 0 || !errors.Is(err, io.EOF) {
			t.Errorf("Read after end #%d: got (%d, %v), want (0, io.EOF)", i, n, err)
		}
	}
}

// testStreamSeekCurrentLogical verifies a relative seek of zero right
// after a partial buffered read reports the logical position, excluding
// bytes fetched into the buffer but not yet consumed.
func testStreamSeekCurrentLogical(t *testing.T, v *physfs.VFS) {
	if err := v.WriteFile("/seek.txt", []byte("hello world")); err != nil {
		t.Fatalf("WriteFile: got error %v, want nil", err)
	}
	r, err := v.OpenRead("/seek.txt")
	if err != nil {
		t.Fatalf("OpenRead: got error %v, want nil", err)
	}
	defer func() { _ = r.Close() }()

	if _, err := io.ReadFull(r, make([]byte, 5)); err != nil {
		t.Fatalf("ReadFull: got error %v, want nil", err)
	}
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("Seek(0, current): got error %v, want nil", err)
	}
	if pos != 5 {
		t.Errorf("Seek(0, current) after 5-byte read: got %d, want 5", pos)
	}
	if c, err := r.ReadByte(); err != nil || c != ' ' {
		t.Errorf("ReadByte after seek: got (%q, %v), want (' ', nil)", c, err)
	}
}

// testStreamSeekEnd verifies seeking from-end with offset zero lands
// exactly at end-of-file.
func testStreamSeekEnd(t *testing.T, v *physfs.VFS) {
	if err := v.WriteFile("/end.txt", []byte("0123456789")); err != nil {
		t.Fatalf("WriteFile: got error %v, want nil", err)
	}
	r, err := v.OpenRead("/end.txt")
	if err != nil {
		t.Fatalf("OpenRead: got error %v, want nil", err)
	}
	defer func() { _ = r.Close() }()

	pos, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		t.Fatalf("Seek(0, end): got error %v, want nil", err)
	}
	if pos != 10 {
		t.Errorf("Seek(0, end): got %d, want 10", pos)
	}
	if _, err := r.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadByte at end: got error %v, want io.EOF", err)
	}

	pos, err = r.Seek(-4, io.SeekEnd)
	if err != nil || pos != 6 {
		t.Fatalf("Seek(-4, end): got (%d, %v), want (6, nil)", pos, err)
	}
	if c, err := r.ReadByte(); err != nil || c != '6' {
		t.Errorf("ReadByte: got (%q, %v), want ('6', nil)", c, err)
	}
}

// testStreamSeekFlushesPendingWrites verifies the chosen seek policy:
// pending writes are flushed before the position moves, never discarded.
func testStreamSeekFlushesPendingWrites(t *testing.T, v *physfs.VFS) {
	f, err := v.OpenReadWrite("/policy.txt")
	if err != nil {
		t.Fatalf("OpenReadWrite: got error %v, want nil", err)
	}
	if _, err := f.Write([]byte("abc")); err != nil {
		t.Fatalf("Write: got error %v, want nil", err)
	}
	if pos, err := f.Seek(0, io.SeekStart); err != nil || pos != 0 {
		t.Fatalf("Seek(0, start): got (%d, %v), want (0, nil)", pos, err)
	}
	got := make([]byte, 3)
	if _, err := io.ReadFull(f, got); err != nil {
		t.Fatalf("ReadFull: got error %v, want nil", err)
	}
	if string(got) != "abc" {
		t.Errorf("read back %q, want %q: pending writes were lost by seek", got, "abc")
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}
}

// testStreamReadWriteCrossing verifies combined-mode region handling:
// writing right after a partial read lands at the logical position.
func testStreamReadWriteCrossing(t *testing.T, v *physfs.VFS) {
	if err := v.WriteFile("/cross.txt", []byte("abcdef")); err != nil {
		t.Fatalf("WriteFile: got error %v, want nil", err)
	}
	f, err := v.OpenReadWrite("/cross.txt")
	if err != nil {
		t.Fatalf("OpenReadWrite: got error %v, want nil", err)
	}
	if _, err := io.ReadFull(f, make([]byte, 3)); err != nil {
		t.Fatalf("ReadFull: got error %v, want nil", err)
	}
	if _, err := f.Write([]byte("XY")); err != nil {
		t.Fatalf("Write: got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}

	got, err := v.ReadFile("/cross.txt")
	if err != nil {
		t.Fatalf("ReadFile: got error %v, want nil", err)
	}
	if string(got) != "abcXYf" {
		t.Errorf("after crossing: got %q, want %q", got, "abcXYf")
	}
}

// testStreamAppend verifies OpenAppend positions at end-of-file.
func testStreamAppend(t *testing.T, v *physfs.VFS) {
	if err := v.WriteFile("/log.txt", []byte("one\n")); err != nil {
		t.Fatalf("WriteFile: got error %v, want nil", err)
	}
	a, err := v.OpenAppend("/log.txt")
	if err != nil {
		t.Fatalf("OpenAppend: got error %v, want nil", err)
	}
	if _, err := a.Write([]byte("two\n")); err != nil {
		t.Fatalf("Write: got error %v, want nil", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}

	got, err := v.ReadFile("/log.txt")
	if err != nil {
		t.Fatalf("ReadFile: got error %v, want nil", err)
	}
	if string(got) != "one\ntwo\n" {
		t.Errorf("after append: got %q, want %q", got, "one\ntwo\n")
	}
}

// testStreamOpenMissing verifies a failed open surfaces before any stream
// method is reachable, as a path error naming the file.
func testStreamOpenMissing(t *testing.T, v *physfs.VFS) {
	f, err := v.OpenRead("/no/such/file.txt")
	if f != nil {
		t.Fatalf("OpenRead(missing): got a file, want nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("OpenRead(missing): got error %v, want fs.ErrNotExist", err)
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("OpenRead(missing): got %T, want *fs.PathError", err)
	}
	if pe.Path != "/no/such/file.txt" {
		t.Errorf("error path: got %q, want %q", pe.Path, "/no/such/file.txt")
	}
}

// testStreamUseAfterClose verifies every operation on a closed stream
// fails with fs.ErrClosed instead of reaching the dead handle.
func testStreamUseAfterClose(t *testing.T, v *physfs.VFS) {
	if err := v.WriteFile("/closed.txt", []byte("x")); err != nil {
		t.Fatalf("WriteFile: got error %v, want nil", err)
	}
	f, err := v.OpenRead("/closed.txt")
	if err != nil {
		t.Fatalf("OpenRead: got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}

	if _, err := f.Read(make([]byte, 1)); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Read after close: got error %v, want fs.ErrClosed", err)
	}
	if _, err := f.Write([]byte("y")); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Write after close: got error %v, want fs.ErrClosed", err)
	}
	if _, err := f.Seek(0, io.SeekStart); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Seek after close: got error %v, want fs.ErrClosed", err)
	}
	if err := f.Flush(); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Flush after close: got error %v, want fs.ErrClosed", err)
	}
}
