// Package vfstest provides a conformance test suite for virtual
// filesystem wiring built on physfs.
//
// The suite validates the contracts a configured physfs.VFS must honor
// regardless of what backs its mounts: stream round-trips, end-of-stream
// behavior, logical-position seeks, write-directory sandboxing and
// search-path enumeration. Backend packages (or applications wiring their
// own mounts) import it and hand over a constructor:
//
//	func TestMemoryBacked(t *testing.T) {
//		vfstest.Suite(t, func(t *testing.T) *physfs.VFS {
//			v := physfs.New()
//			mem := memfs.New()
//			if err := v.MountFS(mem, "mem", "/", true); err != nil {
//				t.Fatal(err)
//			}
//			v.SetWriteFS(mem, "mem")
//			return v
//		})
//	}
//
// The constructor must return a fresh, empty VFS whose write target is
// also readable through the search path at the virtual root. Tests
// create and modify files, so each invocation should start clean.
package vfstest

import (
	"testing"

	"github.com/kahowell/physfs"
)

// Suite runs every conformance group against filesystems produced by
// newVFS.
func Suite(t *testing.T, newVFS func(t *testing.T) *physfs.VFS) {
	t.Run("Streams", func(t *testing.T) {
		testStreams(t, newVFS(t))
	})
	t.Run("WriteOps", func(t *testing.T) {
		testWriteOps(t, newVFS(t))
	})
	t.Run("ReadOps", func(t *testing.T) {
		testReadOps(t, newVFS(t))
	})
}
