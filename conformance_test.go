package physfs_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"

	"github.com/kahowell/physfs"
	"github.com/kahowell/physfs/vfstest"
)

// TestMemoryBacked runs the conformance suite over an in-memory mount.
func TestMemoryBacked(t *testing.T) {
	vfstest.Suite(t, func(t *testing.T) *physfs.VFS {
		v := physfs.New()
		mem := memfs.New()
		if err := v.MountFS(mem, "mem", "/", true); err != nil {
			t.Fatalf("MountFS: setup failed: %v", err)
		}
		v.SetWriteFS(mem, "mem")
		return v
	})
}

// TestDiskBacked runs the conformance suite over a real directory mount.
func TestDiskBacked(t *testing.T) {
	vfstest.Suite(t, func(t *testing.T) *physfs.VFS {
		dir := t.TempDir()
		v := physfs.New()
		if err := v.Mount(dir, "/", true); err != nil {
			t.Fatalf("Mount: setup failed: %v", err)
		}
		if err := v.SetWriteDir(dir); err != nil {
			t.Fatalf("SetWriteDir: setup failed: %v", err)
		}
		return v
	})
}
