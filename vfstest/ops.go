package vfstest

import (
	"errors"
	"io/fs"
	"reflect"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/kahowell/physfs"
)

// testWriteOps exercises the write-directory sandbox: mkdir, delete and
// whole-file helpers.
func testWriteOps(t *testing.T, v *physfs.VFS) {
	t.Run("MkdirWriteDelete", func(t *testing.T) {
		if err := v.Mkdir("/saves/slot1"); err != nil {
			t.Fatalf("Mkdir(/saves/slot1): got error %v, want nil", err)
		}
		if !v.IsDirectory("/saves/slot1") {
			t.Errorf("IsDirectory(/saves/slot1): got false, want true")
		}

		if err := v.WriteFile("/saves/slot1/state.dat", []byte{1, 2, 3}); err != nil {
			t.Fatalf("WriteFile: got error %v, want nil", err)
		}
		got, err := v.ReadFile("/saves/slot1/state.dat")
		if err != nil {
			t.Fatalf("ReadFile: got error %v, want nil", err)
		}
		if !reflect.DeepEqual(got, []byte{1, 2, 3}) {
			t.Errorf("ReadFile: got %v, want %v", got, []byte{1, 2, 3})
		}

		if err := v.Delete("/saves/slot1/state.dat"); err != nil {
			t.Fatalf("Delete(file): got error %v, want nil", err)
		}
		if v.Exists("/saves/slot1/state.dat") {
			t.Errorf("Exists after delete: got true, want false")
		}
		if err := v.Delete("/saves/slot1"); err != nil {
			t.Fatalf("Delete(empty dir): got error %v, want nil", err)
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		if err := v.Delete("/never-existed"); err == nil {
			t.Errorf("Delete(missing): got nil, want error")
		}
	})
}

// testReadOps exercises queries and enumeration over the search path.
func testReadOps(t *testing.T, v *physfs.VFS) {
	for _, name := range []string{"/dir/a.txt", "/dir/b.txt"} {
		if err := v.Mkdir("/dir"); err != nil {
			t.Fatalf("Mkdir: setup failed: %v", err)
		}
		if err := v.WriteFile(name, []byte("data")); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}
	}

	t.Run("Exists", func(t *testing.T) {
		if !v.Exists("/dir/a.txt") {
			t.Errorf("Exists(/dir/a.txt): got false, want true")
		}
		if v.Exists("/dir/c.txt") {
			t.Errorf("Exists(/dir/c.txt): got true, want false")
		}
	})

	t.Run("Stat", func(t *testing.T) {
		st, err := v.Stat("/dir/a.txt")
		if err != nil {
			t.Fatalf("Stat: got error %v, want nil", err)
		}
		if st.Size != 4 {
			t.Errorf("Stat size: got %d, want 4", st.Size)
		}
		if st.Dir {
			t.Errorf("Stat dir flag: got true, want false")
		}

		if _, err := v.Stat("/dir/c.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("IsDirectory", func(t *testing.T) {
		if !v.IsDirectory("/dir") {
			t.Errorf("IsDirectory(/dir): got false, want true")
		}
		if v.IsDirectory("/dir/a.txt") {
			t.Errorf("IsDirectory(/dir/a.txt): got true, want false")
		}
		// The virtual root always exists as a directory.
		if !v.IsDirectory("/") {
			t.Errorf("IsDirectory(/): got false, want true")
		}
	})

	t.Run("EnumerateFiles", func(t *testing.T) {
		names, err := v.EnumerateFiles("/dir")
		if err != nil {
			t.Fatalf("EnumerateFiles: got error %v, want nil", err)
		}
		want := []string{"a.txt", "b.txt"}
		if !reflect.DeepEqual(names, want) {
			t.Errorf("EnumerateFiles: got %v, want %v", names, want)
		}

		if _, err := v.EnumerateFiles("/missing"); err == nil {
			t.Errorf("EnumerateFiles(missing): got nil, want error")
		}
	})

	t.Run("EnumerateFilesCallback", func(t *testing.T) {
		var names []string
		err := v.EnumerateFilesCallback("/dir", func(name string) {
			names = append(names, name)
		})
		if err != nil {
			t.Fatalf("EnumerateFilesCallback: got error %v, want nil", err)
		}
		want := []string{"a.txt", "b.txt"}
		if !reflect.DeepEqual(names, want) {
			t.Errorf("EnumerateFilesCallback: got %v, want %v", names, want)
		}
	})

	t.Run("GetRealDir", func(t *testing.T) {
		source, err := v.GetRealDir("/dir/a.txt")
		if err != nil {
			t.Fatalf("GetRealDir: got error %v, want nil", err)
		}
		path := v.GetSearchPath()
		if len(path) == 0 {
			t.Fatalf("GetSearchPath: got empty, want at least one mount")
		}
		found := false
		for _, s := range path {
			if s == source {
				found = true
			}
		}
		if !found {
			t.Errorf("GetRealDir: got %q, not in search path %v", source, path)
		}
	})

	t.Run("UnmountRestoresResolution", func(t *testing.T) {
		if err := v.WriteFile("/dir/shadow.txt", []byte("under")); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}

		overlay := memfs.New()
		if err := util.WriteFile(overlay, "dir/shadow.txt", []byte("over"), 0o644); err != nil {
			t.Fatalf("WriteFile(overlay): setup failed: %v", err)
		}
		if err := v.MountFS(overlay, "overlay", "/", false); err != nil {
			t.Fatalf("MountFS(overlay, prepend): got error %v, want nil", err)
		}

		got, err := v.ReadFile("/dir/shadow.txt")
		if err != nil {
			t.Fatalf("ReadFile with overlay: got error %v, want nil", err)
		}
		if string(got) != "over" {
			t.Errorf("ReadFile with overlay: got %q, want %q", got, "over")
		}

		// Removing the shadowing mount falls resolution through to the
		// mount it was hiding.
		if err := v.Unmount("overlay"); err != nil {
			t.Fatalf("Unmount(overlay): got error %v, want nil", err)
		}
		got, err = v.ReadFile("/dir/shadow.txt")
		if err != nil {
			t.Fatalf("ReadFile after unmount: got error %v, want nil", err)
		}
		if string(got) != "under" {
			t.Errorf("ReadFile after unmount: got %q, want %q", got, "under")
		}
	})
}
