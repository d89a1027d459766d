package physfs

import (
	"errors"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
)

// withGlobal initializes the process-wide instance for one test and
// guarantees it is torn down afterward.
func withGlobal(t *testing.T) {
	t.Helper()
	if err := Init(); err != nil {
		t.Fatalf("Init: got error %v, want nil", err)
	}
	t.Cleanup(func() {
		if std != nil {
			_ = Deinit()
		}
	})
}

func TestInitDeinitLifecycle(t *testing.T) {
	if IsInit() {
		t.Fatalf("IsInit before Init: got true, want false")
	}
	if err := Deinit(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Deinit before Init: got error %v, want ErrNotInitialized", err)
	}

	if err := Init(); err != nil {
		t.Fatalf("Init: got error %v, want nil", err)
	}
	if !IsInit() {
		t.Errorf("IsInit after Init: got false, want true")
	}
	if err := Init(); !errors.Is(err, ErrInitialized) {
		t.Errorf("second Init: got error %v, want ErrInitialized", err)
	}

	if err := Deinit(); err != nil {
		t.Fatalf("Deinit: got error %v, want nil", err)
	}
	if IsInit() {
		t.Errorf("IsInit after Deinit: got true, want false")
	}
}

func TestPackageFunctionsRequireInit(t *testing.T) {
	if err := Mount(t.TempDir(), "/", true); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Mount: got error %v, want ErrNotInitialized", err)
	}
	if _, err := OpenRead("/a.txt"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("OpenRead: got error %v, want ErrNotInitialized", err)
	}
	if _, err := EnumerateFiles("/"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("EnumerateFiles: got error %v, want ErrNotInitialized", err)
	}
	if Exists("/a.txt") {
		t.Errorf("Exists: got true, want false")
	}
	if GetSearchPath() != nil {
		t.Errorf("GetSearchPath: got %v, want nil", GetSearchPath())
	}
	if GetWriteDir() != "" {
		t.Errorf("GetWriteDir: got %q, want \"\"", GetWriteDir())
	}
}

// TestGlobalWriteThenRead walks the canonical flow: write "hello" to
// "a.txt", flush, reopen for reading, read five bytes back, and hit a
// clean end-of-stream on the sixth.
func TestGlobalWriteThenRead(t *testing.T) {
	withGlobal(t)

	mem := memfs.New()
	if err := MountFS(mem, "mem", "/", true); err != nil {
		t.Fatalf("MountFS: got error %v, want nil", err)
	}
	if err := SetWriteFS(mem, "mem"); err != nil {
		t.Fatalf("SetWriteFS: got error %v, want nil", err)
	}

	w, err := OpenWrite("/a.txt")
	if err != nil {
		t.Fatalf("OpenWrite: got error %v, want nil", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: got error %v, want nil", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: got error %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}

	r, err := OpenRead("/a.txt")
	if err != nil {
		t.Fatalf("OpenRead: got error %v, want nil", err)
	}
	defer func() { _ = r.Close() }()

	got := make([]byte, 5)
	if _, err := io.ReadFull(r, got); err != nil {
		t.Fatalf("ReadFull: got error %v, want nil", err)
	}
	if string(got) != "hello" {
		t.Errorf("read back %q, want %q", got, "hello")
	}
	if _, err := r.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("sixth byte: got error %v, want io.EOF", err)
	}
}

func TestGlobalForwarding(t *testing.T) {
	withGlobal(t)

	dir := t.TempDir()
	if err := Mount(dir, "/base", true); err != nil {
		t.Fatalf("Mount: got error %v, want nil", err)
	}
	if err := SetWriteDir(dir); err != nil {
		t.Fatalf("SetWriteDir: got error %v, want nil", err)
	}

	if err := WriteFile("/cfg.txt", []byte("v=1")); err != nil {
		t.Fatalf("WriteFile: got error %v, want nil", err)
	}
	if !Exists("/base/cfg.txt") {
		t.Errorf("Exists(/base/cfg.txt): got false, want true")
	}
	if !IsDirectory("/base") {
		t.Errorf("IsDirectory(/base): got false, want true")
	}

	got, err := ReadFile("/base/cfg.txt")
	if err != nil {
		t.Fatalf("ReadFile: got error %v, want nil", err)
	}
	if string(got) != "v=1" {
		t.Errorf("ReadFile: got %q, want %q", got, "v=1")
	}

	if realDir, err := GetRealDir("/base/cfg.txt"); err != nil || realDir != dir {
		t.Errorf("GetRealDir: got (%q, %v), want (%q, nil)", realDir, err, dir)
	}
	if mp, err := GetMountPoint(dir); err != nil || mp != "/base" {
		t.Errorf("GetMountPoint: got (%q, %v), want (/base, nil)", mp, err)
	}
	if _, err := GetLastModTime("/base/cfg.txt"); err != nil {
		t.Errorf("GetLastModTime: got error %v, want nil", err)
	}

	names, err := EnumerateFiles("/base")
	if err != nil {
		t.Fatalf("EnumerateFiles: got error %v, want nil", err)
	}
	if len(names) != 1 || names[0] != "cfg.txt" {
		t.Errorf("EnumerateFiles: got %v, want [cfg.txt]", names)
	}

	if err := Mkdir("/saves"); err != nil {
		t.Fatalf("Mkdir: got error %v, want nil", err)
	}
	if err := Delete("/cfg.txt"); err != nil {
		t.Fatalf("Delete: got error %v, want nil", err)
	}
	if Exists("/base/cfg.txt") {
		t.Errorf("Exists after Delete: got true, want false")
	}

	if err := Unmount(dir); err != nil {
		t.Fatalf("Unmount: got error %v, want nil", err)
	}
}

func TestGetLinkedVersion(t *testing.T) {
	v := GetLinkedVersion()
	if v.String() == "0.0.0" {
		t.Errorf("GetLinkedVersion: got %s, want a non-zero version", v)
	}
}
