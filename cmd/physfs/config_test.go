package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseMountFlag(t *testing.T) {
	tests := []struct {
		value string
		want  mountSpec
	}{
		{"/usr/share/game", mountSpec{Dir: "/usr/share/game", Point: "/"}},
		{"/usr/share/game::/data", mountSpec{Dir: "/usr/share/game", Point: "/data"}},
		{"mods/extra::/mods", mountSpec{Dir: "mods/extra", Point: "/mods"}},
	}
	for _, tt := range tests {
		if got := parseMountFlag(tt.value); got != tt.want {
			t.Errorf("parseMountFlag(%q): got %+v, want %+v", tt.value, got, tt.want)
		}
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := `
write_dir: /home/user/.game
mounts:
  - dir: /usr/share/game/base
    point: /
  - dir: /usr/share/game/expansion
    point: /expansion
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	m, err := loadManifest(path)
	if err != nil {
		t.Fatalf("loadManifest: got error %v, want nil", err)
	}
	if m.WriteDir != "/home/user/.game" {
		t.Errorf("write_dir: got %q, want %q", m.WriteDir, "/home/user/.game")
	}
	want := []mountSpec{
		{Dir: "/usr/share/game/base", Point: "/"},
		{Dir: "/usr/share/game/expansion", Point: "/expansion"},
	}
	if !reflect.DeepEqual(m.Mounts, want) {
		t.Errorf("mounts: got %+v, want %+v", m.Mounts, want)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	if _, err := loadManifest(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("loadManifest(missing): got nil, want error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("mounts:\n  - point: /\n"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := loadManifest(path); err == nil {
		t.Errorf("loadManifest(mount without dir): got nil, want error")
	}
}
