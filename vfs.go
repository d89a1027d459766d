package physfs

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// VFS is a virtual filesystem: an ordered search path of mounted billy
// filesystems resolving all read operations, plus an optional write
// directory that all write operations are sandboxed to.
//
// VFS performs no locking; see the package documentation for the
// concurrency contract.
type VFS struct {
	mounts         []*mount
	writeFS        billy.Filesystem
	writeDir       string
	permitSymlinks bool
}

// mount attaches one backing filesystem at a point in the virtual tree.
type mount struct {
	fs     billy.Filesystem
	source string // physical directory, or caller-supplied label for MountFS
	point  string // cleaned virtual mount point, always "/"-rooted
}

// New returns an empty VFS with no mounts and no write directory.
func New() *VFS {
	return &VFS{}
}

// norm cleans a virtual path into the canonical "/"-rooted, "/"-separated
// form the mount table is keyed by.
func norm(name string) string {
	return path.Clean("/" + filepath.ToSlash(name))
}

// rel reports the mount-relative path of the (already normalized) name
// and whether the name falls under this mount's point. The mount point
// itself maps to the empty string.
func (m *mount) rel(name string) (string, bool) {
	if m.point == "/" {
		return strings.TrimPrefix(name, "/"), true
	}
	if name == m.point {
		return "", true
	}
	if strings.HasPrefix(name, m.point+"/") {
		return name[len(m.point)+1:], true
	}
	return "", false
}

// resolve walks the search path in order and returns the first mount that
// can serve the name, along with the mount-relative path. Symbolic links
// are invisible unless permitted. The mount point itself always resolves
// (as the empty relative path) without touching the backend.
func (v *VFS) resolve(name string) (*mount, string, error) {
	name = norm(name)
	for _, m := range v.mounts {
		rel, ok := m.rel(name)
		if !ok {
			continue
		}
		if rel == "" {
			return m, "", nil
		}
		fi, err := m.fs.Lstat(rel)
		if err != nil {
			continue
		}
		if fi.Mode()&os.ModeSymlink != 0 && !v.permitSymlinks {
			continue
		}
		return m, rel, nil
	}
	return nil, "", fs.ErrNotExist
}

// Mount adds the physical directory dir to the search path at mountPoint
// (empty means the virtual root). With appendToPath the mount is searched
// after existing mounts, otherwise before them. The directory must exist.
func (v *VFS) Mount(dir, mountPoint string, appendToPath bool) error {
	dir = filepath.Clean(dir)
	fi, err := os.Stat(dir)
	if err != nil {
		return pathError("mount", dir, err)
	}
	if !fi.IsDir() {
		return pathError("mount", dir, ErrNotDirectory)
	}
	return v.MountFS(osfs.New(dir), dir, mountPoint, appendToPath)
}

// MountFS adds an arbitrary billy filesystem to the search path. The
// source is the label reported by GetSearchPath, GetRealDir and Unmount;
// it must be unique among current mounts. This is how in-memory trees
// (memfs) join the search path.
func (v *VFS) MountFS(bfs billy.Filesystem, source, mountPoint string, appendToPath bool) error {
	for _, m := range v.mounts {
		if m.source == source {
			return pathError("mount", source, ErrMounted)
		}
	}
	m := &mount{fs: bfs, source: source, point: norm(mountPoint)}
	if appendToPath {
		v.mounts = append(v.mounts, m)
	} else {
		v.mounts = append([]*mount{m}, v.mounts...)
	}
	return nil
}

// Unmount removes the mount with the given source from the search path.
func (v *VFS) Unmount(source string) error {
	for i, m := range v.mounts {
		if m.source == source {
			v.mounts = append(v.mounts[:i], v.mounts[i+1:]...)
			return nil
		}
	}
	return pathError("unmount", source, ErrNotMounted)
}

// GetSearchPath returns the mount sources in search order.
func (v *VFS) GetSearchPath() []string {
	sources := make([]string, len(v.mounts))
	for i, m := range v.mounts {
		sources[i] = m.source
	}
	return sources
}

// GetSearchPathCallback invokes fn for each mount source in search order.
func (v *VFS) GetSearchPathCallback(fn func(source string)) {
	for _, m := range v.mounts {
		fn(m.source)
	}
}

// GetMountPoint reports where the mount with the given source appears in
// the virtual tree.
func (v *VFS) GetMountPoint(source string) (string, error) {
	for _, m := range v.mounts {
		if m.source == source {
			return m.point, nil
		}
	}
	return "", pathError("mountpoint", source, ErrNotMounted)
}

// GetRealDir reports the source of the mount that a read of name would be
// served from.
func (v *VFS) GetRealDir(name string) (string, error) {
	m, _, err := v.resolve(name)
	if err != nil {
		return "", pathError("realdir", norm(name), err)
	}
	return m.source, nil
}

// SetWriteDir configures the physical directory all write operations are
// sandboxed to. An empty dir disables writing. The directory must exist.
func (v *VFS) SetWriteDir(dir string) error {
	if dir == "" {
		v.writeFS, v.writeDir = nil, ""
		return nil
	}
	dir = filepath.Clean(dir)
	fi, err := os.Stat(dir)
	if err != nil {
		return pathError("writedir", dir, err)
	}
	if !fi.IsDir() {
		return pathError("writedir", dir, ErrNotDirectory)
	}
	v.writeFS = osfs.New(dir)
	v.writeDir = dir
	return nil
}

// SetWriteFS configures an arbitrary billy filesystem as the write
// target, labeled by GetWriteDir as the given name. Used to direct writes
// at in-memory trees.
func (v *VFS) SetWriteFS(bfs billy.Filesystem, label string) {
	v.writeFS = bfs
	v.writeDir = label
}

// GetWriteDir reports the configured write directory, or "" when writing
// is disabled.
func (v *VFS) GetWriteDir() string {
	return v.writeDir
}

// PermitSymbolicLinks toggles whether symbolic links are visible during
// path resolution. They are invisible by default, as in PhysicsFS.
func (v *VFS) PermitSymbolicLinks(allow bool) {
	v.permitSymlinks = allow
}

// SymbolicLinksPermitted reports the current symlink policy.
func (v *VFS) SymbolicLinksPermitted() bool {
	return v.permitSymlinks
}

// writeRel translates a virtual name into a write-dir-relative path,
// failing when no write target is configured.
func (v *VFS) writeRel(op, name string) (string, error) {
	if v.writeFS == nil {
		return "", pathError(op, norm(name), ErrNoWriteDir)
	}
	return strings.TrimPrefix(norm(name), "/"), nil
}
