package physfs

import (
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"
)

// FileStat describes a virtual filesystem entry, in the shape PhysicsFS
// reports: size, modification time, kind flags and writability.
type FileStat struct {
	Size     int64
	ModTime  time.Time
	Mode     fs.FileMode
	Dir      bool
	Symlink  bool
	ReadOnly bool
}

// Stat returns metadata for the first entry on the search path matching
// name. A mount point itself stats as a directory without consulting the
// backend.
func (v *VFS) Stat(name string) (FileStat, error) {
	m, rel, err := v.resolve(name)
	if err != nil {
		return FileStat{}, pathError("stat", norm(name), err)
	}
	if rel == "" {
		return FileStat{Dir: true, Mode: fs.ModeDir | 0o555, ReadOnly: true}, nil
	}
	fi, err := m.fs.Lstat(rel)
	if err != nil {
		return FileStat{}, pathError("stat", norm(name), err)
	}
	return FileStat{
		Size:     fi.Size(),
		ModTime:  fi.ModTime(),
		Mode:     fi.Mode(),
		Dir:      fi.IsDir(),
		Symlink:  fi.Mode()&os.ModeSymlink != 0,
		ReadOnly: fi.Mode()&0o200 == 0,
	}, nil
}

// Exists reports whether name resolves to anything on the search path.
func (v *VFS) Exists(name string) bool {
	_, _, err := v.resolve(name)
	return err == nil
}

// IsDirectory reports whether name resolves to a directory.
func (v *VFS) IsDirectory(name string) bool {
	st, err := v.Stat(name)
	return err == nil && st.Dir
}

// IsSymbolicLink reports whether name resolves to a symbolic link. Always
// false while symbolic links are unpermitted, since resolution then
// treats them as nonexistent.
func (v *VFS) IsSymbolicLink(name string) bool {
	st, err := v.Stat(name)
	return err == nil && st.Symlink
}

// GetLastModTime returns the modification time of name.
func (v *VFS) GetLastModTime(name string) (time.Time, error) {
	st, err := v.Stat(name)
	if err != nil {
		return time.Time{}, err
	}
	return st.ModTime, nil
}

// EnumerateFiles lists the entries of the virtual directory dir, merged
// across every mount that serves it, deduplicated and sorted. Mount
// points nested below dir appear as virtual entries even when no backend
// holds them.
func (v *VFS) EnumerateFiles(dir string) ([]string, error) {
	dir = norm(dir)
	seen := make(map[string]struct{})
	found := false

	for _, m := range v.mounts {
		rel, ok := m.rel(dir)
		if !ok {
			continue
		}
		if rel == "" {
			rel = "."
		}
		infos, err := m.fs.ReadDir(rel)
		if err != nil {
			continue
		}
		found = true
		for _, fi := range infos {
			if fi.Mode()&os.ModeSymlink != 0 && !v.permitSymlinks {
				continue
			}
			seen[fi.Name()] = struct{}{}
		}
	}

	// Mount points deeper than dir virtualize a path component into it.
	for _, m := range v.mounts {
		if comp, ok := childComponent(dir, m.point); ok {
			seen[comp] = struct{}{}
			found = true
		}
	}

	if !found {
		return nil, pathError("enumerate", dir, fs.ErrNotExist)
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// EnumerateFilesCallback invokes fn for each entry of dir, in sorted
// order.
func (v *VFS) EnumerateFilesCallback(dir string, fn func(name string)) error {
	names, err := v.EnumerateFiles(dir)
	if err != nil {
		return err
	}
	for _, name := range names {
		fn(name)
	}
	return nil
}

// childComponent reports the first path component of point below dir,
// when dir is a strict ancestor of point.
func childComponent(dir, point string) (string, bool) {
	if point == "/" || point == dir {
		return "", false
	}
	var rest string
	if dir == "/" {
		rest = point[1:]
	} else if strings.HasPrefix(point, dir+"/") {
		rest = point[len(dir)+1:]
	} else {
		return "", false
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest, true
}

// Mkdir creates the directory name (and any missing parents) inside the
// write directory.
func (v *VFS) Mkdir(name string) error {
	rel, err := v.writeRel("mkdir", name)
	if err != nil {
		return err
	}
	if err := v.writeFS.MkdirAll(rel, 0o755); err != nil {
		return pathError("mkdir", norm(name), err)
	}
	return nil
}

// Delete removes the file or empty directory name from the write
// directory.
func (v *VFS) Delete(name string) error {
	rel, err := v.writeRel("delete", name)
	if err != nil {
		return err
	}
	if err := v.writeFS.Remove(rel); err != nil {
		return pathError("delete", norm(name), err)
	}
	return nil
}
