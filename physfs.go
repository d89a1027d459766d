package physfs

import (
	"time"

	"github.com/go-git/go-billy/v5"
)

// std is the process-wide instance the package-level functions forward
// to. It exists between Init and Deinit.
var std *VFS

// Init creates the process-wide virtual filesystem. Calling Init while
// initialized is an error.
func Init() error {
	if std != nil {
		return ErrInitialized
	}
	std = New()
	return nil
}

// Deinit releases the process-wide virtual filesystem. Files opened from
// it must be closed by their owners; Deinit does not track them.
func Deinit() error {
	if std == nil {
		return ErrNotInitialized
	}
	std = nil
	return nil
}

// IsInit reports whether the process-wide instance exists.
func IsInit() bool {
	return std != nil
}

func instance() (*VFS, error) {
	if std == nil {
		return nil, ErrNotInitialized
	}
	return std, nil
}

// Mount forwards to VFS.Mount on the process-wide instance.
func Mount(dir, mountPoint string, appendToPath bool) error {
	v, err := instance()
	if err != nil {
		return err
	}
	return v.Mount(dir, mountPoint, appendToPath)
}

// MountFS forwards to VFS.MountFS on the process-wide instance.
func MountFS(bfs billy.Filesystem, source, mountPoint string, appendToPath bool) error {
	v, err := instance()
	if err != nil {
		return err
	}
	return v.MountFS(bfs, source, mountPoint, appendToPath)
}

// Unmount forwards to VFS.Unmount on the process-wide instance.
func Unmount(source string) error {
	v, err := instance()
	if err != nil {
		return err
	}
	return v.Unmount(source)
}

// GetSearchPath forwards to VFS.GetSearchPath on the process-wide
// instance. It returns nil before Init.
func GetSearchPath() []string {
	if std == nil {
		return nil
	}
	return std.GetSearchPath()
}

// GetSearchPathCallback forwards to VFS.GetSearchPathCallback on the
// process-wide instance.
func GetSearchPathCallback(fn func(source string)) {
	if std != nil {
		std.GetSearchPathCallback(fn)
	}
}

// GetMountPoint forwards to VFS.GetMountPoint on the process-wide
// instance.
func GetMountPoint(source string) (string, error) {
	v, err := instance()
	if err != nil {
		return "", err
	}
	return v.GetMountPoint(source)
}

// GetRealDir forwards to VFS.GetRealDir on the process-wide instance.
func GetRealDir(name string) (string, error) {
	v, err := instance()
	if err != nil {
		return "", err
	}
	return v.GetRealDir(name)
}

// SetWriteDir forwards to VFS.SetWriteDir on the process-wide instance.
func SetWriteDir(dir string) error {
	v, err := instance()
	if err != nil {
		return err
	}
	return v.SetWriteDir(dir)
}

// SetWriteFS forwards to VFS.SetWriteFS on the process-wide instance.
func SetWriteFS(bfs billy.Filesystem, label string) error {
	v, err := instance()
	if err != nil {
		return err
	}
	v.SetWriteFS(bfs, label)
	return nil
}

// GetWriteDir forwards to VFS.GetWriteDir on the process-wide instance.
// It returns "" before Init.
func GetWriteDir() string {
	if std == nil {
		return ""
	}
	return std.GetWriteDir()
}

// PermitSymbolicLinks forwards to VFS.PermitSymbolicLinks on the
// process-wide instance.
func PermitSymbolicLinks(allow bool) {
	if std != nil {
		std.PermitSymbolicLinks(allow)
	}
}

// SymbolicLinksPermitted forwards to VFS.SymbolicLinksPermitted on the
// process-wide instance.
func SymbolicLinksPermitted() bool {
	return std != nil && std.SymbolicLinksPermitted()
}

// Exists forwards to VFS.Exists on the process-wide instance.
func Exists(name string) bool {
	return std != nil && std.Exists(name)
}

// Stat forwards to VFS.Stat on the process-wide instance.
func Stat(name string) (FileStat, error) {
	v, err := instance()
	if err != nil {
		return FileStat{}, err
	}
	return v.Stat(name)
}

// IsDirectory forwards to VFS.IsDirectory on the process-wide instance.
func IsDirectory(name string) bool {
	return std != nil && std.IsDirectory(name)
}

// IsSymbolicLink forwards to VFS.IsSymbolicLink on the process-wide
// instance.
func IsSymbolicLink(name string) bool {
	return std != nil && std.IsSymbolicLink(name)
}

// GetLastModTime forwards to VFS.GetLastModTime on the process-wide
// instance.
func GetLastModTime(name string) (time.Time, error) {
	v, err := instance()
	if err != nil {
		return time.Time{}, err
	}
	return v.GetLastModTime(name)
}

// EnumerateFiles forwards to VFS.EnumerateFiles on the process-wide
// instance.
func EnumerateFiles(dir string) ([]string, error) {
	v, err := instance()
	if err != nil {
		return nil, err
	}
	return v.EnumerateFiles(dir)
}

// EnumerateFilesCallback forwards to VFS.EnumerateFilesCallback on the
// process-wide instance.
func EnumerateFilesCallback(dir string, fn func(name string)) error {
	v, err := instance()
	if err != nil {
		return err
	}
	return v.EnumerateFilesCallback(dir, fn)
}

// Mkdir forwards to VFS.Mkdir on the process-wide instance.
func Mkdir(name string) error {
	v, err := instance()
	if err != nil {
		return err
	}
	return v.Mkdir(name)
}

// Delete forwards to VFS.Delete on the process-wide instance.
func Delete(name string) error {
	v, err := instance()
	if err != nil {
		return err
	}
	return v.Delete(name)
}

// OpenRead forwards to VFS.OpenRead on the process-wide instance.
func OpenRead(name string) (*File, error) {
	v, err := instance()
	if err != nil {
		return nil, err
	}
	return v.OpenRead(name)
}

// OpenWrite forwards to VFS.OpenWrite on the process-wide instance.
func OpenWrite(name string) (*File, error) {
	v, err := instance()
	if err != nil {
		return nil, err
	}
	return v.OpenWrite(name)
}

// OpenAppend forwards to VFS.OpenAppend on the process-wide instance.
func OpenAppend(name string) (*File, error) {
	v, err := instance()
	if err != nil {
		return nil, err
	}
	return v.OpenAppend(name)
}

// OpenReadWrite forwards to VFS.OpenReadWrite on the process-wide
// instance.
func OpenReadWrite(name string) (*File, error) {
	v, err := instance()
	if err != nil {
		return nil, err
	}
	return v.OpenReadWrite(name)
}

// ReadFile forwards to VFS.ReadFile on the process-wide instance.
func ReadFile(name string) ([]byte, error) {
	v, err := instance()
	if err != nil {
		return nil, err
	}
	return v.ReadFile(name)
}

// WriteFile forwards to VFS.WriteFile on the process-wide instance.
func WriteFile(name string, data []byte) error {
	v, err := instance()
	if err != nil {
		return err
	}
	return v.WriteFile(name, data)
}

// SetSaneConfig forwards to VFS.SetSaneConfig on the process-wide
// instance.
func SetSaneConfig(org, app string) error {
	v, err := instance()
	if err != nil {
		return err
	}
	return v.SetSaneConfig(org, app)
}
