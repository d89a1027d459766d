package physfs

import (
	"os"
	"path/filepath"
)

// GetBaseDir returns the directory of the running executable, the
// conventional anchor for mounting application data.
func GetBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// GetUserDir returns the current user's home directory.
func GetUserDir() (string, error) {
	return os.UserHomeDir()
}

// GetPrefDir returns (creating it if needed) the per-user directory where
// an application should keep its writable state, namespaced by
// organization and application name.
func GetPrefDir(org, app string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, org, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetDirSeparator returns the platform's physical path separator.
// Virtual paths always use "/".
func GetDirSeparator() string {
	return string(os.PathSeparator)
}

// SetSaneConfig wires up the conventional layout in one call: the
// preference directory for org/app becomes the write directory and the
// head of the search path, with the executable's directory appended after
// it.
func (v *VFS) SetSaneConfig(org, app string) error {
	pref, err := GetPrefDir(org, app)
	if err != nil {
		return err
	}
	if err := v.SetWriteDir(pref); err != nil {
		return err
	}
	if err := v.Mount(pref, "/", true); err != nil {
		return err
	}
	base, err := GetBaseDir()
	if err != nil {
		return err
	}
	return v.Mount(base, "/", true)
}
