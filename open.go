package physfs

import (
	"io"
	"io/fs"
	"os"
)

// OpenRead opens the first entry on the search path matching name for
// buffered reading. A missing file fails immediately with a *fs.PathError
// naming the file, a directory with ErrIsDirectory; no File exists after a
// failed open.
func (v *VFS) OpenRead(name string) (*File, error) {
	vname := norm(name)
	m, rel, err := v.resolve(vname)
	if err != nil {
		return nil, pathError("open", vname, err)
	}
	if rel == "" {
		return nil, pathError("open", vname, fs.ErrInvalid)
	}
	fi, err := m.fs.Lstat(rel)
	if err != nil {
		return nil, pathError("open", vname, err)
	}
	if fi.IsDir() {
		return nil, pathError("open", vname, ErrIsDirectory)
	}
	bf, err := m.fs.Open(rel)
	if err != nil {
		return nil, pathError("open", vname, err)
	}
	return NewFile(&billyHandle{file: bf, fs: m.fs, name: rel}, vname, 0)
}

// OpenWrite creates or truncates name inside the write directory and
// opens it for buffered writing.
func (v *VFS) OpenWrite(name string) (*File, error) {
	return v.openWriteSide(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, false)
}

// OpenAppend opens (creating if needed) name inside the write directory
// positioned at end-of-file.
func (v *VFS) OpenAppend(name string) (*File, error) {
	return v.openWriteSide(name, os.O_WRONLY|os.O_CREATE, true)
}

// OpenReadWrite opens (creating if needed) name inside the write
// directory for combined buffered reading and writing.
func (v *VFS) OpenReadWrite(name string) (*File, error) {
	return v.openWriteSide(name, os.O_RDWR|os.O_CREATE, false)
}

func (v *VFS) openWriteSide(name string, flag int, toEnd bool) (*File, error) {
	vname := norm(name)
	rel, err := v.writeRel("open", name)
	if err != nil {
		return nil, err
	}
	if rel == "" {
		return nil, pathError("open", vname, fs.ErrInvalid)
	}
	bf, err := v.writeFS.OpenFile(rel, flag, 0o666)
	if err != nil {
		return nil, pathError("open", vname, err)
	}
	if toEnd {
		// Explicit positioning instead of O_APPEND keeps append opens
		// uniform across billy backends.
		if _, err := bf.Seek(0, io.SeekEnd); err != nil {
			_ = bf.Close()
			return nil, pathError("open", vname, err)
		}
	}
	return NewFile(&billyHandle{file: bf, fs: v.writeFS, name: rel}, vname, 0)
}

// ReadFile opens name for reading and returns its full contents.
func (v *VFS) ReadFile(name string) ([]byte, error) {
	f, err := v.OpenRead(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// WriteFile creates or truncates name inside the write directory and
// writes data to it.
func (v *VFS) WriteFile(name string, data []byte) error {
	f, err := v.OpenWrite(name)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
