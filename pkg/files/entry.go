package files

import (
	"os"
	"path/filepath"
	"time"
)

var _ os.DirEntry = (*DirEntry)(nil)

// DirEntry is an os.DirEntry that does not come from a real file system.
type DirEntry struct {
	name  string
	isDir bool
	info  *FileInfo
}

// NewDirEntry panics when name contains a directory.
func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		panic("dir entry name can not have path: " + name)
	}
	d := DirEntry{name: name, isDir: isDir}
	if len(o) > 0 {
		d.info = &FileInfo{name: name, isDir: isDir}
		for _, opt := range o {
			opt(d.info)
		}
	}
	return d
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }
func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

// Info returns nil when the entry was created without file info options.
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}

type FileInfoOption func(*FileInfo)

func Size(v int64) FileInfoOption {
	return func(info *FileInfo) {
		info.size = v
	}
}

func ModTime(v time.Time) FileInfoOption {
	return func(info *FileInfo) {
		info.modTime = v
	}
}

var _ os.FileInfo = (*FileInfo)(nil)

type FileInfo struct {
	name    string
	isDir   bool
	size    int64
	modTime time.Time
}

func (f *FileInfo) Name() string       { return f.name }
func (f *FileInfo) Size() int64        { return f.size }
func (f *FileInfo) ModTime() time.Time { return f.modTime }
func (f *FileInfo) IsDir() bool        { return f.isDir }
func (f *FileInfo) Sys() any           { return nil }
func (f *FileInfo) Mode() os.FileMode {
	if f.isDir {
		return os.ModeDir | 0o755
	}
	return 0o644
}
