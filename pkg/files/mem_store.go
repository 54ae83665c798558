package files

import (
	"context"
	"os"
	"path"
	"slices"
	"sync"
)

var _ Store = (*MemStore)(nil)

// MemStore is an in-memory directory tree, safe for concurrent use.
type MemStore struct {
	mu   sync.RWMutex
	dirs map[string][]os.DirEntry
}

func NewMemStore() *MemStore {
	return &MemStore{dirs: map[string][]os.DirEntry{"/": nil}}
}

func (s *MemStore) RootTitle() string {
	return "memory"
}

// MkdirAll creates p and its parents.
func (s *MemStore) MkdirAll(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mkdirAll(path.Clean(p))
}

func (s *MemStore) mkdirAll(p string) {
	if _, ok := s.dirs[p]; ok {
		return
	}
	parent := path.Dir(p)
	s.mkdirAll(parent)
	s.dirs[p] = nil
	s.dirs[parent] = append(s.dirs[parent], NewDirEntry(path.Base(p), true))
}

// AddFile creates a file in dir, creating dir when needed.
func (s *MemStore) AddFile(dir, name string, size int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dir = path.Clean(dir)
	s.mkdirAll(dir)
	s.dirs[dir] = append(s.dirs[dir], NewDirEntry(name, false, Size(size)))
}

// RemoveAll deletes p and everything below it.
func (s *MemStore) RemoveAll(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p = path.Clean(p)
	for dir := range s.dirs {
		if dir == p || len(dir) > len(p) && dir[:len(p)] == p && dir[len(p)] == '/' {
			delete(s.dirs, dir)
		}
	}
	parent := path.Dir(p)
	s.dirs[parent] = slices.DeleteFunc(s.dirs[parent], func(e os.DirEntry) bool {
		return e.Name() == path.Base(p)
	})
}

func (s *MemStore) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	children, ok := s.dirs[path.Clean(name)]
	if !ok {
		return nil, &os.PathError{Op: "readdir", Path: name, Err: os.ErrNotExist}
	}
	return slices.Clone(children), nil
}

// Exists reports whether the directory p exists in the store.
func (s *MemStore) Exists(p string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.dirs[path.Clean(p)]
	return ok
}
