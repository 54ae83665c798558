package files

import (
	"os"
	"path"
	"sort"
)

// DirContext is a directory and the entries read from it.
type DirContext struct {
	Store    Store
	Path     string
	children []os.DirEntry
}

func NewDirContext(store Store, path string, children []os.DirEntry) *DirContext {
	return &DirContext{
		Store:    store,
		Path:     path,
		children: children,
	}
}

func (c *DirContext) SetChildren(entries []os.DirEntry) {
	c.children = entries
}

func (c *DirContext) Children() []os.DirEntry {
	return c.children
}

// Dirs returns the children that are directories.
func (c *DirContext) Dirs() []os.DirEntry {
	dirs := make([]os.DirEntry, 0, len(c.children))
	for _, child := range c.children {
		if child.IsDir() {
			dirs = append(dirs, child)
		}
	}
	return dirs
}

// ChildPath returns the path of the child called name.
func (c *DirContext) ChildPath(name string) string {
	return path.Join(c.Path, name)
}

// ParentPath returns the path of the parent directory, the root is its own parent.
func (c *DirContext) ParentPath() string {
	return path.Dir(c.Path)
}

func (c *DirContext) IsRoot() bool {
	return c.Path == "/"
}

func (c *DirContext) Name() string {
	if c.Path == "" {
		return ""
	}
	if c.IsRoot() {
		return "/"
	}
	return path.Base(c.Path)
}

func (c *DirContext) String() string {
	return c.Path
}

// SortDirChildren orders directories first, then by name.
func SortDirChildren(children []os.DirEntry) []os.DirEntry {
	sort.Slice(children, func(i, j int) bool {
		// Directories first
		if children[i].IsDir() && !children[j].IsDir() {
			return true
		} else if !children[i].IsDir() && children[j].IsDir() {
			return false
		}
		// Then sort by name
		return children[i].Name() < children[j].Name()
	})
	return children
}
