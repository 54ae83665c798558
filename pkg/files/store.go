// Package files lists directories for the directory panel.
package files

import (
	"context"
	"os"
)

// Store reads directories of some file system.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}
