package osfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	origHostname := osHostname
	defer func() { osHostname = origHostname }()

	t.Run("hostname", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "test-host", nil
		}
		s := NewStore()
		assert.Equal(t, "test-host", s.RootTitle())
	})

	t.Run("hostname_error", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "", errors.New("hostname error")
		}
		s := NewStore()
		assert.Equal(t, "hostname error", s.RootTitle())
	})
}

func TestStore_ReadDir(t *testing.T) {
	s := NewStore()

	t.Run("success", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
		entries, err := s.ReadDir(context.Background(), dir)
		assert.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "sub", entries[0].Name())
	})

	t.Run("context_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		entries, err := s.ReadDir(ctx, "/tmp")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, entries)
	})

	t.Run("read_error", func(t *testing.T) {
		origReadDir := osReadDir
		defer func() { osReadDir = origReadDir }()
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return nil, errors.New("read error")
		}
		entries, err := s.ReadDir(context.Background(), "/tmp")
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}
