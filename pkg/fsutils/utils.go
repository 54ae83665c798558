package fsutils

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

// ReadYAMLFile decodes a YAML document from filePath into o.
// An empty file leaves o untouched.
func ReadYAMLFile(filePath string, required bool, o interface{}) (err error) {
	yamlDecoderFactory := func(r io.Reader) Decoder {
		return yaml.NewDecoder(r)
	}
	err = ReadFile(filePath, required, o, yamlDecoderFactory)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return err
}

func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	if filePath == "" && !required {
		return nil
	}
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close file", "path", filePath, "error", err)
		}
	}()
	decoder := newDecoder(file)
	if err = decoder.Decode(o); err != nil {
		return err
	}
	return err
}

// WriteYAMLFile encodes o as YAML into filePath, creating parent directories.
func WriteYAMLFile(filePath string, o interface{}) (err error) {
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	var file *os.File
	if file, err = os.Create(filePath); err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err = encoder.Encode(o); err != nil {
		return err
	}
	return encoder.Close()
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// NearestExistingDir walks up from p until it finds a directory that exists.
// It returns the filesystem root if nothing else does.
func NearestExistingDir(p string) string {
	p = filepath.Clean(p)
	for {
		if exists, err := DirExists(p); err == nil && exists {
			return p
		}
		parent := filepath.Dir(p)
		if parent == p {
			return p
		}
		p = parent
	}
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
