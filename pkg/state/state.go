// Package state remembers the last directory crumbtug showed.
package state

import (
	"path/filepath"

	"github.com/filetug/crumbtug/pkg/fsutils"
)

const stateFileName = "state.yaml"

type State struct {
	CurrentDir string `yaml:"current_dir,omitempty"`
}

// Store reads and writes the state file in a directory.
type Store struct {
	filePath string
}

func NewStore(dir string) *Store {
	return &Store{filePath: filepath.Join(fsutils.ExpandHome(dir), stateFileName)}
}

func (s *Store) FilePath() string {
	return s.filePath
}

var readYAML = fsutils.ReadYAMLFile
var writeYAML = fsutils.WriteYAMLFile

func (s *Store) Get() (State, error) {
	var state State
	return state, readYAML(s.filePath, false, &state)
}

// CurrentDir returns the saved directory, or an empty string when there is none.
func (s *Store) CurrentDir() string {
	state, err := s.Get()
	if err != nil {
		return ""
	}
	return state.CurrentDir
}

func (s *Store) SaveCurrentDir(dir string) error {
	return s.update(func(state *State) {
		state.CurrentDir = dir
	})
}

func (s *Store) update(f func(state *State)) error {
	state, err := s.Get()
	if err != nil {
		// a broken state file is overwritten
		state = State{}
	}
	f(&state)
	return writeYAML(s.filePath, state)
}
