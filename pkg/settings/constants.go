package settings

import (
	"os"
	"path/filepath"
)

const UserDir = "~/.crumbtug"

const (
	settingsFileName = "settings.yaml"
	logFileName      = "crumbtug.log"
)

var osUserHomeDir = os.UserHomeDir

// GetUserDir returns the directory the settings and the log live in.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

// DefaultFilePath returns the settings file used when none is given on the command line.
func DefaultFilePath() (string, error) {
	userDir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, settingsFileName), nil
}

// DefaultLogFilePath returns the log file used when none is configured.
func DefaultLogFilePath() (string, error) {
	userDir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, logFileName), nil
}
