package config

import (
	"os"
	"path/filepath"
)

// GetChimeHome returns CHIME_HOME or ~/.chime default
func GetChimeHome() string {
	chimeHome := os.Getenv("CHIME_HOME")
	if chimeHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".chime"
		}
		return filepath.Join(homeDir, ".chime")
	}
	return ExpandPath(chimeHome)
}

// GetSettingsPath returns $CHIME_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetChimeHome(), "settings.json")
}

// GetCacheDir returns $CHIME_HOME/cache, where the command backend keeps
// on-disk copies of preloaded sounds
func GetCacheDir() string {
	return filepath.Join(GetChimeHome(), "cache")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
