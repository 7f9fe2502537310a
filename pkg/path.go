package pkg

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigFile is the base name of the template configuration file.
const ConfigFile = Name + ".conf"

// ConfigPath returns the default template path, $XDG_CONFIG_HOME/yaf.conf.
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, ConfigFile)
}

// ConfigDir returns the directory holding settings files,
// $XDG_CONFIG_HOME/yaf.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, Name)
}

// SettingsPaths returns the candidate settings files in the order they are
// consulted.
func SettingsPaths() []string {
	dir := ConfigDir()

	return []string{
		filepath.Join(dir, "settings.json"),
		filepath.Join(dir, "settings.yaml"),
		filepath.Join(dir, "settings.toml"),
	}
}

// CacheDir returns the directory for transient files, $XDG_CACHE_HOME/yaf.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, Name)
}
