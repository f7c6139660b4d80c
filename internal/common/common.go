package common

import (
	"os"
	"path/filepath"
)

const (
	socketEnv         = "GOXVIET_SOCKET"
	configEnv         = "GOXVIET_CONFIG"
	DefaultConfigName = "goxviet.ini"
)

// DefaultSocketPath returns the unix socket the goxviet session serves
// line conversions on.
func DefaultSocketPath() string {
	if env := os.Getenv(socketEnv); env != "" {
		return env
	}
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "goxviet.sock")
	}
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return filepath.Join(stateDir, "goxviet", "goxviet.sock")
	}
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return filepath.Join(configDir, "goxviet", "goxviet.sock")
	}
	return filepath.Join(os.TempDir(), "goxviet.sock")
}

// EnsureSocketDir ensures that the directory containing the unix socket exists.
func EnsureSocketDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" || dir == string(filepath.Separator) {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// DefaultConfigPath prefers $GOXVIET_CONFIG, then ./goxviet.ini, then the
// user config directory. The returned file may not exist.
func DefaultConfigPath() string {
	if env := os.Getenv(configEnv); env != "" {
		return env
	}
	if _, err := os.Stat(DefaultConfigName); err == nil {
		return DefaultConfigName
	}
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return filepath.Join(configDir, "goxviet", DefaultConfigName)
	}
	return DefaultConfigName
}
