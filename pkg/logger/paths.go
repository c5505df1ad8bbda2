/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"
)

const logFileName = "rhino-maintain.log"

// PlatformLogPaths returns fallback log paths in order of priority.
// The tool runs as root, so the system path is usually writable; the
// user-local and tmp paths cover development runs.
func PlatformLogPaths() []string {
	paths := []string{
		filepath.Join("/var/log/rhino-maintain", logFileName),
	}
	if state := stateHome(); state != "" {
		paths = append(paths, filepath.Join(state, "rhino-maintain", logFileName))
	}
	paths = append(paths,
		logFileName, // current working dir, ideal for devs
		filepath.Join(os.TempDir(), "rhino-maintain", logFileName),
	)
	return paths
}

// FindWritableLogPath probes the platform paths and returns the first one
// that can be opened for appending.
func FindWritableLogPath() (string, error) {
	for _, path := range PlatformLogPaths() {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o700); err != nil {
			continue
		}
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			continue
		}
		if err := file.Close(); err != nil {
			continue
		}
		return path, nil
	}
	return "", os.ErrPermission
}

func stateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}
	return ""
}
