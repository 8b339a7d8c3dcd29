package save

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDir returns the OS-appropriate default data directory for
// hackingos.
//
//   - macOS:   ~/Library/Application Support/hackingos
//   - Linux:   $XDG_DATA_HOME/hackingos (fallback ~/.local/share/hackingos)
//   - Windows: %LOCALAPPDATA%\hackingos (fallback %APPDATA%\hackingos)
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "hackingos")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "hackingos")
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, "hackingos")
		}
		return filepath.Join(home, "hackingos")
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, "hackingos")
		}
		return filepath.Join(home, ".local", "share", "hackingos")
	}
}
