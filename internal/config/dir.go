// Package config resolves where xmlifyme reads input and writes output.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the xmlifyme configuration directory.
//
// Resolution:
//   - $XMLIFYME_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/xmlifyme if set (respects XDG on any platform)
//   - %AppData%/xmlifyme on Windows
//   - ~/.config/xmlifyme on macOS and Linux
func Dir() string {
	return dirFrom(os.Getenv)
}

func dirFrom(getenv func(string) string) string {
	// Explicit override
	if dir := getenv("XMLIFYME_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	// macOS and Linux: ~/.config/xmlifyme
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved. Default input and output paths hang off it.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
