package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader resolves theme names against the built-in themes and the theme
// directories on disk.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader with the standard search paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "scrawl", "themes"),
		SystemDir: "/usr/share/scrawl/themes",
	}
}

// Load resolves name to a theme. Resolution order:
// 1. Built-in theme names (light, dark).
// 2. An existing file path.
// 3. ConfigDir, then SystemDir, appending .theme when missing.
// An empty name yields the default theme.
func (l *Loader) Load(name string) (*Theme, error) {
	switch strings.ToLower(name) {
	case "":
		return Default(), nil
	case "light":
		return Light(), nil
	case "dark":
		return Dark(), nil
	}

	if _, err := os.Stat(name); err == nil {
		return l.loadFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}

	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return l.loadFile(path)
		}
	}

	return nil, fmt.Errorf("theme %q not found", name)
}

func (l *Loader) loadFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
