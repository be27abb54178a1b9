package config

import (
	"strings"

	"github.com/BurntSushi/toml"
)

// Stroke holds the default stroke settings applied at startup.
type Stroke struct {
	Color string `toml:"color"`
	Width int    `toml:"width"`
}

// Sketch holds the hand-drawn rendering settings.
type Sketch struct {
	Enabled   bool    `toml:"enabled"`
	Roughness float64 `toml:"roughness"`
}

// Canvas holds the board dimensions used when no size flags are given.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Notify holds notification settings.
type Notify struct {
	Save  bool `toml:"save"`
	Copy  bool `toml:"copy"`
	Paste bool `toml:"paste"`
}

// Config holds the application configuration.
type Config struct {
	Tool    string `toml:"tool"`
	Theme   string `toml:"theme"`
	SaveDir string `toml:"save_dir"`
	Stroke  Stroke `toml:"stroke"`
	Sketch  Sketch `toml:"sketch"`
	Canvas  Canvas `toml:"canvas"`
	Notify  Notify `toml:"notify"`
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Tool:   "pen",
		Theme:  "light",
		Stroke: Stroke{Color: "black", Width: 3},
		Sketch: Sketch{Enabled: false, Roughness: 1.5},
		Canvas: Canvas{Width: 1200, Height: 800},
		Notify: Notify{Save: false, Copy: false, Paste: false},
	}
}

// String implements fmt.Stringer and returns the configuration in TOML format.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return ""
	}
	return sb.String()
}
