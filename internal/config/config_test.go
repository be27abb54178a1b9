package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
tool = "rect"
save_dir = "/tmp/boards"

[stroke]
color = "#336699"
width = 5

[sketch]
enabled = true
roughness = 2.5

[notify]
save = true
copy = false
paste = true
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Tool != "rect" {
		t.Errorf("Expected tool 'rect', got %q", cfg.Tool)
	}
	if cfg.SaveDir != "/tmp/boards" {
		t.Errorf("Expected save_dir '/tmp/boards', got %q", cfg.SaveDir)
	}
	if cfg.Stroke.Color != "#336699" || cfg.Stroke.Width != 5 {
		t.Errorf("Unexpected stroke: %+v", cfg.Stroke)
	}
	if !cfg.Sketch.Enabled || cfg.Sketch.Roughness != 2.5 {
		t.Errorf("Unexpected sketch: %+v", cfg.Sketch)
	}
	if !cfg.Notify.Save || cfg.Notify.Copy || !cfg.Notify.Paste {
		t.Errorf("Unexpected notify: %+v", cfg.Notify)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`tool = "circle"`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Tool != "circle" {
		t.Errorf("Expected tool 'circle', got %q", cfg.Tool)
	}
	if cfg.Stroke.Width != 3 || cfg.Stroke.Color != "black" {
		t.Errorf("Defaults not preserved: %+v", cfg.Stroke)
	}
	if cfg.Canvas.Width != 1200 || cfg.Canvas.Height != 800 {
		t.Errorf("Canvas defaults not preserved: %+v", cfg.Canvas)
	}
	if cfg.Theme != "light" {
		t.Errorf("Expected theme 'light', got %q", cfg.Theme)
	}
}

func TestCircular(t *testing.T) {
	input := `tool = "arrow"
save_dir = "/home/user/boards"

[stroke]
color = "crimson"
width = 7

[sketch]
enabled = true
roughness = 3.0

[canvas]
width = 640
height = 480

[notify]
save = true
copy = true
paste = false
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if *cfg != *cfg2 {
		t.Errorf("Round trip mismatch:\n%+v\nvs\n%+v", cfg, cfg2)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(override, []byte(`tool = "line"`), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader("1.0.0", override)
	if got := l.GetConfigPath(); got != override {
		t.Errorf("Expected override path %q, got %q", override, got)
	}

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Tool != "line" {
		t.Errorf("Expected tool 'line', got %q", cfg.Tool)
	}
}

func TestLoaderMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	l := NewLoader("1.0.0", "")
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Tool != "pen" || cfg.Stroke.Width != 3 {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}
