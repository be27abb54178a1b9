package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestParseOverridesDefaults(t *testing.T) {
	input := `Name: Midnight
// comment lines are skipped
Chrome: #101820
ButtonActive: #3070F0A0
Unknown: #FFFFFF
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Name != "Midnight" {
		t.Fatalf("expected name Midnight, got %q", th.Name)
	}
	if want := (color.RGBA{16, 24, 32, 255}); th.Chrome != want {
		t.Fatalf("expected chrome %v, got %v", want, th.Chrome)
	}
	if want := (color.RGBA{48, 112, 240, 160}); th.ButtonActive != want {
		t.Fatalf("expected button active %v, got %v", want, th.ButtonActive)
	}
	if th.Foreground != Default().Foreground {
		t.Fatalf("expected untouched fields to keep defaults")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Chrome: red")); err == nil {
		t.Fatalf("expected error for non-hex color")
	}
	if _, err := Parse(strings.NewReader("Chrome: #12")); err == nil {
		t.Fatalf("expected error for short hex")
	}
}

func TestLoaderBuiltins(t *testing.T) {
	l := &Loader{}
	for _, name := range []string{"", "light", "Dark"} {
		if _, err := l.Load(name); err != nil {
			t.Fatalf("expected builtin %q to load, got %v", name, err)
		}
	}
	if _, err := l.Load("nope"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestLoaderConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solar.theme")
	if err := writeFile(path, "Chrome: #FDF6E3\n"); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	l := &Loader{ConfigDir: dir}
	th, err := l.Load("solar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (color.RGBA{253, 246, 227, 255}); th.Chrome != want {
		t.Fatalf("expected chrome %v, got %v", want, th.Chrome)
	}
}
