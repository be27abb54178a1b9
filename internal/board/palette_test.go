package board

import (
	"image/color"
	"testing"
)

func TestParseColorPaletteName(t *testing.T) {
	c, err := ParseColor("Teal")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (color.RGBA{0, 128, 128, 255}) {
		t.Fatalf("got %+v", c)
	}
}

func TestParseColorSVGName(t *testing.T) {
	c, err := ParseColor("rebeccapurple")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.A != 255 || c == (color.RGBA{}) {
		t.Fatalf("got %+v", c)
	}
}

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#1E90FF")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (color.RGBA{0x1E, 0x90, 0xFF, 255}) {
		t.Fatalf("got %+v", c)
	}
	c, err = ParseColor("#10203040")
	if err != nil {
		t.Fatalf("parse with alpha: %v", err)
	}
	if c.A != 0x40 {
		t.Fatalf("alpha = %d, want 0x40", c.A)
	}
}

func TestParseColorShortHex(t *testing.T) {
	c, err := ParseColor("#1af")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (color.RGBA{0x11, 0xAA, 0xFF, 255}) {
		t.Fatalf("got %+v", c)
	}
	c, err = ParseColor("#f008")
	if err != nil {
		t.Fatalf("parse with alpha: %v", err)
	}
	if c != (color.RGBA{0xFF, 0x00, 0x00, 0x88}) {
		t.Fatalf("got %+v", c)
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, spec := range []string{"", "#12", "#GGGGGG", "#ggg", "not-a-color"} {
		if _, err := ParseColor(spec); err == nil {
			t.Fatalf("expected error for %q", spec)
		}
	}
}

func TestEnsurePaletteColorIdempotent(t *testing.T) {
	col := color.RGBA{11, 22, 33, 255}
	first := EnsurePaletteColor(col, "Custom")
	second := EnsurePaletteColor(col, "Custom")
	if first != second {
		t.Fatalf("indices differ: %d vs %d", first, second)
	}
}

func TestParseToolRoundTrip(t *testing.T) {
	for _, tool := range []Tool{ToolMove, ToolPen, ToolLine, ToolRect, ToolCircle, ToolArrow, ToolText} {
		got, err := ParseTool(tool.String())
		if err != nil {
			t.Fatalf("%v: %v", tool, err)
		}
		if got != tool {
			t.Fatalf("round trip %v -> %v", tool, got)
		}
	}
	if _, err := ParseTool("lasso"); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestStyleClamp(t *testing.T) {
	st := Style{Width: 0, Roughness: 9}.Clamp()
	if st.Width != 1 {
		t.Fatalf("width = %d, want 1", st.Width)
	}
	if st.Roughness != MaxRoughness {
		t.Fatalf("roughness = %v, want %v", st.Roughness, MaxRoughness)
	}
}
