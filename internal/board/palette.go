package board

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// PaletteColor annotates a palette entry with its display name.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

var (
	paletteMu sync.RWMutex
	palette   = []PaletteColor{
		{"Black", color.RGBA{0, 0, 0, 255}},
		{"White", color.RGBA{255, 255, 255, 255}},
		{"Red", color.RGBA{255, 0, 0, 255}},
		{"Lime", color.RGBA{0, 255, 0, 255}},
		{"Blue", color.RGBA{0, 0, 255, 255}},
		{"Yellow", color.RGBA{255, 255, 0, 255}},
		{"Cyan", color.RGBA{0, 255, 255, 255}},
		{"Magenta", color.RGBA{255, 0, 255, 255}},
		{"Maroon", color.RGBA{128, 0, 0, 255}},
		{"Green", color.RGBA{0, 128, 0, 255}},
		{"Navy", color.RGBA{0, 0, 128, 255}},
		{"Olive", color.RGBA{128, 128, 0, 255}},
		{"Teal", color.RGBA{0, 128, 128, 255}},
		{"Purple", color.RGBA{128, 0, 128, 255}},
		{"Silver", color.RGBA{192, 192, 192, 255}},
		{"Gray", color.RGBA{128, 128, 128, 255}},
	}
)

// Palette returns a copy of the toolbar colors.
func Palette() []PaletteColor {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// EnsurePaletteColor makes sure col is present in the palette and returns its
// index. Config files use it to surface custom colors in the toolbar.
func EnsurePaletteColor(col color.RGBA, name string) int {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	for idx, entry := range palette {
		if entry.Color == col {
			return idx
		}
	}
	if name == "" {
		name = fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
	}
	palette = append(palette, PaletteColor{Name: name, Color: col})
	return len(palette) - 1
}

// ParseColor resolves a color spec: a palette name, an SVG 1.1 color name, or
// a #RGB[A] / #RRGGBB[AA] hex value.
func ParseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	for _, entry := range Palette() {
		if strings.EqualFold(entry.Name, spec) {
			return entry.Color, nil
		}
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(spec, "#"); ok {
		// Short forms expand each digit: #1af means #11aaff.
		switch len(hex) {
		case 3, 4:
			var expanded strings.Builder
			for _, d := range hex {
				expanded.WriteRune(d)
				expanded.WriteRune(d)
			}
			hex = expanded.String()
		}
		if len(hex) == 6 || len(hex) == 8 {
			parse := func(pair string) (uint8, error) {
				v, err := strconv.ParseUint(pair, 16, 8)
				return uint8(v), err
			}
			r, err1 := parse(hex[0:2])
			g, err2 := parse(hex[2:4])
			b, err3 := parse(hex[4:6])
			a := uint8(255)
			var err4 error
			if len(hex) == 8 {
				a, err4 = parse(hex[6:8])
			}
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				return color.RGBA{}, fmt.Errorf("invalid color %q", s)
			}
			return color.RGBA{r, g, b, a}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}
