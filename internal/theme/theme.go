package theme

import (
	"image/color"
)

// Theme defines the colors used by the board window chrome.
type Theme struct {
	Name string

	Foreground color.RGBA // label and hint text
	Chrome     color.RGBA // title bar, toolbar and shortcut bar background

	ButtonBackground color.RGBA
	ButtonHover      color.RGBA
	ButtonActive     color.RGBA

	MessageBackground color.RGBA
	MessageBorder     color.RGBA

	// Backdrop behind the canvas when it does not fill the window.
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Light returns the default light theme.
func Light() *Theme {
	return &Theme{
		Name:              "Light",
		Foreground:        color.RGBA{0, 0, 0, 255},
		Chrome:            color.RGBA{220, 220, 220, 255},
		ButtonBackground:  color.RGBA{200, 200, 200, 255},
		ButtonHover:       color.RGBA{180, 180, 180, 255},
		ButtonActive:      color.RGBA{150, 150, 150, 255},
		MessageBackground: color.RGBA{255, 255, 255, 230},
		MessageBorder:     color.RGBA{0, 0, 0, 255},
		CheckerLight:      color.RGBA{220, 220, 220, 255},
		CheckerDark:       color.RGBA{192, 192, 192, 255},
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Name:              "Dark",
		Foreground:        color.RGBA{230, 230, 230, 255},
		Chrome:            color.RGBA{46, 46, 46, 255},
		ButtonBackground:  color.RGBA{64, 64, 64, 255},
		ButtonHover:       color.RGBA{84, 84, 84, 255},
		ButtonActive:      color.RGBA{110, 110, 110, 255},
		MessageBackground: color.RGBA{30, 30, 30, 230},
		MessageBorder:     color.RGBA{230, 230, 230, 255},
		CheckerLight:      color.RGBA{52, 52, 52, 255},
		CheckerDark:       color.RGBA{40, 40, 40, 255},
	}
}

// Default is the theme used when no name is configured.
func Default() *Theme {
	return Light()
}
