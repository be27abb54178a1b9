package board

import (
	"fmt"
	"image/color"
	"strings"
)

// Tool selects how pointer gestures are interpreted by the engine.
type Tool int

const (
	// ToolMove is a placeholder; pointer gestures are ignored while it is
	// active. It exists so toolbars can offer the slot without the engine
	// growing selection semantics.
	ToolMove Tool = iota
	ToolPen
	ToolLine
	ToolRect
	ToolCircle
	ToolArrow
	ToolText
)

// String returns the lowercase tool name used by the CLI and config file.
func (t Tool) String() string {
	switch t {
	case ToolMove:
		return "move"
	case ToolPen:
		return "pen"
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	case ToolCircle:
		return "circle"
	case ToolArrow:
		return "arrow"
	case ToolText:
		return "text"
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// ParseTool resolves a tool name as written in config files or CLI flags.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "move":
		return ToolMove, nil
	case "pen", "draw":
		return ToolPen, nil
	case "line":
		return ToolLine, nil
	case "rect", "rectangle":
		return ToolRect, nil
	case "circle":
		return ToolCircle, nil
	case "arrow":
		return ToolArrow, nil
	case "text":
		return ToolText, nil
	}
	return ToolMove, fmt.Errorf("unknown tool %q", s)
}

// shapeTool reports whether t draws through the preview layer. Pen draws
// straight onto the persistent layer and text goes through the overlay.
func shapeTool(t Tool) bool {
	switch t {
	case ToolLine, ToolRect, ToolCircle, ToolArrow:
		return true
	}
	return false
}

// MaxRoughness bounds the sketch jitter scale accepted by Style.
const MaxRoughness = 3.0

// Style carries the stroke parameters for a single draw operation. Values are
// read at stroke time; changing them never restyles committed pixels.
type Style struct {
	Color     color.RGBA
	Width     int
	Sketchy   bool
	Roughness float64
}

// Clamp returns a copy of s with width and roughness forced into range.
func (s Style) Clamp() Style {
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Roughness < 0 {
		s.Roughness = 0
	}
	if s.Roughness > MaxRoughness {
		s.Roughness = MaxRoughness
	}
	return s
}

// ArrowheadLength returns the head size in pixels for the given stroke width.
func ArrowheadLength(width int) int {
	n := 5 * width
	if n > 20 {
		n = 20
	}
	return n
}

// FontSizeFor returns the text overlay point size for the given stroke width.
func FontSizeFor(width int) float64 {
	sz := 3 * width
	if sz < 14 {
		sz = 14
	}
	return float64(sz)
}
