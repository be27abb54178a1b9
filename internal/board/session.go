// Package board implements the whiteboard drawing engine: a two-layer raster
// surface, a pointer-gesture state machine, precise and hand-drawn shape
// renderers, a text overlay, and a clipboard image importer. The engine is
// single-goroutine by contract; the host delivers pointer, key, and paste
// events in order and no layer has any other writer.
package board

import (
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
)

// Engine drives the whiteboard. One continuous pointer-down to pointer-up
// interaction is a gesture; shape tools draw each interim frame onto the
// preview layer and commit on release, while the pen writes straight onto the
// persistent layer segment by segment.
type Engine struct {
	surface *Surface
	gen     StrokeGenerator
	log     *log.Logger

	tool  Tool
	style Style

	// Gesture state. active and anchor exist only between pointer-down and
	// the terminating pointer event.
	active bool
	anchor image.Point
	last   image.Point

	text *TextEdit
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithSurface supplies the raster layers. An engine without a surface treats
// every operation as a no-op, which covers input arriving before the canvas
// is mounted.
func WithSurface(s *Surface) Option { return func(e *Engine) { e.surface = s } }

// WithSize allocates a fresh surface of the given dimensions.
func WithSize(width, height int) Option {
	return func(e *Engine) { e.surface = NewSurface(width, height) }
}

// WithStrokeGenerator replaces the hand-drawn stroke generator.
func WithStrokeGenerator(g StrokeGenerator) Option { return func(e *Engine) { e.gen = g } }

// WithTool sets the initial tool.
func WithTool(t Tool) Option { return func(e *Engine) { e.tool = t } }

// WithStyle sets the initial stroke style.
func WithStyle(st Style) Option { return func(e *Engine) { e.style = st.Clamp() } }

// WithLogger routes the engine's rare warnings to the given logger.
func WithLogger(l *log.Logger) Option { return func(e *Engine) { e.log = l } }

// New creates an Engine. Defaults: pen tool, black 3px stroke, JitterPen
// generator, discarded log output.
func New(opts ...Option) *Engine {
	e := &Engine{
		gen:   JitterPen{},
		tool:  ToolPen,
		style: Style{Color: color.RGBA{A: 255}, Width: 3},
		log:   log.New(io.Discard),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Surface returns the engine's raster layers, or nil before one is mounted.
func (e *Engine) Surface() *Surface { return e.surface }

// Tool returns the active tool.
func (e *Engine) Tool() Tool { return e.tool }

// Style returns the current stroke style.
func (e *Engine) Style() Style { return e.style }

// SetTool switches the active tool. Committed content is never affected;
// an open text overlay is committed first so at most one of gesture and
// overlay exists.
func (e *Engine) SetTool(t Tool) {
	if e.text != nil && t != e.tool {
		e.ConfirmText()
	}
	e.tool = t
}

// SetStyle replaces the stroke style. It takes effect on the next stroke or
// segment only.
func (e *Engine) SetStyle(st Style) { e.style = st.Clamp() }

// SetColor replaces only the stroke color.
func (e *Engine) SetColor(c color.RGBA) {
	e.style.Color = c
}

// SetWidth replaces only the stroke width.
func (e *Engine) SetWidth(w int) {
	e.style.Width = w
	e.style = e.style.Clamp()
}

// SetSketchy toggles hand-drawn rendering and its roughness. Pen and text
// ignore the setting.
func (e *Engine) SetSketchy(enabled bool, roughness float64) {
	e.style.Sketchy = enabled
	e.style.Roughness = roughness
	e.style = e.style.Clamp()
}

// Drawing reports whether a gesture is in progress.
func (e *Engine) Drawing() bool { return e.active }

// PointerDown begins a gesture at the canvas-local point p. For shape tools
// the preview layer is cleared first; for the text tool an edit overlay opens
// (committing any pending one); the move tool is inert.
func (e *Engine) PointerDown(p image.Point) {
	if e.surface == nil {
		return
	}
	switch e.tool {
	case ToolMove:
		return
	case ToolText:
		e.openText(p)
		return
	}
	if e.text != nil {
		// Starting a draw gesture resolves a pending text overlay.
		e.ConfirmText()
	}
	if shapeTool(e.tool) {
		e.surface.ClearPreview()
	}
	e.active = true
	e.anchor = p
	e.last = p
}

// PointerMove extends the gesture to p. Pen appends a stroked segment to the
// persistent layer immediately; shape tools redraw the whole preview. A move
// without a prior pointer-down in the same gesture is ignored.
func (e *Engine) PointerMove(p image.Point) {
	if e.surface == nil || !e.active {
		return
	}
	switch e.tool {
	case ToolPen:
		drawLine(e.surface.Persistent(), e.last.X, e.last.Y, p.X, p.Y, e.style.Color, e.style.Clamp().Width)
		e.last = p
	case ToolLine, ToolRect, ToolCircle, ToolArrow:
		e.surface.ClearPreview()
		renderShape(e.surface.Preview(), e.tool, e.anchor, p, e.style, e.gen)
		e.last = p
	}
}

// PointerUp ends the gesture at p and commits. Shape tools render the final
// frame to the preview and merge it into the persistent layer; the pen's
// segments are already persistent. Pointer-leave and pointer-cancel are
// delivered here too: both are implicit commits, not discards.
func (e *Engine) PointerUp(p image.Point) {
	if e.surface == nil || !e.active {
		return
	}
	e.active = false
	switch e.tool {
	case ToolPen:
		drawLine(e.surface.Persistent(), e.last.X, e.last.Y, p.X, p.Y, e.style.Color, e.style.Clamp().Width)
	case ToolLine, ToolRect, ToolCircle, ToolArrow:
		e.surface.ClearPreview()
		renderShape(e.surface.Preview(), e.tool, e.anchor, p, e.style, e.gen)
		e.surface.CommitPreview()
	}
	e.anchor = image.Point{}
	e.last = image.Point{}
}

// Clear wipes the persistent layer. Destructive and not undoable; hosts must
// confirm with the user before calling.
func (e *Engine) Clear() {
	if e.surface == nil {
		return
	}
	e.surface.ClearPersistent()
}

// DrawShape renders one committed shape directly, bypassing the gesture
// machinery. It backs the headless CLI path.
func (e *Engine) DrawShape(t Tool, from, to image.Point) {
	if e.surface == nil || !shapeTool(t) {
		return
	}
	renderShape(e.surface.Persistent(), t, from, to, e.style, e.gen)
}

// DrawText rasterizes text with its top-left corner at p using the current
// style, bypassing the overlay. It backs the headless CLI path.
func (e *Engine) DrawText(p image.Point, text string) error {
	if e.surface == nil {
		return nil
	}
	return drawText(e.surface.Persistent(), p.X, p.Y, text, e.style.Clamp())
}
