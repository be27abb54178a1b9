package board

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *sfnt.Font
	faceCache   sync.Map // map[float64]font.Face
)

func faceForSize(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("parse font: %w", fontErr)
	}
	if size <= 0 {
		size = FontSizeFor(1)
	}
	if face, ok := faceCache.Load(size); ok {
		return face.(font.Face), nil
	}
	face, err := opentype.NewFace(regularFont, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	faceCache.Store(size, face)
	return face, nil
}

// drawText renders text with its top-left corner at (x, y), one line per
// newline, advancing by the face height.
func drawText(img *image.RGBA, x, y int, text string, st Style) error {
	face, err := faceForSize(FontSizeFor(st.Width))
	if err != nil {
		return err
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := ascent + metrics.Descent.Ceil()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(st.Color),
		Face: face,
	}
	for i, line := range strings.Split(text, "\n") {
		drawer.Dot = fixed.P(x, y+ascent+i*lineHeight)
		drawer.DrawString(line)
	}
	return nil
}

// TextEdit is the floating editable region the Text tool opens. It exists
// only between open and confirm/cancel; committed text is pixels on the
// persistent layer, not an editable object.
type TextEdit struct {
	Pos     image.Point
	Content string
}

// openText starts an edit session at p. A pending session is committed
// first, matching the at-most-one-overlay invariant.
func (e *Engine) openText(p image.Point) {
	e.ConfirmText()
	e.text = &TextEdit{Pos: p}
}

// TextEditing returns the open edit session, or nil.
func (e *Engine) TextEditing() *TextEdit {
	if e == nil {
		return nil
	}
	return e.text
}

// TextInput appends typed characters to the open edit session. It is a no-op
// when no session is open.
func (e *Engine) TextInput(s string) {
	if e == nil || e.text == nil {
		return
	}
	e.text.Content += s
}

// TextNewline inserts a literal newline (Shift+Enter) without committing.
func (e *Engine) TextNewline() {
	if e == nil || e.text == nil {
		return
	}
	e.text.Content += "\n"
}

// TextBackspace removes the last rune from the open edit session.
func (e *Engine) TextBackspace() {
	if e == nil || e.text == nil || e.text.Content == "" {
		return
	}
	runes := []rune(e.text.Content)
	e.text.Content = string(runes[:len(runes)-1])
}

// ConfirmText commits the open edit session to the persistent layer and
// closes it. Content that trims to nothing commits nothing. Focus loss
// behaves identically. A closed session is a no-op.
func (e *Engine) ConfirmText() {
	if e == nil || e.text == nil {
		return
	}
	t := e.text
	e.text = nil
	if strings.TrimSpace(t.Content) == "" {
		return
	}
	if e.surface == nil {
		return
	}
	if err := drawText(e.surface.Persistent(), t.Pos.X, t.Pos.Y, t.Content, e.style.Clamp()); err != nil {
		e.log.Warn("text commit", "err", err)
	}
}

// RenderOverlay paints the open edit session onto dst, with a trailing caret
// marker when caret is true. Hosts call this each frame; the overlay never
// touches the engine's own layers.
func (e *Engine) RenderOverlay(dst *image.RGBA, caret bool) {
	if e == nil || e.text == nil || dst == nil {
		return
	}
	content := e.text.Content
	if caret {
		content += "|"
	}
	if content == "" {
		return
	}
	if err := drawText(dst, e.text.Pos.X, e.text.Pos.Y, content, e.style.Clamp()); err != nil {
		e.log.Warn("text overlay", "err", err)
	}
}

// CancelText discards the open edit session without committing (Escape).
func (e *Engine) CancelText() {
	if e == nil {
		return
	}
	e.text = nil
}
