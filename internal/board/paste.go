package board

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// ErrNoImage reports a paste with no decodable image payload. Non-fatal; the
// host surfaces it as a "nothing to paste" message.
var ErrNoImage = errors.New("no image in pasted data")

// pasteMargin keeps pasted images clear of the canvas edges.
const pasteMargin = 20

// pastePlacement computes the destination rectangle for an incoming image.
// The corner comes from centering the image at its original size, clamped to
// non-negative; only then are the dimensions downscaled preserving aspect
// ratio to fit within the margin-inset canvas, width constraint first.
func pastePlacement(canvas image.Rectangle, img image.Rectangle) image.Rectangle {
	cw := canvas.Dx()
	ch := canvas.Dy()
	iw := img.Dx()
	ih := img.Dy()
	x := (cw - iw) / 2
	y := (ch - ih) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	maxW := cw - pasteMargin
	maxH := ch - pasteMargin
	if maxW > 0 && iw > maxW {
		ih = ih * maxW / iw
		iw = maxW
	}
	if maxH > 0 && ih > maxH {
		iw = iw * maxH / ih
		ih = maxH
	}
	return image.Rect(x, y, x+iw, y+ih)
}

// PasteImage blits img onto the persistent layer, scaled to fit and centered.
// It returns the rectangle the image landed in.
func (e *Engine) PasteImage(img image.Image) (image.Rectangle, error) {
	if e == nil || e.surface == nil {
		return image.Rectangle{}, errors.New("no surface mounted")
	}
	if img == nil || img.Bounds().Empty() {
		return image.Rectangle{}, ErrNoImage
	}
	dst := e.surface.Persistent()
	target := pastePlacement(dst.Bounds(), img.Bounds())
	if target.Dx() == img.Bounds().Dx() && target.Dy() == img.Bounds().Dy() {
		draw.Draw(dst, target, img, img.Bounds().Min, draw.Over)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, target, img, img.Bounds(), draw.Over, nil)
	}
	return target, nil
}

// PasteData decodes raw clipboard bytes and blits the result. Data that is
// not a decodable image yields ErrNoImage.
func (e *Engine) PasteData(data []byte) (image.Rectangle, error) {
	if len(data) == 0 {
		return image.Rectangle{}, ErrNoImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("%w: %v", ErrNoImage, err)
	}
	return e.PasteImage(img)
}

// PasteAsync decodes on its own goroutine and hands the blit back through
// apply, which the host must run on its event loop. Overlapping pastes are
// applied in completion order with no mutual exclusion; on overlapping
// regions the last blit wins. done receives the outcome after the blit (or
// decode failure) and may be nil.
func (e *Engine) PasteAsync(read func() ([]byte, error), apply func(func()), done func(image.Rectangle, error)) {
	go func() {
		data, err := read()
		if err != nil {
			apply(func() {
				e.log.Debug("paste read", "err", err)
				if done != nil {
					done(image.Rectangle{}, ErrNoImage)
				}
			})
			return
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		apply(func() {
			if err != nil {
				// A bad decode degrades to "no visual change".
				e.log.Debug("paste decode", "err", err)
				if done != nil {
					done(image.Rectangle{}, ErrNoImage)
				}
				return
			}
			r, perr := e.PasteImage(img)
			if done != nil {
				done(r, perr)
			}
		})
	}()
}
