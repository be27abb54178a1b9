package board

import (
	"image"
	"image/draw"
)

// Surface owns the two raster layers of the whiteboard: the persistent layer
// holding every committed stroke and the preview layer holding the single
// in-progress shape. Nothing outside the engine writes to either layer.
type Surface struct {
	persistent *image.RGBA
	preview    *image.RGBA
}

// NewSurface allocates both layers as transparent rasters of the given size.
func NewSurface(width, height int) *Surface {
	r := image.Rect(0, 0, width, height)
	return &Surface{
		persistent: image.NewRGBA(r),
		preview:    image.NewRGBA(r),
	}
}

// Persistent exposes the committed raster for export and compositing. The
// returned image reflects all committed strokes at any moment outside an
// active gesture.
func (s *Surface) Persistent() *image.RGBA {
	if s == nil {
		return nil
	}
	return s.persistent
}

// Preview exposes the in-progress raster so the host can composite it above
// the persistent layer while a gesture runs.
func (s *Surface) Preview() *image.RGBA {
	if s == nil {
		return nil
	}
	return s.preview
}

// Bounds returns the shared bounds of both layers.
func (s *Surface) Bounds() image.Rectangle {
	if s == nil {
		return image.Rectangle{}
	}
	return s.persistent.Bounds()
}

func clearRGBA(img *image.RGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0
	}
}

// ClearPreview wipes the preview layer. Called at the start of every shape
// gesture and after every commit so stale previews never leak between
// gestures.
func (s *Surface) ClearPreview() {
	if s == nil {
		return
	}
	clearRGBA(s.preview)
}

// ClearPersistent wipes the committed raster back to its initial transparent
// state. There is no undo; callers gate this behind an explicit confirmation.
func (s *Surface) ClearPersistent() {
	if s == nil {
		return
	}
	clearRGBA(s.persistent)
}

// CommitPreview merges the preview layer onto the persistent layer and clears
// the preview. Preview pixels overwrite persistent pixels wherever they are
// non-transparent.
func (s *Surface) CommitPreview() {
	if s == nil {
		return
	}
	draw.Draw(s.persistent, s.persistent.Bounds(), s.preview, s.preview.Bounds().Min, draw.Over)
	clearRGBA(s.preview)
}

// Snapshot returns a copy of the persistent layer for export or clipboard
// writes, decoupled from any later drawing.
func (s *Surface) Snapshot() *image.RGBA {
	if s == nil {
		return nil
	}
	out := image.NewRGBA(s.persistent.Bounds())
	copy(out.Pix, s.persistent.Pix)
	return out
}

// Composite flattens persistent and preview onto dst at the origin, with the
// preview on top. dst is typically the host window buffer.
func (s *Surface) Composite(dst draw.Image) {
	if s == nil || dst == nil {
		return
	}
	draw.Draw(dst, s.persistent.Bounds(), s.persistent, s.persistent.Bounds().Min, draw.Over)
	draw.Draw(dst, s.preview.Bounds(), s.preview, s.preview.Bounds().Min, draw.Over)
}
