package board

import "image"

// Mapper converts host pointer coordinates into canvas-local points. The
// canvas geometry is looked up through Bounds on every call because the host
// may move or resize the canvas between events; nothing is cached here.
type Mapper struct {
	// Bounds returns the canvas rectangle in host coordinates. A nil Bounds
	// (canvas not mounted yet) maps everything to the origin.
	Bounds func() image.Rectangle
	// Zoom returns the host's scale factor. Nil means 1.
	Zoom func() float64
}

// Map resolves a host-space pointer position to a canvas-local point.
func (m Mapper) Map(x, y float64) image.Point {
	if m.Bounds == nil {
		return image.Point{}
	}
	r := m.Bounds()
	z := 1.0
	if m.Zoom != nil {
		if got := m.Zoom(); got > 0 {
			z = got
		}
	}
	return image.Pt(
		int((x-float64(r.Min.X))/z),
		int((y-float64(r.Min.Y))/z),
	)
}
