package board

import (
	"image"
	"image/color"
	"math"
)

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// drawRect outlines the rectangle spanned by two opposite corners. The
// corners may arrive in any drag order; canonicalization happens here so the
// geometry is independent of drag direction.
func drawRect(img *image.RGBA, a, b image.Point, col color.Color, thick int) {
	r := image.Rect(a.X, a.Y, b.X, b.Y) // Rect swaps min/max as needed
	drawLine(img, r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, col, thick)
	drawLine(img, r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, col, thick)
	drawLine(img, r.Max.X, r.Max.Y, r.Min.X, r.Max.Y, col, thick)
	drawLine(img, r.Min.X, r.Max.Y, r.Min.X, r.Min.Y, col, thick)
}

func drawCircleThin(img *image.RGBA, cx, cy, r int, col color.Color) {
	x := r
	y := 0
	err := 1 - r
	for x >= y {
		pts := [][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}}
		for _, p := range pts {
			px := cx + p[0]
			py := cy + p[1]
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

func drawCircle(img *image.RGBA, cx, cy, r int, col color.Color, thick int) {
	if thick <= 1 {
		drawCircleThin(img, cx, cy, r, col)
		return
	}
	start := -thick / 2
	for i := 0; i < thick; i++ {
		rr := r + start + i
		if rr >= 0 {
			drawCircleThin(img, cx, cy, rr, col)
		}
	}
}

// arrowheadCorners returns the two back corners of the head for a shaft
// ending at tip, using a 30 degree half-angle and the width-derived length.
func arrowheadCorners(from, tip image.Point, width int) (image.Point, image.Point) {
	angle := math.Atan2(float64(tip.Y-from.Y), float64(tip.X-from.X))
	size := float64(ArrowheadLength(width))
	a1 := angle + math.Pi/6
	a2 := angle - math.Pi/6
	p1 := image.Pt(tip.X-int(math.Cos(a1)*size), tip.Y-int(math.Sin(a1)*size))
	p2 := image.Pt(tip.X-int(math.Cos(a2)*size), tip.Y-int(math.Sin(a2)*size))
	return p1, p2
}

func drawArrow(img *image.RGBA, from, tip image.Point, col color.Color, thick int) {
	drawLine(img, from.X, from.Y, tip.X, tip.Y, col, thick)
	c1, c2 := arrowheadCorners(from, tip, thick)
	fillTriangle(img, tip, c1, c2, col)
	// Outline keeps the head crisp when the fill degenerates to a sliver.
	drawLine(img, tip.X, tip.Y, c1.X, c1.Y, col, thick)
	drawLine(img, tip.X, tip.Y, c2.X, c2.Y, col, thick)
}

// fillTriangle rasterizes a solid triangle with a scanline sweep.
func fillTriangle(img *image.RGBA, a, b, c image.Point, col color.Color) {
	minY := min3(a.Y, b.Y, c.Y)
	maxY := max3(a.Y, b.Y, c.Y)
	for y := minY; y <= maxY; y++ {
		var xs []int
		for _, e := range [][2]image.Point{{a, b}, {b, c}, {c, a}} {
			p0, p1 := e[0], e[1]
			if p0.Y == p1.Y {
				continue
			}
			if (y < p0.Y && y < p1.Y) || (y > p0.Y && y > p1.Y) {
				continue
			}
			t := float64(y-p0.Y) / float64(p1.Y-p0.Y)
			xs = append(xs, p0.X+int(t*float64(p1.X-p0.X)))
		}
		if len(xs) < 2 {
			continue
		}
		x0, x1 := xs[0], xs[1]
		for _, x := range xs[2:] {
			if x < x0 {
				x0 = x
			}
			if x > x1 {
				x1 = x
			}
		}
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			if image.Pt(x, y).In(img.Bounds()) {
				img.Set(x, y, col)
			}
		}
	}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func dist(a, b image.Point) int {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return int(math.Round(math.Hypot(dx, dy)))
}

// renderShape draws one instance of the shape for tool t between anchor and
// cur onto dst. Callers clear dst first; this is a redraw-from-scratch model,
// never an incremental one.
func renderShape(dst *image.RGBA, t Tool, anchor, cur image.Point, st Style, gen StrokeGenerator) {
	st = st.Clamp()
	if st.Sketchy && gen != nil {
		renderSketchy(dst, t, anchor, cur, st, gen)
		return
	}
	switch t {
	case ToolLine:
		drawLine(dst, anchor.X, anchor.Y, cur.X, cur.Y, st.Color, st.Width)
	case ToolRect:
		drawRect(dst, anchor, cur, st.Color, st.Width)
	case ToolCircle:
		drawCircle(dst, anchor.X, anchor.Y, dist(anchor, cur), st.Color, st.Width)
	case ToolArrow:
		drawArrow(dst, anchor, cur, st.Color, st.Width)
	}
}
