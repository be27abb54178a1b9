package board

import (
	"hash/fnv"
	"image"
	"math"
	"math/rand"
)

// ShapeKind names the geometry handed to a StrokeGenerator.
type ShapeKind int

const (
	KindLine ShapeKind = iota
	KindRect
	KindCircle
	KindArrowShaft
	KindArrowHead
)

// SubStroke is one polyline of a hand-drawn rendering. Fill marks closed
// outlines that should be flooded solid (arrowheads).
type SubStroke struct {
	Points []image.Point
	Closed bool
	Fill   bool
}

// StrokeGenerator turns exact shape geometry into the sub-strokes of a
// hand-drawn rendering. Implementations must honor the roughness contract:
// roughness 0 keeps the exact endpoints, 3 is maximally irregular.
type StrokeGenerator interface {
	Generate(kind ShapeKind, pts []image.Point, st Style) []SubStroke
}

// JitterPen is the default StrokeGenerator. It synthesizes two slightly
// offset midpoint-displaced passes per edge, seeded from the geometry and
// style so a redraw of the same gesture is stable frame to frame.
type JitterPen struct{}

const sketchPasses = 2

func sketchSeed(kind ShapeKind, pts []image.Point, st Style) int64 {
	h := fnv.New64a()
	buf := []byte{byte(kind), byte(st.Width), st.Color.R, st.Color.G, st.Color.B, st.Color.A, byte(st.Roughness * 64)}
	for _, p := range pts {
		buf = append(buf,
			byte(p.X), byte(p.X>>8), byte(p.X>>16), byte(p.X>>24),
			byte(p.Y), byte(p.Y>>8), byte(p.Y>>16), byte(p.Y>>24))
	}
	h.Write(buf)
	return int64(h.Sum64())
}

// amplitude converts roughness and stroke width into a pixel displacement
// bound. Zero roughness yields zero displacement.
func amplitude(st Style) float64 {
	return st.Roughness * (1 + float64(st.Width)/4)
}

// jitterSegment returns one displaced polyline from a to b. Endpoints stay
// fixed; interior points are displaced perpendicular to the segment.
func jitterSegment(rng *rand.Rand, a, b image.Point, amp float64) []image.Point {
	length := math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
	steps := int(length / 12)
	if steps < 2 {
		steps = 2
	}
	if steps > 24 {
		steps = 24
	}
	// Unit normal of the segment.
	nx, ny := 0.0, 0.0
	if length > 0 {
		nx = -float64(b.Y-a.Y) / length
		ny = float64(b.X-a.X) / length
	}
	out := make([]image.Point, 0, steps+1)
	out = append(out, a)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		// Taper displacement toward the endpoints.
		scale := amp * math.Sin(t*math.Pi)
		d := (rng.Float64()*2 - 1) * scale
		x := float64(a.X) + t*float64(b.X-a.X) + d*nx
		y := float64(a.Y) + t*float64(b.Y-a.Y) + d*ny
		out = append(out, image.Pt(int(math.Round(x)), int(math.Round(y))))
	}
	out = append(out, b)
	return out
}

func (JitterPen) edge(rng *rand.Rand, a, b image.Point, st Style) []SubStroke {
	amp := amplitude(st)
	strokes := make([]SubStroke, 0, sketchPasses)
	for pass := 0; pass < sketchPasses; pass++ {
		strokes = append(strokes, SubStroke{Points: jitterSegment(rng, a, b, amp)})
	}
	return strokes
}

// Generate implements StrokeGenerator.
func (g JitterPen) Generate(kind ShapeKind, pts []image.Point, st Style) []SubStroke {
	st = st.Clamp()
	rng := rand.New(rand.NewSource(sketchSeed(kind, pts, st)))
	switch kind {
	case KindLine, KindArrowShaft:
		if len(pts) < 2 {
			return nil
		}
		return g.edge(rng, pts[0], pts[1], st)
	case KindRect:
		if len(pts) < 2 {
			return nil
		}
		r := image.Rect(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		corners := []image.Point{
			r.Min,
			image.Pt(r.Max.X, r.Min.Y),
			r.Max,
			image.Pt(r.Min.X, r.Max.Y),
		}
		var out []SubStroke
		for i := range corners {
			out = append(out, g.edge(rng, corners[i], corners[(i+1)%4], st)...)
		}
		return out
	case KindCircle:
		if len(pts) < 2 {
			return nil
		}
		c := pts[0]
		radius := float64(dist(pts[0], pts[1]))
		if radius < 1 {
			radius = 1
		}
		amp := amplitude(st)
		steps := int(2 * math.Pi * radius / 10)
		if steps < 12 {
			steps = 12
		}
		if steps > 96 {
			steps = 96
		}
		var out []SubStroke
		for pass := 0; pass < sketchPasses; pass++ {
			ring := make([]image.Point, 0, steps+1)
			// A small phase offset keeps the passes from overlapping exactly.
			phase := rng.Float64() * 2 * math.Pi
			for i := 0; i <= steps; i++ {
				a := phase + 2*math.Pi*float64(i)/float64(steps)
				rr := radius + (rng.Float64()*2-1)*amp
				ring = append(ring, image.Pt(
					c.X+int(math.Round(math.Cos(a)*rr)),
					c.Y+int(math.Round(math.Sin(a)*rr))))
			}
			out = append(out, SubStroke{Points: ring, Closed: true})
		}
		return out
	case KindArrowHead:
		if len(pts) < 2 {
			return nil
		}
		tip := pts[1]
		c1, c2 := arrowheadCorners(pts[0], tip, st.Width)
		amp := amplitude(st) / 2
		wobble := func(p image.Point) image.Point {
			return image.Pt(
				p.X+int(math.Round((rng.Float64()*2-1)*amp)),
				p.Y+int(math.Round((rng.Float64()*2-1)*amp)))
		}
		// Tip stays exact; only the back corners wobble.
		return []SubStroke{{
			Points: []image.Point{tip, wobble(c1), wobble(c2), tip},
			Closed: true,
			Fill:   true,
		}}
	}
	return nil
}

func strokePolyline(dst *image.RGBA, pts []image.Point, st Style) {
	for i := 1; i < len(pts); i++ {
		drawLine(dst, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, st.Color, st.Width)
	}
}

// renderSketchy draws one hand-drawn shape instance onto dst using gen.
func renderSketchy(dst *image.RGBA, t Tool, anchor, cur image.Point, st Style, gen StrokeGenerator) {
	pts := []image.Point{anchor, cur}
	var strokes []SubStroke
	switch t {
	case ToolLine:
		strokes = gen.Generate(KindLine, pts, st)
	case ToolRect:
		strokes = gen.Generate(KindRect, pts, st)
	case ToolCircle:
		strokes = gen.Generate(KindCircle, pts, st)
	case ToolArrow:
		strokes = gen.Generate(KindArrowShaft, pts, st)
		strokes = append(strokes, gen.Generate(KindArrowHead, pts, st)...)
	default:
		return
	}
	for _, ss := range strokes {
		if ss.Fill && len(ss.Points) >= 3 {
			fillTriangle(dst, ss.Points[0], ss.Points[1], ss.Points[2], st.Color)
		}
		strokePolyline(dst, ss.Points, st)
	}
}
