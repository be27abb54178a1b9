package board

import (
	"image"
	"testing"
)

func TestMapperResolvesBoundsPerCall(t *testing.T) {
	origin := image.Pt(100, 50)
	m := Mapper{Bounds: func() image.Rectangle {
		return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(400, 300))}
	}}
	if got := m.Map(110, 60); got != image.Pt(10, 10) {
		t.Fatalf("mapped %v, want (10,10)", got)
	}
	// The canvas moves between events; the next call must see the new origin.
	origin = image.Pt(0, 0)
	if got := m.Map(110, 60); got != image.Pt(110, 60) {
		t.Fatalf("mapped %v after move, want (110,60)", got)
	}
}

func TestMapperMissingCanvasFallsBackToOrigin(t *testing.T) {
	var m Mapper
	if got := m.Map(321, 123); got != (image.Point{}) {
		t.Fatalf("mapped %v, want origin fallback", got)
	}
}

func TestMapperZoom(t *testing.T) {
	m := Mapper{
		Bounds: func() image.Rectangle { return image.Rect(10, 10, 410, 310) },
		Zoom:   func() float64 { return 2 },
	}
	if got := m.Map(210, 110); got != image.Pt(100, 50) {
		t.Fatalf("mapped %v, want (100,50)", got)
	}
}

func TestMapperZeroZoomTreatedAsOne(t *testing.T) {
	m := Mapper{
		Bounds: func() image.Rectangle { return image.Rect(0, 0, 100, 100) },
		Zoom:   func() float64 { return 0 },
	}
	if got := m.Map(42, 7); got != image.Pt(42, 7) {
		t.Fatalf("mapped %v, want (42,7)", got)
	}
}
