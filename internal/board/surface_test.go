package board

import (
	"image"
	"image/color"
	"testing"
)

func hasInk(img *image.RGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return true
		}
	}
	return false
}

func samePixels(a, b *image.RGBA) bool {
	if !a.Bounds().Eq(b.Bounds()) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func TestClearPersistentRestoresBlank(t *testing.T) {
	s := NewSurface(100, 100)
	blank := image.NewRGBA(s.Bounds())
	drawLine(s.Persistent(), 10, 10, 80, 80, color.RGBA{R: 255, A: 255}, 4)
	if !hasInk(s.Persistent()) {
		t.Fatal("expected ink before clear")
	}
	s.ClearPersistent()
	if !samePixels(s.Persistent(), blank) {
		t.Fatal("clear must restore the initial blank state")
	}
}

func TestCommitPreviewMergesAndClears(t *testing.T) {
	s := NewSurface(60, 60)
	drawLine(s.Preview(), 5, 5, 50, 5, color.RGBA{B: 255, A: 255}, 2)
	s.CommitPreview()
	if !hasInk(s.Persistent()) {
		t.Fatal("committed preview must appear on the persistent layer")
	}
	if hasInk(s.Preview()) {
		t.Fatal("preview must be blank after commit")
	}
}

func TestCommitPreviewOverwritesWhereOpaque(t *testing.T) {
	s := NewSurface(20, 20)
	s.Persistent().SetRGBA(10, 10, color.RGBA{R: 255, A: 255})
	s.Preview().SetRGBA(10, 10, color.RGBA{B: 255, A: 255})
	s.CommitPreview()
	got := s.Persistent().RGBAAt(10, 10)
	if got.B != 255 || got.R != 0 {
		t.Fatalf("preview pixel should win at overlap, got %+v", got)
	}
	// Transparent preview pixels leave persistent content alone.
	s.Persistent().SetRGBA(3, 3, color.RGBA{G: 255, A: 255})
	s.CommitPreview()
	if s.Persistent().RGBAAt(3, 3).G != 255 {
		t.Fatal("transparent preview pixels must not erase persistent content")
	}
}

func TestSnapshotDetached(t *testing.T) {
	s := NewSurface(30, 30)
	drawLine(s.Persistent(), 0, 0, 29, 29, color.RGBA{A: 255}, 1)
	snap := s.Snapshot()
	s.ClearPersistent()
	if !hasInk(snap) {
		t.Fatal("snapshot must be decoupled from later clears")
	}
}

func TestNilSurfaceNoops(t *testing.T) {
	var s *Surface
	s.ClearPreview()
	s.ClearPersistent()
	s.CommitPreview()
	if s.Snapshot() != nil {
		t.Fatal("nil surface snapshot should be nil")
	}
	if !s.Bounds().Empty() {
		t.Fatal("nil surface bounds should be empty")
	}
}
