package export

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func solidBoard(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func TestFramePadsImage(t *testing.T) {
	board := solidBoard(40, 30, color.RGBA{255, 255, 255, 255})
	out := Frame(board, FrameOptions{Margin: 10})
	if got, want := out.Bounds().Dx(), 60; got != want {
		t.Fatalf("expected width %d, got %d", want, got)
	}
	if got, want := out.Bounds().Dy(), 50; got != want {
		t.Fatalf("expected height %d, got %d", want, got)
	}
	if got := out.RGBAAt(10, 10); got != board.RGBAAt(0, 0) {
		t.Fatalf("expected board pixel at margin origin, got %v", got)
	}
}

func TestFrameDrawsShadow(t *testing.T) {
	board := solidBoard(40, 30, color.RGBA{255, 255, 255, 255})
	out := Frame(board, DefaultFrameOptions())
	m := DefaultFrameOptions().Margin
	// Just past the bottom-right corner, inside the shadow offset.
	p := out.RGBAAt(m+40+3, m+30+3)
	if p.A == 0 {
		t.Fatalf("expected shadow alpha below the board, got %v", p)
	}
	if p.R != 0 || p.G != 0 || p.B != 0 {
		t.Fatalf("expected black shadow, got %v", p)
	}
	// Top-left corner of the page stays clear.
	if p := out.RGBAAt(0, 0); p.A != 0 {
		t.Fatalf("expected transparent page corner, got %v", p)
	}
}

func TestFrameOpacityZeroSkipsShadow(t *testing.T) {
	board := solidBoard(20, 20, color.RGBA{255, 0, 0, 255})
	out := Frame(board, FrameOptions{Margin: 10, Blur: 8})
	if p := out.RGBAAt(35, 35); p.A != 0 {
		t.Fatalf("expected no shadow when opacity is zero, got %v", p)
	}
}

func TestFrameBackgroundFill(t *testing.T) {
	board := solidBoard(20, 20, color.RGBA{255, 255, 255, 255})
	bg := color.RGBA{240, 240, 240, 255}
	out := Frame(board, FrameOptions{Margin: 10, Background: bg})
	if p := out.RGBAAt(0, 0); p != bg {
		t.Fatalf("expected background fill %v, got %v", bg, p)
	}
}
