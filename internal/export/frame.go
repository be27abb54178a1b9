package export

import (
	"image"
	"image/color"
	"image/draw"
)

// FrameOptions configures the presentation frame drawn around an exported
// board.
type FrameOptions struct {
	// Margin is the padding added on every side, in pixels.
	Margin int
	// Blur is the shadow blur radius, in pixels.
	Blur int
	// Opacity is the shadow strength from 0 to 1. Zero disables the shadow.
	Opacity float64
	// Offset shifts the shadow relative to the board.
	Offset image.Point
	// Background fills the page behind the board. A zero value means
	// transparent.
	Background color.RGBA
}

// DefaultFrameOptions returns a frame that reads well on light and dark
// backgrounds.
func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		Margin:  32,
		Blur:    16,
		Opacity: 0.45,
		Offset:  image.Pt(8, 8),
	}
}

// Frame pads img with a margin and draws a soft shadow under it. The board
// is always opaque so the shadow mask is simply its rectangle, blurred.
func Frame(img image.Image, opts FrameOptions) *image.RGBA {
	if img == nil {
		return nil
	}
	src := img.Bounds()
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.Blur < 0 {
		opts.Blur = 0
	}
	if opts.Opacity > 1 {
		opts.Opacity = 1
	}

	w := src.Dx() + 2*opts.Margin
	h := src.Dy() + 2*opts.Margin
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background.A > 0 {
		draw.Draw(dst, dst.Bounds(), &image.Uniform{opts.Background}, image.Point{}, draw.Src)
	}

	at := image.Rect(opts.Margin, opts.Margin, opts.Margin+src.Dx(), opts.Margin+src.Dy())

	if opts.Opacity > 0 {
		mask := boardShadowMask(src.Dx(), src.Dy(), opts.Blur)
		alpha := uint8(opts.Opacity*255 + 0.5)
		origin := at.Min.Add(opts.Offset).Sub(image.Pt(opts.Blur, opts.Blur))
		draw.DrawMask(dst,
			mask.Bounds().Add(origin),
			image.NewUniform(color.RGBA{0, 0, 0, alpha}), image.Point{},
			mask, mask.Bounds().Min, draw.Over)
	}

	draw.Draw(dst, at, img, src.Min, draw.Over)
	return dst
}

// boardShadowMask builds a solid w by h rectangle padded by blur on every
// side, then box-blurs it so the edges fall off smoothly.
func boardShadowMask(w, h, blur int) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, w+2*blur, h+2*blur))
	solid := image.Rect(blur, blur, blur+w, blur+h)
	draw.Draw(mask, solid, &image.Uniform{color.Gray{Y: 255}}, image.Point{}, draw.Src)
	return blurGray(mask, blur)
}

// blurGray applies a separable box blur using running prefix sums per row
// and column.
func blurGray(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		return src
	}
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	for y := 0; y < h; y++ {
		rowStart := y * src.Stride
		prefix := make([]int, w+1)
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(src.Pix[rowStart+x])
		}
		for x := 0; x < w; x++ {
			x0 := max(x-radius, 0)
			x1 := min(x+radius, w-1)
			sum := prefix[x1+1] - prefix[x0]
			tmp.Pix[y*tmp.Stride+x] = uint8(sum / (x1 - x0 + 1))
		}
	}

	for x := 0; x < w; x++ {
		prefix := make([]int, h+1)
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, h-1)
			sum := prefix[y1+1] - prefix[y0]
			dst.Pix[y*dst.Stride+x] = uint8(sum / (y1 - y0 + 1))
		}
	}

	return dst
}
