// Package export writes board images to common interchange formats.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// DefaultJPEGQuality is used when no quality is specified.
const DefaultJPEGQuality = 90

// PNG encodes the image as PNG.
func PNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// JPEG encodes the image as JPEG at the given quality (1-100).
func JPEG(w io.Writer, img image.Image, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

// PDF writes a single-page PDF whose page matches the image dimensions.
// Pixels map to points at 96 DPI.
func PDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("cannot export empty image")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	const ptPerPx = 72.0 / 96.0
	wd := float64(b.Dx()) * ptPerPx
	ht := float64(b.Dy()) * ptPerPx

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	doc.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("board", opts, &buf)
	doc.ImageOptions("board", 0, 0, wd, ht, false, opts, 0, "")
	return doc.Output(w)
}

// WriteFile writes the image to path, choosing the format from the file
// extension. Supported extensions: .png, .jpg, .jpeg, .pdf.
func WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var encErr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", "":
		encErr = PNG(f, img)
	case ".jpg", ".jpeg":
		encErr = JPEG(f, img, DefaultJPEGQuality)
	case ".pdf":
		encErr = PDF(f, img)
	default:
		encErr = fmt.Errorf("unsupported export format %q", filepath.Ext(path))
	}

	closeErr := f.Close()
	if encErr != nil {
		_ = os.Remove(path)
		return encErr
	}
	return closeErr
}

// DefaultName returns a collision-resistant filename in dir, such as
// scrawl-20260830-154512-3f9a1c2b.png.
func DefaultName(dir, ext string) string {
	if ext == "" {
		ext = ".png"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	stamp := time.Now().Format("20060102-150405")
	frag := uuid.NewString()[:8]
	return filepath.Join(dir, fmt.Sprintf("scrawl-%s-%s%s", stamp, frag, ext))
}
