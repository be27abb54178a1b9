package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 20), B: 128, A: 255})
		}
	}
	return img
}

func TestPNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testImage()); err != nil {
		t.Fatalf("PNG failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := decoded.Bounds(); got.Dx() != 16 || got.Dy() != 12 {
		t.Errorf("unexpected bounds %v", got)
	}
}

func TestPDFWritesDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, testImage()); err != nil {
		t.Fatalf("PDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with PDF header")
	}
}

func TestPDFRejectsEmptyImage(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestWriteFileByExtension(t *testing.T) {
	dir := t.TempDir()
	img := testImage()

	for _, name := range []string{"board.png", "board.jpg", "board.pdf"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, img); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestWriteFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.bmp")
	if err := WriteFile(path, testImage()); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("failed export should not leave a file behind")
	}
}

func TestDefaultName(t *testing.T) {
	name := DefaultName("/tmp/boards", "png")
	if !strings.HasPrefix(name, "/tmp/boards/") {
		t.Errorf("expected dir prefix, got %q", name)
	}
	base := filepath.Base(name)
	matched, err := regexp.MatchString(`^scrawl-\d{8}-\d{6}-[0-9a-f]{8}\.png$`, base)
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Errorf("unexpected default name %q", base)
	}

	if ext := filepath.Ext(DefaultName("x", "")); ext != ".png" {
		t.Errorf("empty extension should default to .png, got %q", ext)
	}
	if ext := filepath.Ext(DefaultName("x", "pdf")); ext != ".pdf" {
		t.Errorf("bare extension should gain a dot, got %q", ext)
	}
}
