package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/example/scrawl/internal/clipboard"
	"github.com/example/scrawl/internal/export"
)

// exportCmd converts a saved board image to another format.
type exportCmd struct {
	file          string
	output        string
	format        string
	quality       int
	frame         bool
	fromClipboard bool
	*root
	fs *flag.FlagSet
}

func (x *exportCmd) FlagSet() *flag.FlagSet {
	return x.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	x := &exportCmd{root: r, fs: fs}
	fs.Usage = usageFunc(x)
	fs.StringVar(&x.file, "file", "", "input board image")
	fs.StringVar(&x.output, "output", "", "output file path (default derived from format)")
	fs.StringVar(&x.format, "format", "png", "output format: png, jpg, or pdf")
	fs.IntVar(&x.quality, "quality", export.DefaultJPEGQuality, "JPEG quality, 1 to 100")
	fs.BoolVar(&x.frame, "frame", false, "pad the board with a margin and drop shadow")
	fs.BoolVar(&x.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if x.file == "" && !x.fromClipboard {
		return nil, fmt.Errorf("input file is required")
	}
	if x.file != "" && x.fromClipboard {
		return nil, fmt.Errorf("-file and -from-clipboard are mutually exclusive")
	}
	switch x.format {
	case "png", "jpg", "jpeg", "pdf":
	default:
		return nil, fmt.Errorf("unsupported format %q", x.format)
	}
	if x.output == "" {
		dir := "."
		if r != nil && r.config != nil && r.config.SaveDir != "" {
			dir = r.config.SaveDir
		}
		x.output = export.DefaultName(dir, x.format)
	}
	return x, nil
}

func (x *exportCmd) Run() error {
	src, err := x.loadSource()
	if err != nil {
		return err
	}
	if x.frame {
		opts := export.DefaultFrameOptions()
		if x.format == "jpg" || x.format == "jpeg" {
			opts.Background = color.RGBA{255, 255, 255, 255}
		}
		src = export.Frame(src, opts)
	}

	f, err := os.Create(x.output)
	if err != nil {
		return err
	}
	switch x.format {
	case "jpg", "jpeg":
		err = export.JPEG(f, src, x.quality)
	case "pdf":
		err = export.PDF(f, src)
	default:
		err = export.PNG(f, src)
	}
	closeErr := f.Close()
	if err != nil {
		_ = os.Remove(x.output)
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	saved := x.output
	if abs, err := filepath.Abs(x.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	x.root.notifySave(saved)
	return nil
}

func (x *exportCmd) loadSource() (image.Image, error) {
	if x.fromClipboard {
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		return img, nil
	}
	return loadImageFile(x.file)
}
