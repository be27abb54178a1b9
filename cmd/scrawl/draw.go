package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/scrawl/internal/board"
	"github.com/example/scrawl/internal/clipboard"
	"github.com/example/scrawl/internal/export"
)

// drawCmd renders a single shape or text run onto an image without a window.
type drawCmd struct {
	file          string
	output        string
	sizeSpec      string
	fromClipboard bool
	toClipboard   bool
	colorSpec     string
	color         color.RGBA
	strokeWidth   int
	sketchy       bool
	roughness     float64
	shape         string
	coords        []int
	text          string
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)

	defColor := "black"
	defWidth := 3
	defSketchy := false
	defRoughness := 1.5
	if r != nil && r.config != nil {
		defColor = r.config.Stroke.Color
		defWidth = r.config.Stroke.Width
		defSketchy = r.config.Sketch.Enabled
		defRoughness = r.config.Sketch.Roughness
	}

	fs.StringVar(&d.file, "file", "", "input image file")
	fs.StringVar(&d.output, "output", "", "output file path (defaults to input file)")
	fs.StringVar(&d.sizeSpec, "size", "", "create a blank board of WIDTHxHEIGHT instead of reading an input")
	fs.BoolVar(&d.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.StringVar(&d.colorSpec, "color", defColor, "stroke color name or hex value")
	fs.IntVar(&d.strokeWidth, "width", defWidth, "stroke width in pixels")
	fs.BoolVar(&d.sketchy, "sketchy", defSketchy, "render with hand-drawn strokes")
	fs.Float64Var(&d.roughness, "roughness", defRoughness, "hand-drawn jitter amount, 0 to 3")

	flagArgs, positionals, err := splitDrawArgs(args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.shape = strings.ToLower(positionals[0])
	remaining := positionals[1:]
	switch d.shape {
	case "line", "arrow", "rect", "circle":
		d.coords, err = expectInts(remaining, 4, d.shape)
	case "text":
		if len(remaining) < 3 {
			return nil, fmt.Errorf("text requires x y and content")
		}
		var coords []int
		coords, err = expectInts(remaining[:2], 2, d.shape)
		if err != nil {
			return nil, err
		}
		d.coords = coords
		d.text = strings.Join(remaining[2:], " ")
		if strings.TrimSpace(d.text) == "" {
			return nil, fmt.Errorf("text content cannot be empty")
		}
	default:
		return nil, fmt.Errorf("unsupported shape %q", d.shape)
	}
	if err != nil {
		return nil, err
	}
	colorVal, err := board.ParseColor(d.colorSpec)
	if err != nil {
		return nil, err
	}
	d.color = colorVal
	if d.strokeWidth < 1 {
		d.strokeWidth = 1
	}

	sources := 0
	if d.file != "" {
		sources++
	}
	if d.fromClipboard {
		sources++
	}
	if d.sizeSpec != "" {
		sources++
	}
	if sources > 1 {
		return nil, fmt.Errorf("-file, -from-clipboard, and -size are mutually exclusive")
	}
	if sources == 0 {
		return nil, fmt.Errorf("an input is required: -file, -from-clipboard, or -size")
	}
	if d.sizeSpec != "" {
		if _, _, err := parseSize(d.sizeSpec); err != nil {
			return nil, err
		}
	}
	if d.output == "" {
		if d.file != "" {
			d.output = d.file
		} else {
			return nil, fmt.Errorf("output file is required when not reading from a file")
		}
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	base, err := d.loadSource()
	if err != nil {
		return err
	}

	surface := board.NewSurface(base.Bounds().Dx(), base.Bounds().Dy())
	draw.Draw(surface.Persistent(), surface.Bounds(), base, base.Bounds().Min, draw.Src)

	eng := board.New(
		board.WithSurface(surface),
		board.WithStyle(board.Style{
			Color:     d.color,
			Width:     d.strokeWidth,
			Sketchy:   d.sketchy,
			Roughness: d.roughness,
		}),
	)

	switch d.shape {
	case "text":
		if err := eng.DrawText(image.Pt(d.coords[0], d.coords[1]), d.text); err != nil {
			return err
		}
	default:
		tool, err := board.ParseTool(d.shape)
		if err != nil {
			return err
		}
		eng.DrawShape(tool,
			image.Pt(d.coords[0], d.coords[1]),
			image.Pt(d.coords[2], d.coords[3]))
	}

	result := surface.Snapshot()
	if err := export.WriteFile(d.output, result); err != nil {
		return err
	}
	saved := d.output
	if abs, err := filepath.Abs(d.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	d.root.notifySave(saved)

	if d.toClipboard {
		if err := clipboard.WriteImage(result); err != nil {
			return fmt.Errorf("copy image to clipboard: %w", err)
		}
		detail := filepath.Base(d.output)
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		d.root.notifyCopy(detail)
	}
	return nil
}

func (d *drawCmd) loadSource() (image.Image, error) {
	switch {
	case d.fromClipboard:
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		return img, nil
	case d.sizeSpec != "":
		w, h, err := parseSize(d.sizeSpec)
		if err != nil {
			return nil, err
		}
		blank := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(blank, blank.Bounds(), image.White, image.Point{}, draw.Src)
		return blank, nil
	default:
		return loadImageFile(d.file)
	}
}

func loadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func parseSize(spec string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(spec), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size must be WIDTHxHEIGHT, got %q", spec)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width in %q", spec)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height in %q", spec)
	}
	return w, h, nil
}

func expectInts(args []string, n int, shape string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", shape, n)
	}
	vals := make([]int, n)
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

var drawFlagNames = map[string]struct{}{
	"file":           {},
	"output":         {},
	"size":           {},
	"from-clipboard": {},
	"to-clipboard":   {},
	"color":          {},
	"width":          {},
	"sketchy":        {},
	"roughness":      {},
}

var drawBoolFlags = map[string]struct{}{
	"from-clipboard": {},
	"to-clipboard":   {},
	"sketchy":        {},
}

// splitDrawArgs separates known flags from shape positionals so flags may
// appear on either side of the shape name.
func splitDrawArgs(args []string) ([]string, []string, error) {
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if name == "" {
			positionals = append(positionals, arg)
			continue
		}
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		if _, ok := drawFlagNames[base]; !ok {
			positionals = append(positionals, arg)
			continue
		}
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if _, ok := drawBoolFlags[base]; ok {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}
