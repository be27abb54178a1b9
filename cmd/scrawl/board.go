package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/scrawl/internal/board"
	"github.com/example/scrawl/internal/clipboard"
	"github.com/example/scrawl/internal/export"
	"github.com/example/scrawl/internal/theme"
)

var toolbarWidth = 72

const (
	topHeight    = 24
	bottomHeight = 24
)

var strokeWidths = []int{1, 2, 3, 5, 8, 12}

// applyEvent carries deferred work onto the window event loop.
type applyEvent struct{ fn func() }

// boardCmd opens an interactive whiteboard window.
type boardCmd struct {
	output      string
	file        string
	sizeSpec    string
	colorSpec   string
	strokeWidth int
	sketchy     bool
	roughness   float64
	toolName    string
	themeName   string

	color color.RGBA
	tool  board.Tool
	th    *theme.Theme
	w, h  int

	*root
	fs *flag.FlagSet
}

func (b *boardCmd) FlagSet() *flag.FlagSet {
	return b.fs
}

func parseBoardCmd(args []string, r *root) (*boardCmd, error) {
	fs := flag.NewFlagSet("board", flag.ExitOnError)
	b := &boardCmd{root: r, fs: fs}
	fs.Usage = usageFunc(b)

	defColor := "black"
	defWidth := 3
	defSketchy := false
	defRoughness := 1.5
	defTool := "pen"
	defTheme := "light"
	defSize := "1200x800"
	if r != nil && r.config != nil {
		defColor = r.config.Stroke.Color
		defWidth = r.config.Stroke.Width
		defSketchy = r.config.Sketch.Enabled
		defRoughness = r.config.Sketch.Roughness
		defTool = r.config.Tool
		if r.config.Theme != "" {
			defTheme = r.config.Theme
		}
		defSize = fmt.Sprintf("%dx%d", r.config.Canvas.Width, r.config.Canvas.Height)
	}

	fs.StringVar(&b.output, "output", "", "save path for Ctrl+S (default a generated name)")
	fs.StringVar(&b.file, "file", "", "open an existing image as the board")
	fs.StringVar(&b.sizeSpec, "size", defSize, "board size as WIDTHxHEIGHT")
	fs.StringVar(&b.colorSpec, "color", defColor, "initial stroke color")
	fs.IntVar(&b.strokeWidth, "width", defWidth, "initial stroke width in pixels")
	fs.BoolVar(&b.sketchy, "sketchy", defSketchy, "start with hand-drawn strokes enabled")
	fs.Float64Var(&b.roughness, "roughness", defRoughness, "hand-drawn jitter amount, 0 to 3")
	fs.StringVar(&b.toolName, "tool", defTool, "initial tool")
	fs.StringVar(&b.themeName, "theme", defTheme, "window theme: light, dark, or a .theme file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	b.color, err = board.ParseColor(b.colorSpec)
	if err != nil {
		return nil, err
	}
	b.tool, err = board.ParseTool(b.toolName)
	if err != nil {
		return nil, err
	}
	b.th, err = theme.NewLoader().Load(b.themeName)
	if err != nil {
		return nil, err
	}
	b.w, b.h, err = parseSize(b.sizeSpec)
	if err != nil {
		return nil, err
	}
	if b.strokeWidth < 1 {
		b.strokeWidth = 1
	}
	if b.output == "" {
		dir := "."
		if r != nil && r.config != nil && r.config.SaveDir != "" {
			dir = r.config.SaveDir
		}
		b.output = export.DefaultName(dir, "png")
	}
	return b, nil
}

func (b *boardCmd) Run() error {
	surface := board.NewSurface(b.w, b.h)
	if b.file != "" {
		src, err := loadImageFile(b.file)
		if err != nil {
			return err
		}
		draw.Draw(surface.Persistent(), surface.Bounds(), src, src.Bounds().Min, draw.Over)
	}

	eng := board.New(
		board.WithSurface(surface),
		board.WithTool(b.tool),
		board.WithStyle(board.Style{
			Color:     b.color,
			Width:     b.strokeWidth,
			Sketchy:   b.sketchy,
			Roughness: b.roughness,
		}),
		board.WithLogger(b.root.logger),
	)

	driver.Main(func(s screen.Screen) { b.win(s, eng) })
	return nil
}

type toolEntry struct {
	label string
	tool  board.Tool
}

var toolEntries = []toolEntry{
	{"M:Move", board.ToolMove},
	{"P:Pen", board.ToolPen},
	{"L:Line", board.ToolLine},
	{"X:Rect", board.ToolRect},
	{"O:Circle", board.ToolCircle},
	{"A:Arrow", board.ToolArrow},
	{"T:Text", board.ToolText},
}

func fitZoom(b image.Rectangle, winW, winH int) float64 {
	availW := winW - toolbarWidth
	availH := winH - topHeight - bottomHeight
	if availW <= 0 || availH <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return 1
	}
	zx := float64(availW) / float64(b.Dx())
	zy := float64(availH) / float64(b.Dy())
	z := zx
	if zy < z {
		z = zy
	}
	if z > 1 {
		z = 1
	}
	return z
}

func canvasScreenRect(b image.Rectangle, winW, winH int, zoom float64) image.Rectangle {
	w := int(float64(b.Dx()) * zoom)
	h := int(float64(b.Dy()) * zoom)
	x0 := toolbarWidth + (winW-toolbarWidth-w)/2
	y0 := topHeight + (winH-topHeight-bottomHeight-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, cell int, th *theme.Theme) {
	for y := rect.Min.Y; y < rect.Max.Y; y += cell {
		for x := rect.Min.X; x < rect.Max.X; x += cell {
			c := th.CheckerLight
			if ((x/cell)+(y/cell))%2 == 1 {
				c = th.CheckerDark
			}
			r := image.Rect(x, y, x+cell, y+cell).Intersect(rect)
			draw.Draw(dst, r, &image.Uniform{c}, image.Point{}, draw.Src)
		}
	}
}

func boardImage(eng *board.Engine, overlay bool) *image.RGBA {
	bounds := eng.Surface().Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.White, image.Point{}, draw.Src)
	eng.Surface().Composite(img)
	if overlay {
		eng.RenderOverlay(img, true)
	}
	return img
}

func (b *boardCmd) win(s screen.Screen, eng *board.Engine) {
	// Size the toolbar to the widest label so nothing is clipped.
	meas := &font.Drawer{Face: basicfont.Face7x13}
	maxLabel := meas.MeasureString("Scrawl").Ceil() + 8
	for _, te := range toolEntries {
		if w := meas.MeasureString(te.label).Ceil() + 8; w > maxLabel {
			maxLabel = w
		}
	}
	if maxLabel > toolbarWidth {
		toolbarWidth = maxLabel
	}

	bounds := eng.Surface().Bounds()
	winW := bounds.Dx() + toolbarWidth
	winH := bounds.Dy() + topHeight + bottomHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: winW, Height: winH, Title: "Scrawl"})
	if err != nil {
		b.root.logger.Fatal("new window", "err", err)
	}
	defer w.Release()

	zoom := fitZoom(bounds, winW, winH)
	canvas := canvasScreenRect(bounds, winW, winH, zoom)
	mapper := board.Mapper{
		Bounds: func() image.Rectangle { return canvas },
		Zoom:   func() float64 { return zoom },
	}

	colorIdx := board.EnsurePaletteColor(b.color, b.colorSpec)
	widthIdx := ensureWidth(b.strokeWidth)

	var message string
	var messageUntil time.Time
	var confirmClear bool
	hoverTool := -1
	hoverPalette := -1
	hoverWidth := -1

	say := func(msg string) {
		message = msg
		messageUntil = time.Now().Add(2 * time.Second)
		b.root.logger.Info(msg)
	}

	save := func() {
		eng.ConfirmText()
		img := boardImage(eng, false)
		if err := export.WriteFile(b.output, img); err != nil {
			b.root.logger.Error("save", "err", err)
			say(fmt.Sprintf("save failed: %v", err))
			return
		}
		say(fmt.Sprintf("saved %s", b.output))
		b.root.notifySave(b.output)
	}

	copyBoard := func() {
		eng.ConfirmText()
		if err := clipboard.WriteImage(boardImage(eng, false)); err != nil {
			b.root.logger.Error("copy", "err", err)
			say(fmt.Sprintf("copy failed: %v", err))
			return
		}
		say("board copied to clipboard")
		b.root.notifyCopy(filepath.Base(b.output))
	}

	paste := func() {
		eng.PasteAsync(
			clipboard.ReadImageData,
			func(fn func()) { w.Send(applyEvent{fn: fn}) },
			func(r image.Rectangle, err error) {
				if err != nil {
					say("nothing to paste")
					return
				}
				say(fmt.Sprintf("pasted %dx%d image", r.Dx(), r.Dy()))
				b.root.notifyPaste(fmt.Sprintf("%dx%d image", r.Dx(), r.Dy()))
				w.Send(paint.Event{})
			},
		)
	}

	clear := func() {
		eng.CancelText()
		eng.Clear()
		say("board cleared")
	}

	selectTool := func(t board.Tool) {
		eng.SetTool(t)
		w.Send(paint.Event{})
	}

	for {
		switch e := w.NextEvent().(type) {
		case applyEvent:
			e.fn()
			w.Send(paint.Event{})

		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}

		case size.Event:
			winW = e.WidthPx
			winH = e.HeightPx
			zoom = fitZoom(bounds, winW, winH)
			canvas = canvasScreenRect(bounds, winW, winH, zoom)
			w.Send(paint.Event{})

		case paint.Event:
			buf, err := s.NewBuffer(image.Point{winW, winH})
			if err != nil {
				b.root.logger.Error("new buffer", "err", err)
				continue
			}
			frame := buf.RGBA()
			drawCheckerboard(frame, frame.Bounds(), 16, b.th)

			img := boardImage(eng, true)
			xdraw.NearestNeighbor.Scale(frame, canvas, img, img.Bounds(), draw.Over, nil)

			b.drawChrome(frame, eng, winW, winH, zoom, colorIdx, widthIdx, hoverTool, hoverPalette, hoverWidth)

			if message != "" && time.Now().Before(messageUntil) {
				b.drawMessage(frame, winW, winH, message)
			}

			w.Upload(image.Point{}, buf, buf.Bounds())
			w.Publish()
			buf.Release()

		case mouse.Event:
			p := image.Point{int(e.X), int(e.Y)}

			// An active gesture owns the pointer until it terminates,
			// even over the toolbar: a release there still commits.
			if eng.Drawing() {
				if forwardGesture(eng, mapper, e) {
					w.Send(paint.Event{})
				}
				continue
			}

			if p.X < toolbarWidth {
				hoverTool, hoverPalette, hoverWidth = -1, -1, -1
				idx, kind := toolbarHit(p)
				switch kind {
				case hitTool:
					hoverTool = idx
					if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
						selectTool(toolEntries[idx].tool)
					}
				case hitPalette:
					hoverPalette = idx
					if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
						colorIdx = idx
						eng.SetColor(board.Palette()[idx].Color)
						w.Send(paint.Event{})
					}
				case hitWidth:
					hoverWidth = idx
					if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
						widthIdx = idx
						eng.SetWidth(strokeWidths[idx])
						w.Send(paint.Event{})
					}
				case hitSketch:
					if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
						st := eng.Style()
						eng.SetSketchy(!st.Sketchy, st.Roughness)
						w.Send(paint.Event{})
					}
				}
				if e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}
			hoverTool, hoverPalette, hoverWidth = -1, -1, -1

			if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
				confirmClear = false
				eng.PointerDown(mapper.Map(float64(e.X), float64(e.Y)))
				w.Send(paint.Event{})
			}

		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}

			if eng.TextEditing() != nil {
				switch e.Code {
				case key.CodeReturnEnter:
					if e.Modifiers&key.ModShift != 0 {
						eng.TextNewline()
					} else {
						eng.ConfirmText()
					}
					w.Send(paint.Event{})
					continue
				case key.CodeEscape:
					eng.CancelText()
					w.Send(paint.Event{})
					continue
				case key.CodeDeleteBackspace:
					eng.TextBackspace()
					w.Send(paint.Event{})
					continue
				}
				if e.Rune > 0 && e.Modifiers&key.ModControl == 0 {
					eng.TextInput(string(e.Rune))
					w.Send(paint.Event{})
					continue
				}
				continue
			}

			if e.Modifiers&key.ModControl != 0 {
				switch unicode.ToLower(e.Rune) {
				case 's':
					confirmClear = false
					save()
					w.Send(paint.Event{})
				case 'c':
					confirmClear = false
					copyBoard()
					w.Send(paint.Event{})
				case 'v':
					confirmClear = false
					paste()
				case 'd':
					if !confirmClear {
						confirmClear = true
						say("press Ctrl+D again to clear the board")
						w.Send(paint.Event{})
						continue
					}
					confirmClear = false
					clear()
					w.Send(paint.Event{})
				}
				continue
			}

			confirmClear = false
			switch unicode.ToLower(e.Rune) {
			case 'm':
				selectTool(board.ToolMove)
			case 'p':
				selectTool(board.ToolPen)
			case 'l':
				selectTool(board.ToolLine)
			case 'x':
				selectTool(board.ToolRect)
			case 'o':
				selectTool(board.ToolCircle)
			case 'a':
				selectTool(board.ToolArrow)
			case 't':
				selectTool(board.ToolText)
			case 'k':
				st := eng.Style()
				eng.SetSketchy(!st.Sketchy, st.Roughness)
				if eng.Style().Sketchy {
					say("hand-drawn strokes on")
				} else {
					say("hand-drawn strokes off")
				}
				w.Send(paint.Event{})
			case 'q':
				return
			case '+', '=':
				zoom *= 1.25
				canvas = canvasScreenRect(bounds, winW, winH, zoom)
				w.Send(paint.Event{})
			case '-':
				zoom /= 1.25
				if zoom < 0.1 {
					zoom = 0.1
				}
				canvas = canvasScreenRect(bounds, winW, winH, zoom)
				w.Send(paint.Event{})
			}
		}
	}
}

// forwardGesture feeds pointer events into an in-flight gesture. Moves extend
// it; a left release terminates and commits it, wherever it lands. Reports
// whether the engine consumed the event.
func forwardGesture(eng *board.Engine, mapper board.Mapper, e mouse.Event) bool {
	cp := mapper.Map(float64(e.X), float64(e.Y))
	switch {
	case e.Direction == mouse.DirNone:
		eng.PointerMove(cp)
		return true
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		eng.PointerUp(cp)
		return true
	}
	return false
}

type hitKind int

const (
	hitNone hitKind = iota
	hitTool
	hitPalette
	hitWidth
	hitSketch
)

// toolbarHit resolves a toolbar-local point to the control under it. The
// layout must match drawChrome.
func toolbarHit(p image.Point) (int, hitKind) {
	y := p.Y - topHeight
	if y < 0 {
		return -1, hitNone
	}
	if y < len(toolEntries)*24 {
		return y / 24, hitTool
	}
	y -= len(toolEntries)*24 + 4

	cols := toolbarWidth / 18
	if cols < 1 {
		cols = 1
	}
	palette := board.Palette()
	rows := (len(palette) + cols - 1) / cols
	if y >= 0 && y < rows*18 {
		cx := (p.X - 4) / 18
		idx := (y/18)*cols + cx
		if cx >= 0 && cx < cols && idx >= 0 && idx < len(palette) {
			return idx, hitPalette
		}
		return -1, hitNone
	}
	y -= rows*18 + 4

	if y >= 0 && y < len(strokeWidths)*16 {
		return y / 16, hitWidth
	}
	y -= len(strokeWidths)*16 + 4

	if y >= 0 && y < 20 {
		return 0, hitSketch
	}
	return -1, hitNone
}

func ensureWidth(width int) int {
	for i, w := range strokeWidths {
		if w == width {
			return i
		}
	}
	strokeWidths = append(strokeWidths, width)
	return len(strokeWidths) - 1
}

func (b *boardCmd) drawChrome(dst *image.RGBA, eng *board.Engine, winW, winH int, zoom float64, colorIdx, widthIdx, hoverTool, hoverPalette, hoverWidth int) {
	fg := image.NewUniform(b.th.Foreground)

	// title bar
	draw.Draw(dst, image.Rect(0, 0, winW, topHeight), &image.Uniform{b.th.Chrome}, image.Point{}, draw.Src)
	title := &font.Drawer{Dst: dst, Src: fg, Face: basicfont.Face7x13, Dot: fixed.P(4, 16)}
	title.DrawString("Scrawl")
	name := filepath.Base(b.output)
	nameW := title.MeasureString(name).Ceil()
	title.Dot = fixed.P(winW-nameW-4, 16)
	title.DrawString(name)

	// toolbar background
	draw.Draw(dst, image.Rect(0, topHeight, toolbarWidth, winH-bottomHeight), &image.Uniform{b.th.Chrome}, image.Point{}, draw.Src)

	y := topHeight
	for i, te := range toolEntries {
		c := b.th.ButtonBackground
		if te.tool == eng.Tool() {
			c = b.th.ButtonActive
		} else if i == hoverTool {
			c = b.th.ButtonHover
		}
		r := image.Rect(0, y, toolbarWidth, y+24)
		draw.Draw(dst, r, &image.Uniform{c}, image.Point{}, draw.Src)
		d := &font.Drawer{Dst: dst, Src: fg, Face: basicfont.Face7x13, Dot: fixed.P(4, y+16)}
		d.DrawString(te.label)
		y += 24
	}

	// palette grid
	y += 4
	x := 4
	for i, pc := range board.Palette() {
		r := image.Rect(x, y, x+16, y+16)
		draw.Draw(dst, r, &image.Uniform{pc.Color}, image.Point{}, draw.Src)
		if i == hoverPalette {
			draw.Draw(dst, r, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
		if i == colorIdx {
			border := image.Rect(r.Min.X-1, r.Min.Y-1, r.Max.X+1, r.Max.Y+1)
			draw.Draw(dst, image.Rect(border.Min.X, border.Min.Y, border.Max.X, border.Min.Y+1), fg, image.Point{}, draw.Src)
			draw.Draw(dst, image.Rect(border.Min.X, border.Max.Y-1, border.Max.X, border.Max.Y), fg, image.Point{}, draw.Src)
			draw.Draw(dst, image.Rect(border.Min.X, border.Min.Y, border.Min.X+1, border.Max.Y), fg, image.Point{}, draw.Src)
			draw.Draw(dst, image.Rect(border.Max.X-1, border.Min.Y, border.Max.X, border.Max.Y), fg, image.Point{}, draw.Src)
		}
		x += 18
		if x+16 > toolbarWidth {
			x = 4
			y += 18
		}
	}
	if x != 4 {
		y += 18
	}

	// stroke widths
	y += 4
	sel := eng.Style().Color
	for i, sw := range strokeWidths {
		c := b.th.ButtonBackground
		if i == widthIdx {
			c = b.th.ButtonActive
		} else if i == hoverWidth {
			c = b.th.ButtonHover
		}
		r := image.Rect(0, y, toolbarWidth, y+16)
		draw.Draw(dst, r, &image.Uniform{c}, image.Point{}, draw.Src)
		d := &font.Drawer{Dst: dst, Src: fg, Face: basicfont.Face7x13, Dot: fixed.P(4, y+12)}
		d.DrawString(fmt.Sprintf("%d", sw))
		lineRect := image.Rect(30, y+8-sw/2, toolbarWidth-4, y+8+(sw+1)/2)
		draw.Draw(dst, lineRect, &image.Uniform{sel}, image.Point{}, draw.Src)
		y += 16
	}

	// sketch toggle
	y += 4
	label := "K:Sketch off"
	c := b.th.ButtonBackground
	if eng.Style().Sketchy {
		label = "K:Sketch on"
		c = b.th.ButtonActive
	}
	draw.Draw(dst, image.Rect(0, y, toolbarWidth, y+20), &image.Uniform{c}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: fg, Face: basicfont.Face7x13, Dot: fixed.P(4, y+14)}
	d.DrawString(label)

	// shortcuts bar
	draw.Draw(dst, image.Rect(0, winH-bottomHeight, winW, winH), &image.Uniform{b.th.Chrome}, image.Point{}, draw.Src)
	var hint string
	if eng.TextEditing() != nil {
		hint = "Enter:place  Shift+Enter:newline  Esc:cancel"
	} else {
		hint = fmt.Sprintf("^S:save  ^C:copy  ^V:paste  ^D:clear  +/-:zoom (%.0f%%)  Q:quit", zoom*100)
	}
	hd := &font.Drawer{Dst: dst, Src: fg, Face: basicfont.Face7x13, Dot: fixed.P(toolbarWidth+4, winH-bottomHeight+16)}
	hd.DrawString(hint)
}

func (b *boardCmd) drawMessage(dst *image.RGBA, winW, winH int, msg string) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(b.th.Foreground), Face: face}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	px := (winW - wmsg) / 2
	py := (winH-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	draw.Draw(dst, rect, &image.Uniform{b.th.MessageBackground}, image.Point{}, draw.Over)
	border := image.NewUniform(b.th.MessageBorder)
	for _, edge := range []image.Rectangle{
		{Min: image.Pt(rect.Min.X, rect.Min.Y), Max: image.Pt(rect.Max.X, rect.Min.Y+2)},
		{Min: image.Pt(rect.Min.X, rect.Max.Y-2), Max: image.Pt(rect.Max.X, rect.Max.Y)},
		{Min: image.Pt(rect.Min.X, rect.Min.Y), Max: image.Pt(rect.Min.X+2, rect.Max.Y)},
		{Min: image.Pt(rect.Max.X-2, rect.Min.Y), Max: image.Pt(rect.Max.X, rect.Max.Y)},
	} {
		draw.Draw(dst, edge, border, image.Point{}, draw.Src)
	}
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}
