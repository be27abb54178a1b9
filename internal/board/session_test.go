package board

import (
	"image"
	"image/color"
	"testing"
)

func newTestEngine(tool Tool) *Engine {
	return New(
		WithSize(200, 200),
		WithTool(tool),
		WithStyle(Style{Color: color.RGBA{R: 255, A: 255}, Width: 2}),
	)
}

func TestShapeCommitAtomicity(t *testing.T) {
	for _, tool := range []Tool{ToolLine, ToolRect, ToolCircle, ToolArrow} {
		t.Run(tool.String(), func(t *testing.T) {
			e := newTestEngine(tool)
			e.PointerDown(image.Pt(10, 10))
			for _, p := range []image.Point{{20, 20}, {35, 35}, {50, 50}} {
				e.PointerMove(p)
				if hasInk(e.Surface().Persistent()) {
					t.Fatalf("%v: interim moves must not touch the persistent layer", tool)
				}
				if !hasInk(e.Surface().Preview()) {
					t.Fatalf("%v: interim moves must render a preview", tool)
				}
			}
			e.PointerUp(image.Pt(50, 50))
			if !hasInk(e.Surface().Persistent()) {
				t.Fatalf("%v: pointer-up must commit the shape", tool)
			}
			if hasInk(e.Surface().Preview()) {
				t.Fatalf("%v: preview must be blank after commit", tool)
			}
		})
	}
}

func TestPreviewRedrawnFromScratch(t *testing.T) {
	e := newTestEngine(ToolLine)
	e.PointerDown(image.Pt(10, 100))
	e.PointerMove(image.Pt(190, 100))
	e.PointerMove(image.Pt(10, 110))
	// The long horizontal stroke from the first move must be gone.
	if e.Surface().Preview().RGBAAt(150, 100).A != 0 {
		t.Fatal("preview must contain only the latest shape instance")
	}
}

func TestPenDrawsIncrementally(t *testing.T) {
	e := newTestEngine(ToolPen)
	e.PointerDown(image.Pt(10, 10))
	pts := []image.Point{{30, 10}, {50, 10}, {70, 10}}
	for i, p := range pts {
		e.PointerMove(p)
		if !hasInk(e.Surface().Persistent()) {
			t.Fatalf("segment %d must be persistent immediately", i)
		}
		if hasInk(e.Surface().Preview()) {
			t.Fatal("pen must not touch the preview layer")
		}
	}
	// The first segment is already committed before pointer-up.
	if e.Surface().Persistent().RGBAAt(20, 10).A == 0 {
		t.Fatal("early pen segments must not be buffered")
	}
}

func TestStrayMoveIgnored(t *testing.T) {
	e := newTestEngine(ToolPen)
	e.PointerMove(image.Pt(40, 40))
	e.PointerUp(image.Pt(50, 50))
	if hasInk(e.Surface().Persistent()) || hasInk(e.Surface().Preview()) {
		t.Fatal("events without a pointer-down must be no-ops")
	}
}

func TestMoveToolInert(t *testing.T) {
	e := newTestEngine(ToolMove)
	e.PointerDown(image.Pt(10, 10))
	e.PointerMove(image.Pt(90, 90))
	e.PointerUp(image.Pt(90, 90))
	if e.Drawing() {
		t.Fatal("move tool must not start a gesture")
	}
	if hasInk(e.Surface().Persistent()) || hasInk(e.Surface().Preview()) {
		t.Fatal("move tool must not draw")
	}
}

func TestStyleChangeNotRetroactive(t *testing.T) {
	e := newTestEngine(ToolPen)
	e.PointerDown(image.Pt(10, 10))
	e.PointerMove(image.Pt(60, 10))
	e.PointerUp(image.Pt(60, 10))
	e.SetColor(color.RGBA{B: 255, A: 255})
	if got := e.Surface().Persistent().RGBAAt(30, 10); got.R != 255 || got.B != 0 {
		t.Fatalf("committed pixels must keep their stroke color, got %+v", got)
	}
}

func TestToolSwitchCommitsPendingText(t *testing.T) {
	e := newTestEngine(ToolText)
	e.PointerDown(image.Pt(20, 20))
	e.TextInput("Hi")
	e.SetTool(ToolPen)
	if e.TextEditing() != nil {
		t.Fatal("tool switch must resolve the text overlay")
	}
	if !hasInk(e.Surface().Persistent()) {
		t.Fatal("pending text must be committed on tool switch")
	}
}

func TestDrawGestureCommitsPendingText(t *testing.T) {
	e := newTestEngine(ToolText)
	e.PointerDown(image.Pt(20, 20))
	e.TextInput("Hi")
	e.SetTool(ToolText) // same tool, overlay stays open
	if e.TextEditing() == nil {
		t.Fatal("reselecting the text tool must not close the overlay")
	}
	e.tool = ToolLine // direct switch keeps the overlay pending
	e.PointerDown(image.Pt(50, 50))
	if e.TextEditing() != nil {
		t.Fatal("starting a draw gesture must resolve the text overlay")
	}
	if !hasInk(e.Surface().Persistent()) {
		t.Fatal("pending text must be committed before the gesture starts")
	}
}

func TestNoSurfaceAllNoops(t *testing.T) {
	e := New(WithTool(ToolRect))
	e.PointerDown(image.Pt(1, 1))
	e.PointerMove(image.Pt(2, 2))
	e.PointerUp(image.Pt(3, 3))
	e.Clear()
	e.DrawShape(ToolLine, image.Pt(0, 0), image.Pt(5, 5))
	if err := e.DrawText(image.Pt(0, 0), "x"); err != nil {
		t.Fatalf("unmounted surface must degrade to a no-op, got %v", err)
	}
	if e.Drawing() {
		t.Fatal("no gesture should start without a surface")
	}
}

func TestClearWipesCommittedContent(t *testing.T) {
	e := newTestEngine(ToolPen)
	e.PointerDown(image.Pt(10, 10))
	e.PointerMove(image.Pt(80, 80))
	e.PointerUp(image.Pt(80, 80))
	e.Clear()
	if hasInk(e.Surface().Persistent()) {
		t.Fatal("clear must wipe the persistent layer")
	}
}
