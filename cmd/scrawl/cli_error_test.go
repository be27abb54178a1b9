package main

import (
	"strings"
	"testing"
)

func TestParseDrawClipboardRequiresOutput(t *testing.T) {
	_, err := parseDrawCmd([]string{"-from-clipboard", "line", "0", "0", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "output file is required"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawExclusiveSources(t *testing.T) {
	_, err := parseDrawCmd([]string{"-file", "in.png", "-from-clipboard", "-output", "out.png", "line", "0", "0", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "mutually exclusive"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawUnknownShape(t *testing.T) {
	_, err := parseDrawCmd([]string{"-size", "100x100", "-output", "out.png", "blob", "0", "0", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := `unsupported shape "blob"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawShapeCoordCount(t *testing.T) {
	_, err := parseDrawCmd([]string{"-size", "100x100", "-output", "out.png", "rect", "0", "0", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "requires 4 integer arguments"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawBadCoordinate(t *testing.T) {
	_, err := parseDrawCmd([]string{"-size", "100x100", "-output", "out.png", "line", "0", "0", "ten", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := `invalid integer "ten"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawTextNeedsContent(t *testing.T) {
	_, err := parseDrawCmd([]string{"-size", "100x100", "-output", "out.png", "text", "10", "10"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "text requires x y and content"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawBadSize(t *testing.T) {
	_, err := parseDrawCmd([]string{"-size", "wide", "-output", "out.png", "line", "0", "0", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "size must be WIDTHxHEIGHT"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawBadColor(t *testing.T) {
	_, err := parseDrawCmd([]string{"-size", "100x100", "-output", "out.png", "-color", "blurple9", "line", "0", "0", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseExportRequiresInput(t *testing.T) {
	_, err := parseExportCmd(nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "input file is required"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseExportExclusiveSources(t *testing.T) {
	_, err := parseExportCmd([]string{"-file", "in.png", "-from-clipboard"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "mutually exclusive"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseExportUnknownFormat(t *testing.T) {
	_, err := parseExportCmd([]string{"-file", "in.png", "-format", "bmp"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := `unsupported format "bmp"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseBoardBadTool(t *testing.T) {
	_, err := parseBoardCmd([]string{"-tool", "lasso"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestConfigUnknownSubcommand(t *testing.T) {
	cmd, err := parseConfigCmd([]string{"frobnicate"}, &root{program: "scrawl"})
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "unknown config command"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestSplitDrawArgs(t *testing.T) {
	flags, rest, err := splitDrawArgs([]string{"-color", "red", "-sketchy", "line", "0", "0", "5", "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flags) != 3 {
		t.Fatalf("expected 3 flag tokens, got %v", flags)
	}
	if len(rest) != 5 || rest[0] != "line" {
		t.Fatalf("expected shape args, got %v", rest)
	}
}
