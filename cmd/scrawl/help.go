package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"text/template"
)

var helpTexts = map[string]string{
	"root.txt": `usage: {{.Program}} [flags] <command> [args]

A freehand whiteboard for quick sketches, diagrams, and annotated notes.

Commands:
  board     open an interactive whiteboard window
  draw      render shapes or text onto an image without a window
  export    convert a saved board to another format
  config    print or save the configuration
  version   print the program version

Flags:
{{range flags .FlagSet}}  -{{.Name}} (default {{.DefValue}})
        {{.Usage}}
{{end}}
Run '{{.Program}} <command> -h' for command details.
`,
	"board.txt": `usage: {{.Program}} [flags]

Open an interactive whiteboard window.

Tools: move (m), pen (p), line (l), rect (x), circle (o), arrow (a), text (t).
Ctrl+S saves, Ctrl+C copies, Ctrl+V pastes a clipboard image, Ctrl+D clears
(press twice), k toggles hand-drawn strokes, q quits.

Flags:
{{range flags .FlagSet}}  -{{.Name}} (default {{.DefValue}})
        {{.Usage}}
{{end}}`,
	"draw.txt": `usage: {{.Program}} [flags] <shape> <args>

Render a shape or text onto an image without opening a window.

Shapes:
  line x0 y0 x1 y1
  arrow x0 y0 x1 y1
  rect x0 y0 x1 y1
  circle cx cy ex ey     (radius is the distance between the points)
  text x y content...

Flags:
{{range flags .FlagSet}}  -{{.Name}} (default {{.DefValue}})
        {{.Usage}}
{{end}}`,
	"export.txt": `usage: {{.Program}} [flags]

Convert a saved board image to PNG, JPEG, or PDF.

Flags:
{{range flags .FlagSet}}  -{{.Name}} (default {{.DefValue}})
        {{.Usage}}
{{end}}`,
	"config.txt": `usage: {{.Program}} <print|save>

print   write the active configuration to stdout
save    persist the active configuration to the config file
`,
	"version.txt": `usage: {{.Program}}

Print the program version.
`,
}

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
	})
	for name, text := range helpTexts {
		template.Must(helpTmpl.New(name).Parse(text))
	}
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		log.Printf("error rendering help template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

func usageFunc(h HelpData) func() {
	return func() {
		fmt.Fprint(os.Stderr, (&UsageError{of: h}).Error())
	}
}

func (r *root) Template() string {
	return "root.txt"
}

func (b *boardCmd) Template() string {
	return "board.txt"
}

func (d *drawCmd) Template() string {
	return "draw.txt"
}

func (x *exportCmd) Template() string {
	return "export.txt"
}

func (c *configCmd) Template() string {
	return "config.txt"
}

func (v *versionCmd) Template() string {
	return "version.txt"
}
