// Command kanvasdemo draws a scene document and saves it as PNG or PDF.
//
// Without -scene it draws the built-in reference scene: a rectangle, a
// triangle, a circle, a line and a greeting on a white canvas.
//
// By default the scene is drawn onto a recording surface and played back
// to the backend matching the output extension. -surface picks another
// registered surface by name, or the preferred one with "auto"; surfaces
// other than the recorder can only save PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/kanvas"
	"github.com/gogpu/kanvas/recording"
	_ "github.com/gogpu/kanvas/recording/backends/pdf"
	_ "github.com/gogpu/kanvas/recording/backends/raster"
	"github.com/gogpu/kanvas/scene"
	"github.com/gogpu/kanvas/surface"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene JSON file (default: built-in example)")
		output    = flag.String("output", "kanvas.png", "output file (.png or .pdf)")
		surfName  = flag.String("surface", "recording", `surface name, or "auto" for the preferred one`)
		width     = flag.Int("width", surface.DefaultWidth, "screen width")
		height    = flag.Int("height", surface.DefaultHeight, "screen height")
		bg        = flag.String("background", "", "override the scene background (name, #rrggbb or r,g,b)")
		verbose   = flag.Bool("v", false, "log shape transitions")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s (surfaces: %s):\n",
			os.Args[0], strings.Join(surface.List(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		kanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	doc := scene.ExampleDocument()
	if *scenePath != "" {
		var err error
		if doc, err = scene.Load(*scenePath); err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}
	if *bg != "" {
		doc.Canvas.Background = scene.Named(*bg)
		if err := doc.Validate(); err != nil {
			log.Fatalf("Invalid background: %v", err)
		}
	}

	backendName, err := backendFor(*output)
	if err != nil {
		log.Fatal(err)
	}

	s, err := newSurface(*surfName, surface.Options{Width: *width, Height: *height})
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}

	display := kanvas.NewDisplay(kanvas.WithSurface(s))
	c, shapes, err := doc.Draw(display)
	if err != nil {
		log.Fatalf("Failed to draw scene: %v", err)
	}
	display.Reset()

	if err := save(s, backendName, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Scene saved to %s (%dx%d, %d shapes, %T)\n",
		*output, c.Width(), c.Height(), len(shapes), s)
}

// newSurface resolves a surface name; "auto" picks the preferred available one.
func newSurface(name string, opts surface.Options) (surface.Surface, error) {
	if name == "auto" {
		return surface.NewSurface(opts)
	}
	return surface.NewSurfaceByName(name, opts)
}

// save writes the drawn surface to path. Recorders are played back to the
// named backend; other surfaces must be able to save PNG themselves.
func save(s surface.Surface, backendName, path string) error {
	rec, ok := s.(*recording.Recorder)
	if !ok {
		pngSaver, ok := s.(interface{ SavePNG(string) error })
		if !ok || backendName != "raster" {
			return fmt.Errorf("surface %T cannot write %s; use -surface recording", s, filepath.Ext(path))
		}
		return pngSaver.SavePNG(path)
	}

	r := rec.FinishRecording()
	backend, err := recording.NewBackend(backendName)
	if err != nil {
		return err
	}
	if err := r.Playback(backend); err != nil {
		return err
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot save files", backendName)
	}
	return fb.SaveToFile(path)
}

// backendFor picks the playback backend from the output file extension.
func backendFor(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "raster", nil
	case ".pdf":
		return "pdf", nil
	default:
		return "", fmt.Errorf("unsupported output extension %q (want .png or .pdf)", ext)
	}
}
