// Package scene loads JSON scene documents and draws them onto a display.
//
// A document names the canvas and a flat list of shapes:
//
//	{
//	  "canvas": {"width": "full", "height": "full", "background": "white"},
//	  "shapes": [
//	    {"kind": "rectangle", "x": 10, "y": 10, "width": 50, "height": 80, "color": [255, 100, 100]},
//	    {"kind": "triangle", "points": [[75, 10], [125, 50], [150, 10]]},
//	    {"kind": "circle", "x": 150, "y": 120, "radius": 50, "color": "blue"},
//	    {"kind": "line", "points": [[200, 50], [250, 150]]},
//	    {"kind": "text", "x": 50, "y": 190, "text": "Hello, World!"}
//	  ]
//	}
//
// Colors are a name, a "#rrggbb" string or an [r, g, b] array. Coordinates
// must be integers. A shape with "destroy": true is erased right after it
// is drawn.
package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnknownKind is returned for a shape kind outside rectangle, circle,
// triangle, line and text.
var ErrUnknownKind = errors.New("scene: unknown shape kind")

// Document is a parsed scene.
type Document struct {
	Canvas CanvasSpec  `json:"canvas"`
	Shapes []ShapeSpec `json:"shapes"`
}

// CanvasSpec configures the canvas. Missing dimensions mean "full" and a
// missing background means white.
type CanvasSpec struct {
	Width      *Dim        `json:"width,omitempty"`
	Height     *Dim        `json:"height,omitempty"`
	Background *ColorValue `json:"background,omitempty"`

	// Policy is "ignore" (default) or "strict".
	Policy string `json:"policy,omitempty"`

	// Circle is "scanline" (default) or "polar".
	Circle string `json:"circle,omitempty"`

	// TextErase overrides the text erase color.
	TextErase *ColorValue `json:"textErase,omitempty"`
}

// ShapeSpec describes one shape. Which fields apply depends on Kind.
type ShapeSpec struct {
	Kind string `json:"kind"`

	X      json.Number `json:"x,omitempty"`
	Y      json.Number `json:"y,omitempty"`
	Width  json.Number `json:"width,omitempty"`
	Height json.Number `json:"height,omitempty"`
	Radius json.Number `json:"radius,omitempty"`

	// Points holds the vertices of a triangle or the endpoints of a line.
	Points [][]json.Number `json:"points,omitempty"`

	Text string `json:"text,omitempty"`

	// Color fills rectangles and circles.
	Color *ColorValue `json:"color,omitempty"`

	// Ink colors lines, triangles and text. Defaults to black.
	Ink *ColorValue `json:"ink,omitempty"`

	// Destroy erases the shape right after drawing it.
	Destroy bool `json:"destroy,omitempty"`
}

// ShapeError reports which shape of a document is invalid.
type ShapeError struct {
	Index int
	Kind  string
	Err   error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("scene: shape %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

// Parse decodes and validates a document. Unknown fields are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("scene: parse JSON: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Validate checks every field of the document without drawing anything.
func (d *Document) Validate() error {
	if _, err := d.Canvas.options(); err != nil {
		return err
	}
	for i := range d.Shapes {
		if _, err := d.Shapes[i].plan(); err != nil {
			return &ShapeError{Index: i, Kind: d.Shapes[i].Kind, Err: err}
		}
	}
	return nil
}
