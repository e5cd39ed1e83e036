package scene

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/kanvas"
	"github.com/gogpu/kanvas/surface"
)

func TestExampleDocument(t *testing.T) {
	doc := ExampleDocument()
	if len(doc.Shapes) != 5 {
		t.Fatalf("len(Shapes) = %d, want 5", len(doc.Shapes))
	}

	s := surface.NewImageSurface(320, 222)
	c, shapes, err := doc.Draw(kanvas.NewDisplay(kanvas.WithSurface(s)))
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if c.Width() != 320 || c.Height() != 222 {
		t.Errorf("canvas = %dx%d, want 320x222", c.Width(), c.Height())
	}

	wantKinds := []kanvas.Kind{kanvas.KindRectangle, kanvas.KindTriangle, kanvas.KindCircle, kanvas.KindLine, kanvas.KindText}
	for i, sh := range shapes {
		if sh.Kind() != wantKinds[i] {
			t.Errorf("shapes[%d].Kind() = %v, want %v", i, sh.Kind(), wantKinds[i])
		}
		if !sh.Drawn() {
			t.Errorf("shapes[%d] not drawn", i)
		}
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{20, 20, color.RGBA{255, 100, 100, 255}},
		{150, 120, color.RGBA{0, 0, 255, 255}},
		{200, 50, color.RGBA{0, 0, 0, 255}},
		{250, 150, color.RGBA{0, 0, 0, 255}},
		{100, 10, color.RGBA{0, 0, 0, 255}},
		{310, 5, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := s.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", `{"shapes": [{"kind": "hexagon", "x": 1, "y": 1}]}`, ErrUnknownKind},
		{"fractional coordinate", `{"shapes": [{"kind": "text", "x": 1.5, "y": 1, "text": "a"}]}`, kanvas.ErrInvalidCoordinate},
		{"missing coordinate", `{"shapes": [{"kind": "text", "y": 1, "text": "a"}]}`, kanvas.ErrInvalidCoordinate},
		{"exponent coordinate", `{"shapes": [{"kind": "line", "points": [[1e2, 0], [0, 0]]}]}`, kanvas.ErrInvalidCoordinate},
		{"wrong point count", `{"shapes": [{"kind": "triangle", "points": [[0, 0], [1, 1]]}]}`, kanvas.ErrInvalidCoordinate},
		{"short point", `{"shapes": [{"kind": "line", "points": [[0], [1, 1]]}]}`, kanvas.ErrInvalidCoordinate},
		{"zero radius", `{"shapes": [{"kind": "circle", "x": 1, "y": 1, "radius": 0, "color": "red"}]}`, kanvas.ErrInvalidDimension},
		{"missing width", `{"shapes": [{"kind": "rectangle", "x": 1, "y": 1, "height": 2}]}`, kanvas.ErrInvalidDimension},
		{"bad color name", `{"shapes": [{"kind": "circle", "x": 1, "y": 1, "radius": 3, "color": "grey"}]}`, kanvas.ErrInvalidColorName},
		{"bad color arity", `{"shapes": [{"kind": "circle", "x": 1, "y": 1, "radius": 3, "color": [1, 2]}]}`, kanvas.ErrInvalidColorValue},
		{"bad color range", `{"shapes": [{"kind": "circle", "x": 1, "y": 1, "radius": 3, "color": [1, 2, 256]}]}`, kanvas.ErrInvalidColorValue},
		{"bad ink", `{"shapes": [{"kind": "line", "points": [[0, 0], [1, 1]], "ink": "sky"}]}`, kanvas.ErrInvalidColorName},
		{"bad width sentinel", `{"canvas": {"width": "wide"}}`, kanvas.ErrInvalidDimension},
		{"fractional height", `{"canvas": {"height": 12.5}}`, kanvas.ErrInvalidDimension},
		{"bad background", `{"canvas": {"background": "transparent"}}`, kanvas.ErrInvalidColorName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.doc)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseString() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseShapeErrorIndex(t *testing.T) {
	_, err := ParseString(`{"shapes": [
		{"kind": "text", "x": 0, "y": 0, "text": "ok"},
		{"kind": "blob"}
	]}`)
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want ShapeError", err)
	}
	if se.Index != 1 || se.Kind != "blob" {
		t.Errorf("ShapeError = %+v, want index 1 kind blob", se)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := ParseString(`{"shapes": [], "layers": []}`); err == nil {
		t.Error("ParseString() accepted an unknown field")
	}
	if _, err := ParseString(`{"shapes": [{"kind": "text", "x": "a", "y": 0}]}`); err == nil {
		t.Error("ParseString() accepted a non-numeric coordinate")
	}
}

func TestDrawDestroyAndOptions(t *testing.T) {
	doc, err := ParseString(`{
		"canvas": {"width": 100, "height": 50, "background": "#0000ff", "policy": "strict", "circle": "polar"},
		"shapes": [
			{"kind": "rectangle", "x": 0, "y": 0, "width": 10, "height": 10, "color": "red", "destroy": true},
			{"kind": "line", "points": [[0, 20], [9, 20]], "ink": [255, 255, 0]}
		]
	}`)
	if err != nil {
		t.Fatalf("ParseString() = %v", err)
	}

	s := surface.NewImageSurface(200, 100)
	c, shapes, err := doc.Draw(kanvas.NewDisplay(kanvas.WithSurface(s)))
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if c.Policy() != kanvas.PolicyStrict {
		t.Errorf("Policy() = %v, want strict", c.Policy())
	}
	if c.Width() != 100 || c.Height() != 50 {
		t.Errorf("canvas = %dx%d, want 100x50", c.Width(), c.Height())
	}
	if shapes[0].Drawn() {
		t.Error("destroyed rectangle reports Drawn")
	}
	if got := s.At(5, 5); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("At(5,5) = %v, want blue background", got)
	}
	if got := s.At(4, 20); got != (color.RGBA{255, 255, 0, 255}) {
		t.Errorf("At(4,20) = %v, want yellow ink", got)
	}
}

func TestDrawOnInitializedDisplay(t *testing.T) {
	d := kanvas.NewDisplay()
	if _, err := d.Init(kanvas.Full, kanvas.Full, kanvas.White); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	_, _, err := ExampleDocument().Draw(d)
	if !errors.Is(err, kanvas.ErrAlreadyInitialized) {
		t.Errorf("Draw() error = %v, want ErrAlreadyInitialized", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(Example), 0o600); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(doc.Shapes) != 5 {
		t.Errorf("len(Shapes) = %d, want 5", len(doc.Shapes))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load(missing) = nil error")
	}
}
