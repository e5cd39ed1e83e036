package kanvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/kanvas/surface"
)

// constructors builds one shape of every kind on c.
var constructors = []struct {
	kind Kind
	make func(c *Canvas) (Shape, error)
}{
	{KindRectangle, func(c *Canvas) (Shape, error) { return NewRectangle(c, 10, 10, 50, 80, RGB(255, 100, 100)) }},
	{KindCircle, func(c *Canvas) (Shape, error) { return NewCircle(c, 150, 120, 50, Blue) }},
	{KindTriangle, func(c *Canvas) (Shape, error) {
		return NewTriangle(c, image.Pt(75, 10), image.Pt(125, 50), image.Pt(150, 10))
	}},
	{KindLine, func(c *Canvas) (Shape, error) { return NewLine(c, 200, 50, 250, 150) }},
	{KindText, func(c *Canvas) (Shape, error) { return NewText(c, 50, 190, "Hello, World!") }},
}

func TestShapeBeforeInit(t *testing.T) {
	d := NewDisplay()
	retired, err := d.Init(Full, Full, White)
	if err != nil {
		t.Fatalf("Init() = %v", err)
	}
	d.Reset()

	for _, tt := range constructors {
		if _, err := tt.make(nil); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("%v with nil canvas: error = %v, want ErrNotInitialized", tt.kind, err)
		}
		if _, err := tt.make(retired); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("%v with retired canvas: error = %v, want ErrNotInitialized", tt.kind, err)
		}
	}
}

func TestShapeKindsAndIDs(t *testing.T) {
	c, _ := newTestCanvas(t, 320, 222, White)
	seen := make(map[string]bool)
	for _, tt := range constructors {
		s, err := tt.make(c)
		if err != nil {
			t.Fatalf("%v: %v", tt.kind, err)
		}
		if s.Kind() != tt.kind {
			t.Errorf("Kind() = %v, want %v", s.Kind(), tt.kind)
		}
		if s.ID() == "" || seen[s.ID()] {
			t.Errorf("%v: ID() = %q, want unique non-empty", tt.kind, s.ID())
		}
		seen[s.ID()] = true
		if s.Drawn() {
			t.Errorf("%v: new shape reports Drawn", tt.kind)
		}
	}
}

// TestShapeDrawDestroyRoundTrip draws and destroys every kind on a non-white
// background and checks that each shape's bounds return to the background.
func TestShapeDrawDestroyRoundTrip(t *testing.T) {
	bg := color.RGBA{0, 255, 0, 255}
	for _, tt := range constructors {
		t.Run(tt.kind.String(), func(t *testing.T) {
			c, s := newTestCanvas(t, 320, 222, Green)
			sh, err := tt.make(c)
			if err != nil {
				t.Fatalf("construct: %v", err)
			}

			if err := sh.Draw(); err != nil {
				t.Fatalf("Draw() = %v", err)
			}
			if !sh.Drawn() {
				t.Error("Drawn() = false after Draw")
			}
			if countNot(s, sh.Bounds(), bg) == 0 {
				t.Fatalf("Draw() painted nothing inside %v", sh.Bounds())
			}

			if err := sh.Destroy(); err != nil {
				t.Fatalf("Destroy() = %v", err)
			}
			if sh.Drawn() {
				t.Error("Drawn() = true after Destroy")
			}
			if n := countNot(s, s.Image().Bounds(), bg); n != 0 {
				t.Errorf("%d pixels differ from background after Destroy", n)
			}
		})
	}
}

func TestRectangleScenario(t *testing.T) {
	c, s := newTestCanvas(t, 320, 222, White)
	r, err := NewRectangle(c, 10, 10, 50, 80, RGB(255, 100, 100))
	if err != nil {
		t.Fatalf("NewRectangle() = %v", err)
	}
	if err := r.Draw(); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	salmon := color.RGBA{255, 100, 100, 255}
	if got := s.At(10, 10); got != salmon {
		t.Errorf("At(10,10) = %v, want %v", got, salmon)
	}
	if got := s.At(59, 89); got != salmon {
		t.Errorf("At(59,89) = %v, want %v", got, salmon)
	}

	if err := r.Destroy(); err != nil {
		t.Fatalf("Destroy() = %v", err)
	}
	for y := 10; y <= 89; y++ {
		for x := 10; x <= 59; x++ {
			if got := s.At(x, y); got != white {
				t.Fatalf("At(%d,%d) = %v, want white", x, y, got)
			}
		}
	}
	if got, want := r.Bounds(), image.Rect(10, 10, 60, 90); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestLineScenario(t *testing.T) {
	c, s := newTestCanvas(t, 20, 10, White)
	l, err := NewLine(c, 0, 0, 4, 0)
	if err != nil {
		t.Fatalf("NewLine() = %v", err)
	}
	if err := l.Draw(); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	for x := 0; x <= 4; x++ {
		if got := s.At(x, 0); got != black {
			t.Errorf("At(%d,0) = %v, want black", x, got)
		}
	}
	if n := countNot(s, s.Image().Bounds(), white); n != 5 {
		t.Errorf("%d pixels inked, want 5", n)
	}
}

func TestLineWithInk(t *testing.T) {
	c, s := newTestCanvas(t, 10, 10, White)
	l, err := NewLine(c, 1, 1, 1, 8, WithInk(Orange))
	if err != nil {
		t.Fatalf("NewLine() = %v", err)
	}
	_ = l.Draw()
	if got, want := s.At(1, 5), (color.RGBA{255, 165, 0, 255}); got != want {
		t.Errorf("At(1,5) = %v, want %v", got, want)
	}

	if _, err := NewLine(c, 0, 0, 1, 1, WithInk(Named("teal"))); !errors.Is(err, ErrInvalidColorName) {
		t.Errorf("NewLine(bad ink) error = %v, want ErrInvalidColorName", err)
	}
}

func TestTriangleScenario(t *testing.T) {
	c, s := newTestCanvas(t, 10, 10, White)
	tr, err := NewTriangle(c, image.Pt(0, 0), image.Pt(4, 0), image.Pt(2, 4))
	if err != nil {
		t.Fatalf("NewTriangle() = %v", err)
	}
	if err := tr.Draw(); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	for x := 0; x <= 4; x++ {
		if got := s.At(x, 0); got != black {
			t.Errorf("row 0: At(%d,0) = %v, want black", x, got)
		}
	}
	if got := s.At(5, 0); got != white {
		t.Errorf("row 0: At(5,0) = %v, want white", got)
	}
	for x := 0; x < 10; x++ {
		want := white
		if x == 2 {
			want = black
		}
		if got := s.At(x, 4); got != want {
			t.Errorf("row 4: At(%d,4) = %v, want %v", x, got, want)
		}
	}
	if got, want := tr.Bounds(), image.Rect(0, 0, 5, 5); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestCircleRadiusOne(t *testing.T) {
	for _, mode := range []CircleMode{CircleScanline, CirclePolar} {
		t.Run(mode.String(), func(t *testing.T) {
			c, s := newTestCanvas(t, 9, 9, White, WithCircleMode(mode))
			ci, err := NewCircle(c, 4, 4, 1, Red)
			if err != nil {
				t.Fatalf("NewCircle() = %v", err)
			}
			_ = ci.Draw()
			if n := countNot(s, s.Image().Bounds(), white); n != 1 {
				t.Errorf("%d pixels inked, want 1", n)
			}
			if got := s.At(4, 4); got != (color.RGBA{255, 0, 0, 255}) {
				t.Errorf("center = %v, want red", got)
			}
			if got, want := ci.Bounds(), image.Rect(4, 4, 5, 5); got != want {
				t.Errorf("Bounds() = %v, want %v", got, want)
			}
		})
	}
}

func TestCircleStaysInBounds(t *testing.T) {
	for _, mode := range []CircleMode{CircleScanline, CirclePolar} {
		c, s := newTestCanvas(t, 60, 60, White, WithCircleMode(mode))
		ci, err := NewCircle(c, 30, 30, 12, Green)
		if err != nil {
			t.Fatalf("NewCircle() = %v", err)
		}
		_ = ci.Draw()
		outside := countNot(s, s.Image().Bounds(), white) - countNot(s, ci.Bounds(), white)
		if outside != 0 {
			t.Errorf("%v: %d pixels inked outside Bounds() %v", mode, outside, ci.Bounds())
		}
	}
}

func TestCircleModesCoverSamePixels(t *testing.T) {
	for _, radius := range []int{2, 7, 50, 90} {
		var snaps [2][]byte
		for i, mode := range []CircleMode{CircleScanline, CirclePolar} {
			c, s := newTestCanvas(t, 200, 200, White, WithCircleMode(mode))
			ci, err := NewCircle(c, 100, 100, radius, Blue)
			if err != nil {
				t.Fatalf("NewCircle() = %v", err)
			}
			if err := ci.Draw(); err != nil {
				t.Fatalf("Draw() = %v", err)
			}
			snaps[i] = s.Snapshot().Pix
		}
		if !bytes.Equal(snaps[0], snaps[1]) {
			t.Errorf("radius %d: scanline and polar modes differ", radius)
		}
	}
}

func TestShapeInvalidGeometry(t *testing.T) {
	c, _ := newTestCanvas(t, 100, 100, White)
	tests := []struct {
		name string
		make func() error
	}{
		{"rectangle zero width", func() error { _, err := NewRectangle(c, 0, 0, 0, 5, Red); return err }},
		{"rectangle negative height", func() error { _, err := NewRectangle(c, 0, 0, 5, -5, Red); return err }},
		{"circle zero radius", func() error { _, err := NewCircle(c, 5, 5, 0, Red); return err }},
		{"circle negative radius", func() error { _, err := NewCircle(c, 5, 5, -2, Red); return err }},
	}
	for _, tt := range tests {
		if err := tt.make(); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("%s: error = %v, want ErrInvalidDimension", tt.name, err)
		}
	}

	if _, err := NewRectangle(c, 0, 0, 5, 5, Named("mauve")); !errors.Is(err, ErrInvalidColorName) {
		t.Errorf("NewRectangle(bad color) error = %v, want ErrInvalidColorName", err)
	}
	if _, err := NewCircle(c, 0, 0, 5, RGB(1, 2, 999)); !errors.Is(err, ErrInvalidColorValue) {
		t.Errorf("NewCircle(bad color) error = %v, want ErrInvalidColorValue", err)
	}
}

func TestLifecyclePolicyIgnore(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	c, _ := newTestCanvas(t, 320, 222, White)
	for _, tt := range constructors {
		sh, err := tt.make(c)
		if err != nil {
			t.Fatalf("%v: %v", tt.kind, err)
		}
		if err := sh.Destroy(); err != nil {
			t.Errorf("%v: Destroy() on undrawn = %v, want nil", tt.kind, err)
		}
		if err := sh.Draw(); err != nil {
			t.Fatalf("%v: Draw() = %v", tt.kind, err)
		}
		if err := sh.Draw(); err != nil {
			t.Errorf("%v: Draw() on drawn = %v, want nil", tt.kind, err)
		}
		if !sh.Drawn() {
			t.Errorf("%v: ignored Draw changed state", tt.kind)
		}
	}
	if !strings.Contains(buf.String(), "ignored lifecycle transition") {
		t.Errorf("expected warn log, got: %s", buf.String())
	}
}

func TestLifecyclePolicyStrict(t *testing.T) {
	c, s := newTestCanvas(t, 320, 222, White, WithLifecyclePolicy(PolicyStrict))
	for _, tt := range constructors {
		sh, err := tt.make(c)
		if err != nil {
			t.Fatalf("%v: %v", tt.kind, err)
		}

		err = sh.Destroy()
		var te *TransitionError
		if !errors.As(err, &te) || te.Op != "destroy" || te.Drawn || te.Kind != tt.kind {
			t.Errorf("%v: Destroy() on undrawn = %v, want TransitionError", tt.kind, err)
		}
		if !errors.Is(err, ErrIllegalStateTransition) {
			t.Errorf("%v: Destroy() error does not match ErrIllegalStateTransition", tt.kind)
		}

		if err := sh.Draw(); err != nil {
			t.Fatalf("%v: Draw() = %v", tt.kind, err)
		}
		before := s.Snapshot()
		if err := sh.Draw(); !errors.Is(err, ErrIllegalStateTransition) {
			t.Errorf("%v: Draw() on drawn = %v, want ErrIllegalStateTransition", tt.kind, err)
		}
		if !bytes.Equal(before.Pix, s.Snapshot().Pix) {
			t.Errorf("%v: rejected Draw() wrote pixels", tt.kind)
		}
		if err := sh.Destroy(); err != nil {
			t.Errorf("%v: Destroy() = %v", tt.kind, err)
		}
	}
}

func TestShapeOnResetCanvas(t *testing.T) {
	c, s := newTestCanvas(t, 20, 20, White)
	r, err := NewRectangle(c, 0, 0, 5, 5, Red)
	if err != nil {
		t.Fatalf("NewRectangle() = %v", err)
	}
	c.Display().Reset()

	if err := r.Draw(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Draw() error = %v, want ErrNotInitialized", err)
	}
	if err := r.Destroy(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Destroy() error = %v, want ErrNotInitialized", err)
	}
	if got := s.At(0, 0); got != white {
		t.Errorf("At(0,0) = %v, want white", got)
	}
}

func TestTextEraseUsesBackground(t *testing.T) {
	c, s := newTestCanvas(t, 200, 40, Yellow)
	txt, err := NewText(c, 5, 5, "Hello")
	if err != nil {
		t.Fatalf("NewText() = %v", err)
	}
	if got, want := txt.Bounds(), image.Rect(5, 5, 55, 20); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	_ = txt.Draw()
	_ = txt.Destroy()

	yellow := color.RGBA{255, 255, 0, 255}
	if n := countNot(s, s.Image().Bounds(), yellow); n != 0 {
		t.Errorf("%d pixels differ from yellow background after Destroy", n)
	}
}

func TestTextEraseColorOverride(t *testing.T) {
	c, s := newTestCanvas(t, 200, 40, Yellow, WithTextEraseColor(White))
	txt, err := NewText(c, 0, 0, "ab")
	if err != nil {
		t.Fatalf("NewText() = %v", err)
	}
	_ = txt.Draw()
	_ = txt.Destroy()

	if n := countNot(s, txt.Bounds(), white); n != 0 {
		t.Errorf("%d pixels in text cells are not white", n)
	}
	if got := s.At(20, 0); got != (color.RGBA{255, 255, 0, 255}) {
		t.Errorf("At(20,0) = %v, want yellow outside the cells", got)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindRectangle: "rectangle",
		KindCircle:    "circle",
		KindTriangle:  "triangle",
		KindLine:      "line",
		KindText:      "text",
		Kind(42):      "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func countNot(s *surface.ImageSurface, r image.Rectangle, c color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if s.At(x, y) != c {
				n++
			}
		}
	}
	return n
}
