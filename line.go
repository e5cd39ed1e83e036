package kanvas

import (
	"image"
	"image/color"

	"github.com/gogpu/kanvas/raster"
	"github.com/gogpu/kanvas/surface"
)

// Line is a one pixel wide segment. It draws in black unless WithInk is given.
type Line struct {
	shapeState
	p1, p2 image.Point
	ink    color.RGBA
}

var _ Shape = (*Line)(nil)

// NewLine creates the segment from (x1, y1) to (x2, y2), endpoints included.
func NewLine(c *Canvas, x1, y1, x2, y2 int, opts ...ShapeOption) (*Line, error) {
	l := &Line{p1: image.Pt(x1, y1), p2: image.Pt(x2, y2)}
	if err := l.init(c, KindLine); err != nil {
		return nil, err
	}
	ink, err := inkOf(applyShapeOptions(opts))
	if err != nil {
		return nil, err
	}
	l.ink = ink
	return l, nil
}

// Endpoints returns the segment endpoints.
func (l *Line) Endpoints() (image.Point, image.Point) { return l.p1, l.p2 }

// Bounds implements Shape.
func (l *Line) Bounds() image.Rectangle {
	return pointsBounds([]image.Point{l.p1, l.p2})
}

// Draw rasterizes the segment.
func (l *Line) Draw() error {
	return l.draw(l.ink, l.stroke)
}

// Destroy rasterizes the segment in the canvas background.
func (l *Line) Destroy() error {
	return l.destroy(l.canvas.background, l.stroke)
}

func (l *Line) stroke(s surface.Surface, c color.RGBA) {
	raster.Line(s, l.p1.X, l.p1.Y, l.p2.X, l.p2.Y, c)
}
