package kanvas

import (
	"image"
	"image/color"

	"github.com/gogpu/kanvas/raster"
	"github.com/gogpu/kanvas/surface"
)

// Triangle is a filled triangle. It draws in black unless WithInk is given.
type Triangle struct {
	shapeState
	v   [3]image.Point
	ink color.RGBA
}

var _ Shape = (*Triangle)(nil)

// NewTriangle creates a triangle with vertices v1, v2 and v3 in any order.
func NewTriangle(c *Canvas, v1, v2, v3 image.Point, opts ...ShapeOption) (*Triangle, error) {
	t := &Triangle{v: [3]image.Point{v1, v2, v3}}
	if err := t.init(c, KindTriangle); err != nil {
		return nil, err
	}
	ink, err := inkOf(applyShapeOptions(opts))
	if err != nil {
		return nil, err
	}
	t.ink = ink
	return t, nil
}

// Vertices returns the vertices in construction order.
func (t *Triangle) Vertices() [3]image.Point { return t.v }

// Bounds implements Shape.
func (t *Triangle) Bounds() image.Rectangle {
	return pointsBounds(t.v[:])
}

// Draw scan-fills the triangle.
func (t *Triangle) Draw() error {
	return t.draw(t.ink, t.fill)
}

// Destroy scan-fills the triangle with the canvas background.
func (t *Triangle) Destroy() error {
	return t.destroy(t.canvas.background, t.fill)
}

func (t *Triangle) fill(s surface.Surface, c color.RGBA) {
	raster.Triangle(s, t.v[0], t.v[1], t.v[2], c)
}

// pointsBounds returns the pixel rectangle covering pts.
func pointsBounds(pts []image.Point) image.Rectangle {
	r := image.Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}
