package kanvas

import (
	"image"
	"image/color"

	"github.com/gogpu/kanvas/surface"
)

// Rectangle is an axis-aligned filled rectangle.
type Rectangle struct {
	shapeState
	x, y          int
	width, height int
	ink           color.RGBA
}

var _ Shape = (*Rectangle)(nil)

// NewRectangle creates a width×height rectangle whose top-left corner is
// (x, y). Width and height must be positive.
func NewRectangle(c *Canvas, x, y, width, height int, col Color) (*Rectangle, error) {
	r := &Rectangle{x: x, y: y, width: width, height: height}
	if err := r.init(c, KindRectangle); err != nil {
		return nil, err
	}
	if err := positive("width", width); err != nil {
		return nil, err
	}
	if err := positive("height", height); err != nil {
		return nil, err
	}
	ink, err := col.Resolve()
	if err != nil {
		return nil, err
	}
	r.ink = ink
	return r, nil
}

// Bounds implements Shape.
func (r *Rectangle) Bounds() image.Rectangle {
	return image.Rect(r.x, r.y, r.x+r.width, r.y+r.height)
}

// Color returns the fill color.
func (r *Rectangle) Color() color.RGBA { return r.ink }

// Draw fills the rectangle.
func (r *Rectangle) Draw() error {
	return r.draw(r.ink, r.fill)
}

// Destroy fills the rectangle with the canvas background.
func (r *Rectangle) Destroy() error {
	return r.destroy(r.canvas.background, r.fill)
}

func (r *Rectangle) fill(s surface.Surface, c color.RGBA) {
	s.FillRect(r.x, r.y, r.width, r.height, c)
}
