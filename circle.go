package kanvas

import (
	"image"
	"image/color"

	"github.com/gogpu/kanvas/raster"
	"github.com/gogpu/kanvas/surface"
)

// Circle is a filled disk sampled at every whole degree and radial step
// 0..radius-1. A radius of 1 covers the center pixel only; in general the
// disk spans radius-1 pixels on each side of the center. Both circle modes
// cover the same pixels.
type Circle struct {
	shapeState
	cx, cy int
	radius int
	ink    color.RGBA
}

var _ Shape = (*Circle)(nil)

// NewCircle creates a disk centered on (x, y). Radius must be positive.
func NewCircle(c *Canvas, x, y, radius int, col Color) (*Circle, error) {
	ci := &Circle{cx: x, cy: y, radius: radius}
	if err := ci.init(c, KindCircle); err != nil {
		return nil, err
	}
	if err := positive("radius", radius); err != nil {
		return nil, err
	}
	ink, err := col.Resolve()
	if err != nil {
		return nil, err
	}
	ci.ink = ink
	return ci, nil
}

// Bounds implements Shape.
func (ci *Circle) Bounds() image.Rectangle {
	r := ci.radius - 1
	return image.Rect(ci.cx-r, ci.cy-r, ci.cx+r+1, ci.cy+r+1)
}

// Radius returns the radius the circle was created with.
func (ci *Circle) Radius() int { return ci.radius }

// Color returns the fill color.
func (ci *Circle) Color() color.RGBA { return ci.ink }

// Draw fills the disk.
func (ci *Circle) Draw() error {
	return ci.draw(ci.ink, ci.fill)
}

// Destroy refills the disk with the canvas background.
func (ci *Circle) Destroy() error {
	return ci.destroy(ci.canvas.background, ci.fill)
}

func (ci *Circle) fill(s surface.Surface, c color.RGBA) {
	if ci.canvas.opts.circle == CirclePolar {
		raster.PolarDisk(s, ci.cx, ci.cy, ci.radius, c)
		return
	}
	raster.Disk(s, ci.cx, ci.cy, ci.radius, c)
}
