package kanvas

import (
	"image"
	"image/color"

	"github.com/gogpu/kanvas/surface"
)

// Canvas is the live drawing area of a Display. Shape constructors take
// the canvas they render onto; once the display is reset the canvas is
// retired and every shape operation on it fails with ErrNotInitialized.
type Canvas struct {
	display    *Display
	width      int
	height     int
	background color.RGBA
	textErase  color.RGBA
	opts       canvasOptions
}

// Width returns the resolved canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the resolved canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Background returns the resolved background color.
func (c *Canvas) Background() color.RGBA { return c.background }

// Bounds returns the canvas rectangle, anchored at the origin.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Policy returns the lifecycle policy shapes on this canvas follow.
func (c *Canvas) Policy() LifecyclePolicy { return c.opts.policy }

// Display returns the display that owns c.
func (c *Canvas) Display() *Display { return c.display }

// Surface returns the surface c renders into.
func (c *Canvas) Surface() surface.Surface { return c.display.surf }

// Live reports whether c is still the display's active canvas.
func (c *Canvas) Live() bool {
	if c == nil {
		return false
	}
	c.display.mu.Lock()
	defer c.display.mu.Unlock()
	return c.display.active == c
}

// checkLive returns ErrNotInitialized unless c is the active canvas.
func (c *Canvas) checkLive() error {
	if !c.Live() {
		return ErrNotInitialized
	}
	return nil
}

// paint runs fn with exclusive access to the surface, provided c is still
// live.
func (c *Canvas) paint(fn func(surface.Surface) error) error {
	if c == nil {
		return ErrNotInitialized
	}
	d := c.display
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.active != c {
		return ErrNotInitialized
	}
	return fn(d.surf)
}
