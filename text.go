package kanvas

import (
	"image"
	"image/color"

	"github.com/gogpu/kanvas/surface"
)

// Text is a single-line label in the fixed 10×15 glyph cell.
// It draws in black unless WithInk is given.
type Text struct {
	shapeState
	x, y    int
	content string
	ink     color.RGBA
}

var _ Shape = (*Text)(nil)

// NewText creates a label whose first cell has its top-left corner at (x, y).
func NewText(c *Canvas, x, y int, content string, opts ...ShapeOption) (*Text, error) {
	t := &Text{x: x, y: y, content: content}
	if err := t.init(c, KindText); err != nil {
		return nil, err
	}
	ink, err := inkOf(applyShapeOptions(opts))
	if err != nil {
		return nil, err
	}
	t.ink = ink
	return t, nil
}

// Content returns the label string.
func (t *Text) Content() string { return t.content }

// Bounds implements Shape. It is also the region Destroy erases.
func (t *Text) Bounds() image.Rectangle {
	return surface.TextBounds(t.content, t.x, t.y)
}

// Draw renders the label.
func (t *Text) Draw() error {
	return t.draw(t.ink, func(s surface.Surface, c color.RGBA) {
		s.DrawText(t.content, t.x, t.y, c)
	})
}

// Destroy fills the label's cells with the canvas text erase color, which
// is the background unless WithTextEraseColor was given.
func (t *Text) Destroy() error {
	return t.destroy(t.canvas.textErase, func(s surface.Surface, c color.RGBA) {
		b := t.Bounds()
		s.FillRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy(), c)
	})
}
