package kanvas

import (
	"image"
	"image/color"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gogpu/kanvas/surface"
)

// Kind identifies a shape variant.
type Kind uint8

// Shape kinds.
const (
	KindRectangle Kind = iota
	KindCircle
	KindTriangle
	KindLine
	KindText
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindTriangle:
		return "triangle"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Shape is a primitive bound to a Canvas with a two-state lifecycle.
//
// A shape starts undrawn. Draw paints it and marks it drawn; Destroy
// repaints the same geometry in the erase color and marks it undrawn.
// What happens on Draw of a drawn shape or Destroy of an undrawn one is
// decided by the canvas LifecyclePolicy. Destroy does not restore pixels
// of other shapes that were underneath.
type Shape interface {
	// ID returns a unique identifier assigned at construction.
	ID() string

	// Kind returns the shape variant.
	Kind() Kind

	// Bounds returns the smallest rectangle containing every pixel the
	// shape paints.
	Bounds() image.Rectangle

	// Drawn reports whether the shape is currently drawn.
	Drawn() bool

	// Draw paints the shape.
	Draw() error

	// Destroy erases the shape.
	Destroy() error
}

// painter paints a shape's geometry in one color.
type painter func(s surface.Surface, c color.RGBA)

// shapeState carries the lifecycle shared by all shape kinds.
type shapeState struct {
	canvas *Canvas
	id     string
	kind   Kind
	drawn  atomic.Bool
}

func (s *shapeState) init(c *Canvas, kind Kind) error {
	if err := c.checkLive(); err != nil {
		return err
	}
	s.canvas = c
	s.id = uuid.NewString()
	s.kind = kind
	return nil
}

// ID implements Shape.
func (s *shapeState) ID() string { return s.id }

// Kind implements Shape.
func (s *shapeState) Kind() Kind { return s.kind }

// Drawn implements Shape.
func (s *shapeState) Drawn() bool { return s.drawn.Load() }

// Canvas returns the canvas the shape was created on.
func (s *shapeState) Canvas() *Canvas { return s.canvas }

// transition paints with col and flips the drawn flag to toDrawn.
func (s *shapeState) transition(op string, toDrawn bool, col color.RGBA, paint painter) error {
	return s.canvas.paint(func(surf surface.Surface) error {
		if s.drawn.Load() == toDrawn {
			return s.illegal(op)
		}
		if m, ok := surf.(surface.Marker); ok {
			m.Mark(op + " " + s.kind.String() + " " + s.id)
		}
		paint(surf, col)
		s.drawn.Store(toDrawn)

		Logger().Debug("shape "+op,
			"kind", s.kind,
			"id", s.id,
			"color", hexOf(col))
		return nil
	})
}

func (s *shapeState) illegal(op string) error {
	drawn := s.drawn.Load()
	if s.canvas.opts.policy == PolicyStrict {
		return &TransitionError{Kind: s.kind, ID: s.id, Op: op, Drawn: drawn}
	}
	Logger().Warn("ignored lifecycle transition",
		"op", op,
		"kind", s.kind,
		"id", s.id,
		"drawn", drawn)
	return nil
}

func (s *shapeState) draw(ink color.RGBA, paint painter) error {
	return s.transition("draw", true, ink, paint)
}

func (s *shapeState) destroy(erase color.RGBA, paint painter) error {
	return s.transition("destroy", false, erase, paint)
}

// inkOf resolves the optional ink of a colorless shape.
func inkOf(o shapeOptions) (color.RGBA, error) {
	if o.ink == nil {
		return colorTable["black"], nil
	}
	return o.ink.Resolve()
}

func positive(field string, v int) error {
	if v <= 0 {
		return &DimensionError{Field: field, Value: strconv.Itoa(v)}
	}
	return nil
}
