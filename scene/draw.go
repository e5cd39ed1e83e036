package scene

import (
	"encoding/json"
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/kanvas"
)

// shapePlan is a validated ShapeSpec ready to be built on a canvas.
type shapePlan struct {
	kind    kanvas.Kind
	pts     []image.Point
	w, h, r int
	text    string
	color   kanvas.Color
	opts    []kanvas.ShapeOption
	destroy bool
}

func (s *ShapeSpec) plan() (*shapePlan, error) {
	p := &shapePlan{text: s.Text, destroy: s.Destroy}

	var err error
	switch strings.ToLower(s.Kind) {
	case "rectangle":
		p.kind = kanvas.KindRectangle
		err = p.origin(s)
		if err == nil {
			p.w, err = extent("width", s.Width)
		}
		if err == nil {
			p.h, err = extent("height", s.Height)
		}
		if err == nil {
			p.color, err = colorOr(s.Color, kanvas.Black)
		}
	case "circle":
		p.kind = kanvas.KindCircle
		err = p.origin(s)
		if err == nil {
			p.r, err = extent("radius", s.Radius)
		}
		if err == nil {
			p.color, err = colorOr(s.Color, kanvas.Black)
		}
	case "triangle":
		p.kind = kanvas.KindTriangle
		err = p.points(s.Points, 3)
	case "line":
		p.kind = kanvas.KindLine
		err = p.points(s.Points, 2)
	case "text":
		p.kind = kanvas.KindText
		err = p.origin(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	if err != nil {
		return nil, err
	}

	if s.Ink != nil {
		ink, err := s.Ink.Color()
		if err != nil {
			return nil, err
		}
		p.opts = append(p.opts, kanvas.WithInk(ink))
	}
	return p, nil
}

func (p *shapePlan) origin(s *ShapeSpec) error {
	x, err := coord("x", s.X)
	if err != nil {
		return err
	}
	y, err := coord("y", s.Y)
	if err != nil {
		return err
	}
	p.pts = []image.Point{image.Pt(x, y)}
	return nil
}

func (p *shapePlan) points(raw [][]json.Number, want int) error {
	if len(raw) != want {
		return fmt.Errorf("%w: want %d points, got %d", kanvas.ErrInvalidCoordinate, want, len(raw))
	}
	p.pts = make([]image.Point, want)
	for i, pt := range raw {
		if len(pt) != 2 {
			return fmt.Errorf("%w: point %d has %d components", kanvas.ErrInvalidCoordinate, i, len(pt))
		}
		x, err := coord(fmt.Sprintf("points[%d].x", i), pt[0])
		if err != nil {
			return err
		}
		y, err := coord(fmt.Sprintf("points[%d].y", i), pt[1])
		if err != nil {
			return err
		}
		p.pts[i] = image.Pt(x, y)
	}
	return nil
}

func (p *shapePlan) build(c *kanvas.Canvas) (kanvas.Shape, error) {
	switch p.kind {
	case kanvas.KindRectangle:
		return nonNil(kanvas.NewRectangle(c, p.pts[0].X, p.pts[0].Y, p.w, p.h, p.color))
	case kanvas.KindCircle:
		return nonNil(kanvas.NewCircle(c, p.pts[0].X, p.pts[0].Y, p.r, p.color))
	case kanvas.KindTriangle:
		return nonNil(kanvas.NewTriangle(c, p.pts[0], p.pts[1], p.pts[2], p.opts...))
	case kanvas.KindLine:
		return nonNil(kanvas.NewLine(c, p.pts[0].X, p.pts[0].Y, p.pts[1].X, p.pts[1].Y, p.opts...))
	default:
		return nonNil(kanvas.NewText(c, p.pts[0].X, p.pts[0].Y, p.text, p.opts...))
	}
}

// nonNil converts a typed constructor result to a Shape, keeping a nil
// interface on error.
func nonNil[S kanvas.Shape](s S, err error) (kanvas.Shape, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (c *CanvasSpec) options() ([]kanvas.CanvasOption, error) {
	var opts []kanvas.CanvasOption
	switch strings.ToLower(c.Policy) {
	case "", "ignore":
	case "strict":
		opts = append(opts, kanvas.WithLifecyclePolicy(kanvas.PolicyStrict))
	default:
		return nil, fmt.Errorf("scene: unknown lifecycle policy %q", c.Policy)
	}
	switch strings.ToLower(c.Circle) {
	case "", "scanline":
	case "polar":
		opts = append(opts, kanvas.WithCircleMode(kanvas.CirclePolar))
	default:
		return nil, fmt.Errorf("scene: unknown circle mode %q", c.Circle)
	}
	if c.TextErase != nil {
		col, err := c.TextErase.Color()
		if err != nil {
			return nil, fmt.Errorf("scene: textErase: %w", err)
		}
		opts = append(opts, kanvas.WithTextEraseColor(col))
	}
	if _, err := c.Width.Dimension("width"); err != nil {
		return nil, err
	}
	if _, err := c.Height.Dimension("height"); err != nil {
		return nil, err
	}
	if _, err := colorOr(c.Background, kanvas.White); err != nil {
		return nil, fmt.Errorf("scene: background: %w", err)
	}
	return opts, nil
}

// Draw initializes the display's canvas from the document and draws every
// shape in order. Shapes marked destroy are erased right after drawing.
// The document is validated before the canvas is touched.
func (d *Document) Draw(display *kanvas.Display) (*kanvas.Canvas, []kanvas.Shape, error) {
	opts, err := d.Canvas.options()
	if err != nil {
		return nil, nil, err
	}
	plans := make([]*shapePlan, len(d.Shapes))
	for i := range d.Shapes {
		if plans[i], err = d.Shapes[i].plan(); err != nil {
			return nil, nil, &ShapeError{Index: i, Kind: d.Shapes[i].Kind, Err: err}
		}
	}

	w, _ := d.Canvas.Width.Dimension("width")
	h, _ := d.Canvas.Height.Dimension("height")
	bg, _ := colorOr(d.Canvas.Background, kanvas.White)
	c, err := display.Init(w, h, bg, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: canvas: %w", err)
	}

	log := kanvas.Logger()
	shapes := make([]kanvas.Shape, 0, len(plans))
	for i, p := range plans {
		s, err := p.build(c)
		if err != nil {
			return c, shapes, &ShapeError{Index: i, Kind: d.Shapes[i].Kind, Err: err}
		}
		if err := s.Draw(); err != nil {
			return c, shapes, &ShapeError{Index: i, Kind: d.Shapes[i].Kind, Err: err}
		}
		if p.destroy {
			if err := s.Destroy(); err != nil {
				return c, shapes, &ShapeError{Index: i, Kind: d.Shapes[i].Kind, Err: err}
			}
		}
		shapes = append(shapes, s)
	}
	log.Info("scene drawn", "shapes", len(shapes), "width", c.Width(), "height", c.Height())
	return c, shapes, nil
}
