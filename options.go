package kanvas

import "github.com/gogpu/kanvas/surface"

// LifecyclePolicy decides what Draw on a drawn shape and Destroy on an
// undrawn shape do. It applies to every shape kind.
type LifecyclePolicy uint8

const (
	// PolicyIgnore makes illegal transitions a logged no-op.
	PolicyIgnore LifecyclePolicy = iota
	// PolicyStrict makes illegal transitions return ErrIllegalStateTransition.
	PolicyStrict
)

func (p LifecyclePolicy) String() string {
	switch p {
	case PolicyIgnore:
		return "ignore"
	case PolicyStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// CircleMode selects the disk rasterizer used by Circle.
type CircleMode uint8

const (
	// CircleScanline fills the polar-sampled pixel set as horizontal runs,
	// writing each pixel once.
	CircleScanline CircleMode = iota
	// CirclePolar sweeps every whole degree and radial step.
	CirclePolar
)

func (m CircleMode) String() string {
	switch m {
	case CircleScanline:
		return "scanline"
	case CirclePolar:
		return "polar"
	default:
		return "unknown"
	}
}

// CanvasOption configures a Canvas during initialization.
//
// Example:
//
//	c, err := d.Init(kanvas.Full, kanvas.Full, kanvas.White,
//	    kanvas.WithLifecyclePolicy(kanvas.PolicyStrict))
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	policy    LifecyclePolicy
	circle    CircleMode
	textErase *Color
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		policy: PolicyIgnore,
		circle: CircleScanline,
	}
}

// WithLifecyclePolicy sets the policy for illegal draw/destroy transitions.
func WithLifecyclePolicy(p LifecyclePolicy) CanvasOption {
	return func(o *canvasOptions) {
		o.policy = p
	}
}

// WithCircleMode sets the disk rasterizer used by Circle shapes.
func WithCircleMode(m CircleMode) CanvasOption {
	return func(o *canvasOptions) {
		o.circle = m
	}
}

// WithTextEraseColor overrides the color used to erase destroyed text.
// By default text is erased with the canvas background.
func WithTextEraseColor(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.textErase = &c
	}
}

// DisplayOption configures a Display.
type DisplayOption func(*displayOptions)

type displayOptions struct {
	surface surface.Surface
}

// WithSurface makes the display render into s instead of a new
// DefaultWidth×DefaultHeight ImageSurface.
func WithSurface(s surface.Surface) DisplayOption {
	return func(o *displayOptions) {
		o.surface = s
	}
}

// ShapeOption configures a shape at construction.
type ShapeOption func(*shapeOptions)

type shapeOptions struct {
	ink *Color
}

// WithInk sets the ink of a Line, Triangle or Text shape, which otherwise
// draw in black. Rectangle and Circle take their color as an argument and
// ignore this option.
func WithInk(c Color) ShapeOption {
	return func(o *shapeOptions) {
		o.ink = &c
	}
}

func applyShapeOptions(opts []ShapeOption) shapeOptions {
	var o shapeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
