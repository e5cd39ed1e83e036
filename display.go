package kanvas

import (
	"sync"

	"github.com/gogpu/kanvas/surface"
)

// Display owns a pixel surface and admits at most one live Canvas on it.
//
// A Display replaces a process-wide "initialized" flag: the first Init
// succeeds, every later Init fails with ErrAlreadyInitialized until Reset.
// Display is safe for concurrent use; all surface writes made through its
// canvases are serialized.
type Display struct {
	mu     sync.Mutex
	surf   surface.Surface
	active *Canvas
}

// NewDisplay creates a display. Without WithSurface it renders into a new
// DefaultWidth×DefaultHeight ImageSurface.
func NewDisplay(opts ...DisplayOption) *Display {
	var o displayOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.surface == nil {
		o.surface = surface.NewImageSurface(surface.DefaultWidth, surface.DefaultHeight)
	}
	return &Display{surf: o.surface}
}

// Surface returns the surface the display renders into.
func (d *Display) Surface() surface.Surface {
	return d.surf
}

// Init creates the display's canvas. Full dimensions resolve to the
// surface's reported size; fixed dimensions must be positive and may exceed
// the surface, whose bounds then clip every write. On success the canvas
// region is filled with the background.
func (d *Display) Init(width, height Dimension, background Color, opts ...CanvasOption) (*Canvas, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.active != nil {
		return nil, ErrAlreadyInitialized
	}

	sw, sh := d.surf.Size()
	w, err := width.resolve("width", sw)
	if err != nil {
		return nil, err
	}
	h, err := height.resolve("height", sh)
	if err != nil {
		return nil, err
	}
	bg, err := background.Resolve()
	if err != nil {
		return nil, err
	}

	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	textErase := bg
	if o.textErase != nil {
		if textErase, err = o.textErase.Resolve(); err != nil {
			return nil, err
		}
	}

	c := &Canvas{
		display:    d,
		width:      w,
		height:     h,
		background: bg,
		textErase:  textErase,
		opts:       o,
	}
	if m, ok := d.surf.(surface.Marker); ok {
		m.Mark("canvas")
	}
	d.surf.FillRect(0, 0, w, h, bg)
	d.active = c

	Logger().Info("canvas initialized",
		"width", w,
		"height", h,
		"background", hexOf(bg),
		"policy", o.policy,
		"circle", o.circle)
	return c, nil
}

// IsInitialized reports whether the display has a live canvas.
func (d *Display) IsInitialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active != nil
}

// Active returns the live canvas, or nil.
func (d *Display) Active() *Canvas {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// Reset retires the live canvas so Init can run again. Shapes created on
// the retired canvas fail with ErrNotInitialized. Surface pixels are left
// untouched.
func (d *Display) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.active != nil {
		Logger().Info("display reset")
	}
	d.active = nil
}

var defaultDisplay = sync.OnceValue(func() *Display { return NewDisplay() })

// Default returns the process-wide display backed by a
// DefaultWidth×DefaultHeight ImageSurface.
func Default() *Display {
	return defaultDisplay()
}

// Init initializes the canvas of the default display.
func Init(width, height Dimension, background Color, opts ...CanvasOption) (*Canvas, error) {
	return Default().Init(width, height, background, opts...)
}

// IsInitialized reports whether the default display has a live canvas.
func IsInitialized() bool {
	return Default().IsInitialized()
}

// Reset retires the default display's canvas.
func Reset() {
	Default().Reset()
}
