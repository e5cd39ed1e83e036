package recording

import (
	"fmt"
	"image/color"

	"github.com/gogpu/kanvas"
	"github.com/gogpu/kanvas/surface"
)

func init() {
	surface.Register("recording", 0, func(opts surface.Options) (surface.Surface, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	}, nil)
}

// Recorder is a surface that captures writes as commands instead of
// rasterizing them. Use FinishRecording to obtain an immutable Recording
// that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(320, 222)
//	d := kanvas.NewDisplay(kanvas.WithSurface(rec))
//	c, _ := d.Init(kanvas.Full, kanvas.Full, kanvas.White)
//	...
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use; a Display serializes its
// writes.
type Recorder struct {
	width, height int
	commands      []Command
	palette       *Palette
}

var (
	_ surface.Surface = (*Recorder)(nil)
	_ surface.Marker  = (*Recorder)(nil)
)

// NewRecorder creates a Recorder reporting the given size. Non-positive
// dimensions are clamped to 1.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    max(width, 1),
		height:   max(height, 1),
		commands: make([]Command, 0, 256),
		palette:  NewPalette(),
	}
}

// Size implements surface.Surface.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// SetPixel implements surface.Surface.
func (r *Recorder) SetPixel(x, y int, c color.RGBA) {
	r.commands = append(r.commands, SetPixelCommand{X: x, Y: y, Color: r.palette.Add(c)})
}

// FillRect implements surface.Surface. Empty rectangles are not recorded.
func (r *Recorder) FillRect(x, y, width, height int, c color.RGBA) {
	if width <= 0 || height <= 0 {
		return
	}
	r.commands = append(r.commands, FillRectCommand{
		X: x, Y: y, Width: width, Height: height,
		Color: r.palette.Add(c),
	})
}

// FillSpan records the half-open run [x1, x2) on row y as a one-row FillRect.
func (r *Recorder) FillSpan(x1, x2, y int, c color.RGBA) {
	r.FillRect(x1, y, x2-x1, 1, c)
}

// DrawText implements surface.Surface.
func (r *Recorder) DrawText(s string, x, y int, c color.RGBA) {
	r.commands = append(r.commands, DrawTextCommand{Text: s, X: x, Y: y, Color: r.palette.Add(c)})
}

// Mark implements surface.Marker.
func (r *Recorder) Mark(label string) {
	r.commands = append(r.commands, MarkCommand{Label: label})
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording of all commands so far.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
		palette:  r.palette,
	}
}

// Recording is an immutable container for recorded commands.
type Recording struct {
	width, height int
	commands      []Command
	palette       *Palette
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recorded surface.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Palette returns the colors referenced by the commands.
func (r *Recording) Palette() *Palette { return r.palette }

// Labels returns the labels of all MarkCommands in order.
func (r *Recording) Labels() []string {
	var labels []string
	for _, cmd := range r.commands {
		if m, ok := cmd.(MarkCommand); ok {
			labels = append(labels, m.Label)
		}
	}
	return labels
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin playback: %w", err)
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetPixelCommand:
			backend.SetPixel(c.X, c.Y, r.palette.Get(c.Color))
		case FillRectCommand:
			backend.FillRect(c.X, c.Y, c.Width, c.Height, r.palette.Get(c.Color))
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, r.palette.Get(c.Color))
		case MarkCommand:
			backend.Mark(c.Label)
		}
	}

	kanvas.Logger().Debug("recording played back",
		"backend", fmt.Sprintf("%T", backend),
		"commands", len(r.commands),
		"colors", r.palette.Len())

	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end playback: %w", err)
	}
	return nil
}
