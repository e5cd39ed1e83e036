// Package raster provides a raster backend for the recording system.
// It replays recordings onto a surface.ImageSurface.
//
// The raster backend serves as the reference backend: replaying a recording
// through it yields exactly the pixels the canvas would have produced on an
// ImageSurface directly.
//
// # Example
//
//	import _ "github.com/gogpu/kanvas/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	rec.Playback(backend)
//	backend.(*raster.Backend).SavePNG("output.png")
package raster

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/kanvas/recording"
	"github.com/gogpu/kanvas/surface"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned by output methods called before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// Backend renders recordings to an image.
type Backend struct {
	s *surface.ImageSurface
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend. Begin must be called before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a width×height image.
func (b *Backend) Begin(width, height int) error {
	b.s = surface.NewImageSurface(width, height)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.s == nil {
		return ErrNotStarted
	}
	return nil
}

// SetPixel implements recording.Backend.
func (b *Backend) SetPixel(x, y int, c color.RGBA) {
	b.s.SetPixel(x, y, c)
}

// FillRect implements recording.Backend.
func (b *Backend) FillRect(x, y, width, height int, c color.RGBA) {
	b.s.FillRect(x, y, width, height, c)
}

// DrawText implements recording.Backend.
func (b *Backend) DrawText(s string, x, y int, c color.RGBA) {
	b.s.DrawText(s, x, y, c)
}

// Mark implements recording.Backend. Labels carry no pixels.
func (b *Backend) Mark(string) {}

// WriteTo writes the image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.s == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.s.WritePNG(cw)
	return cw.n, err
}

// SaveToFile saves the image as PNG.
func (b *Backend) SaveToFile(path string) error {
	return b.SavePNG(path)
}

// SavePNG saves the image as PNG.
func (b *Backend) SavePNG(path string) error {
	if b.s == nil {
		return ErrNotStarted
	}
	return b.s.SavePNG(path)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	if b.s == nil {
		return nil
	}
	return b.s.Image()
}

// Surface returns the underlying surface, or nil before Begin.
func (b *Backend) Surface() *surface.ImageSurface {
	return b.s
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
