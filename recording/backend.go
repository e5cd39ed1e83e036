package recording

import (
	"image"
	"image/color"
	"io"
)

// Backend is the interface that all export backends must implement.
// Backends receive surface-level commands and translate them to their
// output format (raster pixels, PDF content, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (Mark may be a no-op)
//  3. Drop writes that fall outside the Begin dimensions
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	Begin(width, height int) error

	// End finalizes the rendering. After End, output methods can be used.
	End() error

	// SetPixel sets a single pixel.
	SetPixel(x, y int, c color.RGBA)

	// FillRect fills the width×height rectangle whose top-left corner is (x, y).
	FillRect(x, y, width, height int, c color.RGBA)

	// DrawText draws s in fixed glyph cells starting at (x, y).
	DrawText(s string, x, y int, c color.RGBA)

	// Mark labels the commands that follow.
	Mark(label string)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. Call only after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to path. Call only after End.
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image. Call only after End.
	Image() *image.RGBA
}
