// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Native dimensions of the reference calculator screen.
const (
	DefaultWidth  = 320
	DefaultHeight = 222
)

// Surface is the pixel target shapes render into.
//
// Coordinates are in pixels with the origin at the top-left. Writes outside
// the surface are dropped silently; callers do not clip.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Size reports the native surface dimensions in pixels.
	Size() (width, height int)

	// SetPixel sets a single pixel.
	SetPixel(x, y int, c color.RGBA)

	// FillRect fills the width×height rectangle whose top-left corner is (x, y).
	// Non-positive extents fill nothing.
	FillRect(x, y, width, height int, c color.RGBA)

	// DrawText renders s with the fixed CellWidth×CellHeight glyph cell;
	// (x, y) is the top-left corner of the first cell.
	DrawText(s string, x, y int, c color.RGBA)
}

// Snapshotter is an optional interface for surfaces whose contents can be read back.
type Snapshotter interface {
	Surface

	// Snapshot returns a copy of the current surface contents.
	Snapshot() *image.RGBA
}

// Marker is an optional interface for surfaces that can label the writes
// that follow, such as recorders. Labels carry no pixels.
type Marker interface {
	Mark(label string)
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int
}

// DefaultOptions returns Options for the native 320×222 screen.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}
