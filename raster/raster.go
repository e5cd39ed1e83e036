// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts integer geometry into pixel writes.
//
// Every function in this package is stateless: it receives the geometry, a
// color and a Sink, and emits pixel writes in a deterministic order. Nothing
// is clipped here; a Sink decides what to do with out-of-bounds coordinates.
//
// # Algorithms
//
//   - Line: integer Bresenham stepping along the major axis
//   - Disk: the PolarDisk pixel set written as row runs (each pixel once)
//   - PolarDisk: polar oversampling over 360 integer angles
//   - Triangle: sorted-vertex scanline fill with floor-division interpolation
package raster

import "image/color"

// Sink receives pixel writes from the rasterizers.
type Sink interface {
	SetPixel(x, y int, c color.RGBA)
}

// SpanFiller is an optional interface that sinks can implement for
// optimized horizontal runs. The span covers x in [x1, x2).
type SpanFiller interface {
	FillSpan(x1, x2, y int, c color.RGBA)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(x, y int, c color.RGBA)

// SetPixel implements Sink.
func (f SinkFunc) SetPixel(x, y int, c color.RGBA) {
	f(x, y, c)
}

// fillSpan writes the inclusive run [x1, x2] on row y.
func fillSpan(s Sink, x1, x2, y int, c color.RGBA) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	if sf, ok := s.(SpanFiller); ok {
		sf.FillSpan(x1, x2+1, y, c)
		return
	}

	for x := x1; x <= x2; x++ {
		s.SetPixel(x, y, c)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
