// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image/color"

// Line writes the Bresenham segment from (x1, y1) to (x2, y2), endpoints
// included.
//
// The segment is walked along its major axis with increasing coordinate,
// so exactly max(|x2-x1|, |y2-y1|)+1 pixels are written, each once. A
// degenerate segment writes a single pixel.
func Line(s Sink, x1, y1, x2, y2 int, c color.RGBA) {
	steep := absInt(y2-y1) > absInt(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dy := absInt(y2 - y1)
	step := 1
	if y2 < y1 {
		step = -1
	}

	d := 2*dy - dx
	minor := y1
	for major := x1; major <= x2; major++ {
		if steep {
			s.SetPixel(minor, major, c)
		} else {
			s.SetPixel(major, minor, c)
		}
		if d > 0 {
			minor += step
			d -= 2 * dx
		}
		d += 2 * dy
	}
}
