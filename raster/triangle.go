// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"slices"
)

// Triangle fills the triangle with vertices v1, v2, v3 one scanline at a time.
//
// The vertices are stably sorted by y into top, middle and bottom. Rows above
// the middle vertex are bounded by the top-middle and top-bottom edges, the
// remaining rows by the middle-bottom and top-bottom edges. Each row from the
// top y to the bottom y inclusive is filled between its two boundaries.
func Triangle(s Sink, v1, v2, v3 image.Point, c color.RGBA) {
	p := []image.Point{v1, v2, v3}
	slices.SortStableFunc(p, func(a, b image.Point) int {
		return a.Y - b.Y
	})
	top, mid, bottom := p[0], p[1], p[2]

	for y := top.Y; y <= bottom.Y; y++ {
		var left, right int
		if y < mid.Y {
			left = edgeX(top, mid, y)
			right = edgeX(top, bottom, y)
		} else {
			left = edgeX(mid, bottom, y)
			right = edgeX(top, bottom, y)
		}
		fillSpan(s, min(left, right), max(left, right), y, c)
	}
}

// TriangleSpans reports the inclusive span of every row Triangle would fill,
// in the order it fills them.
func TriangleSpans(v1, v2, v3 image.Point) []Span {
	var spans []Span
	Triangle(spanCollector{&spans}, v1, v2, v3, color.RGBA{})
	return spans
}

// Span is an inclusive horizontal run of pixels.
type Span struct {
	Y, X1, X2 int
}

type spanCollector struct {
	spans *[]Span
}

func (sc spanCollector) SetPixel(x, y int, _ color.RGBA) {
	*sc.spans = append(*sc.spans, Span{Y: y, X1: x, X2: x})
}

func (sc spanCollector) FillSpan(x1, x2, y int, _ color.RGBA) {
	*sc.spans = append(*sc.spans, Span{Y: y, X1: x1, X2: x2 - 1})
}

// edgeX interpolates the x of edge a→b at row y, rounding toward negative
// infinity. Horizontal edges yield a.X.
func edgeX(a, b image.Point, y int) int {
	if a.Y == b.Y {
		return a.X
	}
	return a.X + floorDiv((b.X-a.X)*(y-a.Y), b.Y-a.Y)
}

func floorDiv(n, d int) int {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}
