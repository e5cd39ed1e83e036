// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
)

// Disk writes the pixels PolarDisk covers, row by row from top to bottom.
//
// Each row is written as maximal horizontal runs, so every pixel is written
// exactly once and sinks implementing SpanFiller receive one call per run.
// Large radii can leave gaps inside a row; those stay unwritten, as in the
// polar sweep. A non-positive radius writes nothing.
func Disk(s Sink, cx, cy, radius int, c color.RGBA) {
	if radius <= 0 {
		return
	}

	rows := make(map[int][]int, min(radius, 1<<12))
	polarSamples(radius, func(p image.Point) {
		rows[p.Y] = append(rows[p.Y], p.X)
	})

	for _, dy := range slices.Sorted(maps.Keys(rows)) {
		xs := rows[dy]
		slices.Sort(xs)
		xs = slices.Compact(xs)

		start := xs[0]
		for i := 1; i <= len(xs); i++ {
			if i < len(xs) && xs[i] == xs[i-1]+1 {
				continue
			}
			fillSpan(s, cx+start, cx+xs[i-1], cy+dy, c)
			if i < len(xs) {
				start = xs[i]
			}
		}
	}
}

// PolarDisk writes the disk produced by polar oversampling: for every
// integer angle in [0, 359] degrees and every radial step in [0, radius-1]
// the pixel (cx + round(r·cos a), cy + round(r·sin a)) is covered.
//
// Halfway cases round to even. Duplicate samples are collapsed so each
// covered pixel is written once, in first-sample order.
func PolarDisk(s Sink, cx, cy, radius int, c color.RGBA) {
	if radius <= 0 {
		return
	}

	seen := make(map[image.Point]struct{}, sampleHint(radius))
	polarSamples(radius, func(p image.Point) {
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		s.SetPixel(cx+p.X, cy+p.Y, c)
	})
}

// polarSamples visits the offset of every polar sample, duplicates included.
func polarSamples(radius int, visit func(image.Point)) {
	for deg := 0; deg < 360; deg++ {
		sin, cos := math.Sincos(float64(deg) * math.Pi / 180)
		for r := 0; r < radius; r++ {
			visit(image.Pt(
				int(math.RoundToEven(float64(r)*cos)),
				int(math.RoundToEven(float64(r)*sin)),
			))
		}
	}
}

// sampleHint sizes the dedup set, about 4·radius² entries capped at 1<<20.
func sampleHint(radius int) int {
	if radius >= 512 {
		return 1 << 20
	}
	return 4 * radius * radius
}
