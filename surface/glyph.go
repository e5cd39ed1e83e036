// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Glyph cell dimensions shared by text drawing and text erasure.
const (
	CellWidth  = 10
	CellHeight = 15
)

// CellFace is the fixed-width face used by DrawText.
//
// It reuses the basicfont 7x13 bitmaps, centred horizontally in a 10 pixel
// advance. Ascent plus descent stays inside the 15 pixel cell.
var CellFace font.Face = &basicfont.Face{
	Advance: CellWidth,
	Width:   basicfont.Face7x13.Width,
	Height:  basicfont.Face7x13.Height,
	Ascent:  basicfont.Face7x13.Ascent,
	Descent: basicfont.Face7x13.Descent,
	Left:    basicfont.Face7x13.Left + (CellWidth-basicfont.Face7x13.Advance+1)/2,
	Mask:    basicfont.Face7x13.Mask,
	Ranges:  basicfont.Face7x13.Ranges,
}

// baselineOffset places the baseline so glyphs start one row below the cell top.
var baselineOffset = 1 + CellFace.Metrics().Ascent.Ceil()

// TextBounds returns the cells covered by s drawn at (x, y).
func TextBounds(s string, x, y int) image.Rectangle {
	return image.Rect(x, y, x+CellWidth*utf8.RuneCountInString(s), y+CellHeight)
}

// MeasureText returns the advance of s in pixels as laid out by CellFace.
func MeasureText(s string) int {
	return font.MeasureString(CellFace, s).Ceil()
}
