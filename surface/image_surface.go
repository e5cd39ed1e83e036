// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageSurface is a CPU framebuffer backed by an *image.RGBA.
//
// Example:
//
//	s := surface.NewImageSurface(320, 222)
//	s.FillRect(0, 0, 320, 222, color.RGBA{255, 255, 255, 255})
//	s.SetPixel(10, 10, color.RGBA{A: 255})
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA
}

// NewImageSurface creates a new framebuffer with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface that renders directly into img.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		img:    img,
	}
}

// Size returns the surface dimensions.
func (s *ImageSurface) Size() (int, int) {
	return s.width, s.height
}

// SetPixel sets a single pixel. Out-of-bounds writes are dropped.
func (s *ImageSurface) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.img.SetRGBA(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y, c)
}

// FillRect fills a rectangle, replacing whatever was there.
func (s *ImageSurface) FillRect(x, y, width, height int, c color.RGBA) {
	if width <= 0 || height <= 0 {
		return
	}
	r := image.Rect(x, y, x+width, y+height).Add(s.img.Rect.Min)
	draw.Draw(s.img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// FillSpan fills x in [x1, x2) on row y.
func (s *ImageSurface) FillSpan(x1, x2, y int, c color.RGBA) {
	s.FillRect(x1, y, x2-x1, 1, c)
}

// DrawText renders s with CellFace, one glyph per cell, starting at (x, y).
func (s *ImageSurface) DrawText(str string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: CellFace,
		Dot:  fixed.P(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y+baselineOffset),
	}
	d.DrawString(str)
}

// At returns the pixel at (x, y). Out-of-bounds reads return transparent black.
func (s *ImageSurface) At(x, y int) color.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	return s.img.RGBAAt(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y)
}

// Image returns the backing image. Drawing to it affects the surface.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(dst, dst.Bounds(), s.img, s.img.Rect.Min, draw.Src)
	return dst
}

// WritePNG encodes the surface contents as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG saves the surface contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return s.WritePNG(f)
}
