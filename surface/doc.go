// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the pixel target that kanvas shapes render into.
//
// A Surface exposes three write primitives (SetPixel, FillRect and DrawText)
// and reports its native size so a canvas can resolve "full" dimensions.
// Shapes never hold a surface directly; they reach it through their canvas.
//
// # Surface Types
//
//   - ImageSurface: CPU framebuffer over *image.RGBA, PNG output
//   - recording.Recorder: captures calls as commands for later playback
//
// # Text
//
// Text uses a fixed glyph cell of CellWidth×CellHeight pixels (10×15).
// TextBounds returns the region a string occupies, which is also the region
// erased when a text shape is destroyed.
//
// # Registry
//
// Backends can be selected by name:
//
//	s, err := surface.NewSurfaceByName("image", surface.DefaultOptions())
package surface
