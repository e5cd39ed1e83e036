// Package kanvas is a small immediate-mode shape renderer for fixed-size
// pixel surfaces such as a 320×222 calculator screen.
//
// # Overview
//
// A Display owns a surface and admits one live Canvas at a time. Shapes are
// created against that canvas, drawn onto the surface, and later destroyed
// by repainting their geometry in the background color. There is no scene
// graph: later draws overwrite earlier pixels and destroying a shape does
// not restore what was underneath.
//
// # Quick Start
//
//	c, err := kanvas.Init(kanvas.Full, kanvas.Full, kanvas.White)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, _ := kanvas.NewRectangle(c, 10, 10, 50, 80, kanvas.RGB(255, 100, 100))
//	r.Draw()
//
//	t, _ := kanvas.NewTriangle(c, image.Pt(75, 10), image.Pt(125, 50), image.Pt(150, 10))
//	t.Draw()
//
//	kanvas.Default().Surface().(*surface.ImageSurface).SavePNG("out.png")
//
// # Shapes
//
//   - Rectangle: one FillRect call
//   - Circle: filled disk (scanline runs by default, per-sample polar sweep optional)
//   - Triangle: sorted-vertex scanline fill
//   - Line: Bresenham segment
//   - Text: fixed 10×15 glyph cells
//
// Line, Triangle and Text draw in black unless WithInk is given.
//
// # Lifecycle
//
// Every shape is either drawn or not. Draw on a drawn shape and Destroy on
// an undrawn one are no-ops under PolicyIgnore (the default) and return
// ErrIllegalStateTransition under PolicyStrict.
//
// # Colors
//
// Colors are given by name (red, green, yellow, blue, brown, black, white,
// pink, orange, purple, gray), as an RGB triple, or as a hex string. Unknown
// names fail with ErrInvalidColorName; they never fall back to a default.
//
// # Logging
//
// kanvas is silent by default. Use SetLogger to route diagnostics to a
// slog.Logger.
package kanvas
