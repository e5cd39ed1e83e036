// Package recording captures surface writes so a drawing can be exported
// after the fact.
//
// A Recorder is a surface.Surface: hand it to kanvas.NewDisplay with
// kanvas.WithSurface and every shape operation is stored as a typed
// command instead of being rasterized. The canvas also marks each shape
// operation ("draw rectangle <id>") so backends can group output by shape.
//
// # Architecture
//
//   - Recorder: captures SetPixel, FillRect, DrawText and Mark calls
//   - Recording: immutable command list plus a deduplicated color Palette
//   - Backend: renders commands to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(320, 222)
//	d := kanvas.NewDisplay(kanvas.WithSurface(rec))
//	c, _ := d.Init(kanvas.Full, kanvas.Full, kanvas.White)
//	r, _ := kanvas.NewRectangle(c, 10, 10, 50, 80, kanvas.Red)
//	r.Draw()
//
//	out := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/kanvas/recording/backends/pdf"
//
//	b, _ := recording.NewBackend("pdf")
//	if err := out.Playback(b); err != nil {
//	    return err
//	}
//	b.(recording.FileBackend).SaveToFile("scene.pdf")
//
// # Backend Registration
//
// Backends register themselves by name in init(). Two are provided:
//
//   - "raster" (backends/raster): ImageSurface, PNG output
//   - "pdf" (backends/pdf): one-page PDF sized to the recording
package recording
