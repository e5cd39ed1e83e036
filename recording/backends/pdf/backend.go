// Package pdf provides a PDF backend for the recording system.
//
// A recording is replayed onto a single page whose size in points equals
// the recording size in pixels. Pixels and rectangles become filled
// rectangles, text is set in Courier one glyph per 10×15 cell, and every
// shape mark becomes a document bookmark.
//
// # Example
//
//	import _ "github.com/gogpu/kanvas/recording/backends/pdf"
//
//	backend, _ := recording.NewBackend("pdf")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("scene.pdf")
package pdf

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/kanvas/recording"
	"github.com/gogpu/kanvas/surface"
)

func init() {
	recording.Register("pdf", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned by output methods called before Begin.
var ErrNotStarted = errors.New("pdf: backend not started")

const (
	fontFamily = "Courier"
	fontSize   = 14.0
	// Courier advances 0.6em; center the glyph in its cell.
	glyphInset = (surface.CellWidth - 0.6*fontSize) / 2
	// Baseline offset from the top of a cell.
	baseline = 12.0
)

// Backend renders recordings to a one-page PDF document.
type Backend struct {
	doc       *gofpdf.Fpdf
	bounds    image.Rectangle
	translate func(string) string
	fill      color.RGBA
	text      color.RGBA
	marks     int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new PDF backend. Begin must be called before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a document with one width×height point page.
func (b *Backend) Begin(width, height int) error {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("kanvas", true)
	doc.AddPage()
	doc.SetFont(fontFamily, "", fontSize)

	b.doc = doc
	b.bounds = image.Rect(0, 0, width, height)
	b.translate = doc.UnicodeTranslatorFromDescriptor("")
	b.fill = color.RGBA{}
	b.text = color.RGBA{}
	b.marks = 0
	doc.SetFillColor(0, 0, 0)
	doc.SetTextColor(0, 0, 0)
	return doc.Error()
}

// End finalizes the document.
func (b *Backend) End() error {
	if b.doc == nil {
		return ErrNotStarted
	}
	if err := b.doc.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// SetPixel implements recording.Backend.
func (b *Backend) SetPixel(x, y int, c color.RGBA) {
	b.FillRect(x, y, 1, 1, c)
}

// FillRect implements recording.Backend. The rectangle is clipped to the page.
func (b *Backend) FillRect(x, y, width, height int, c color.RGBA) {
	r := image.Rect(x, y, x+width, y+height).Intersect(b.bounds)
	if r.Empty() {
		return
	}
	b.setFill(c)
	b.doc.Rect(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), "F")
}

// DrawText implements recording.Backend.
func (b *Backend) DrawText(s string, x, y int, c color.RGBA) {
	b.setText(c)
	i := 0
	for _, ch := range s {
		cx := float64(x+i*surface.CellWidth) + glyphInset
		b.doc.Text(cx, float64(y)+baseline, b.translate(string(ch)))
		i++
	}
}

// Mark adds a bookmark at the top of the page.
func (b *Backend) Mark(label string) {
	b.doc.Bookmark(label, 0, 0)
	b.marks++
}

// Marks returns the number of bookmarks written.
func (b *Backend) Marks() int {
	return b.marks
}

// WriteTo writes the PDF to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.doc == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.doc.Output(cw)
	return cw.n, err
}

// SaveToFile writes the PDF to path.
func (b *Backend) SaveToFile(path string) error {
	if b.doc == nil {
		return ErrNotStarted
	}
	return b.doc.OutputFileAndClose(path)
}

func (b *Backend) setFill(c color.RGBA) {
	if c == b.fill {
		return
	}
	b.fill = c
	b.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (b *Backend) setText(c color.RGBA) {
	if c == b.text {
		return
	}
	b.text = c
	b.doc.SetTextColor(int(c.R), int(c.G), int(c.B))
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
