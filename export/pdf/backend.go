// Package pdf provides a PDF backend for scene export built on gofpdf.
//
// The page has the size of the scene canvas, measured in points, so one
// canvas unit maps to one point. Code text is set in the Courier core font.
package pdf

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/pathedit"
	"github.com/gogpu/pathedit/export"
)

func init() {
	export.Register("pdf", ".pdf", func() export.Backend {
		return NewBackend()
	})
}

// Backend renders scenes to a single-page PDF document.
type Backend struct {
	doc    *gofpdf.Fpdf
	out    bytes.Buffer
	width  int
	height int
}

var (
	_ export.Backend       = (*Backend)(nil)
	_ export.WriterBackend = (*Backend)(nil)
	_ export.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new PDF backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a document with one page of width by height points.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.out.Reset()

	b.doc = gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	b.doc.SetMargins(0, 0, 0)
	b.doc.SetAutoPageBreak(false, 0)
	b.doc.SetCreator("pathedit", true)
	b.doc.AddPage()
	return b.doc.Error()
}

// End closes the document. After End, WriteTo and SaveToFile can be used.
func (b *Backend) End() error {
	if err := b.doc.Output(&b.out); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

// Clear paints the whole page with c.
func (b *Backend) Clear(c color.RGBA) {
	b.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
	b.doc.Rect(0, 0, float64(b.width), float64(b.height), "F")
}

// StrokePath strokes path with the given stroke.
func (b *Backend) StrokePath(path *pathedit.Path, stroke export.Stroke) {
	b.applyStroke(stroke)
	for _, seg := range path.Segments() {
		switch s := seg.(type) {
		case pathedit.MoveTo:
			b.doc.MoveTo(s.Point.X, s.Point.Y)
		case pathedit.LineTo:
			b.doc.LineTo(s.Point.X, s.Point.Y)
		case pathedit.QuadTo:
			b.doc.CurveTo(s.Control.X, s.Control.Y, s.Point.X, s.Point.Y)
		case pathedit.CubicTo:
			b.doc.CurveBezierCubicTo(s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.Point.X, s.Point.Y)
		case pathedit.Close:
			b.doc.ClosePath()
		}
	}
	b.doc.DrawPath("D")
}

// DrawLine strokes a straight line.
func (b *Backend) DrawLine(from, to pathedit.Point, stroke export.Stroke) {
	b.applyStroke(stroke)
	b.doc.Line(from.X, from.Y, to.X, to.Y)
}

// DrawMarker draws a white marker outlined with stroke.
func (b *Backend) DrawMarker(center pathedit.Point, shape export.MarkerShape, size float64, stroke export.Stroke) {
	b.applyStroke(export.Stroke{Width: stroke.Width, Color: stroke.Color})
	b.doc.SetFillColor(255, 255, 255)
	half := size / 2
	if shape == export.MarkerSquare {
		b.doc.Rect(center.X-half, center.Y-half, size, size, "FD")
		return
	}
	b.doc.Circle(center.X, center.Y, half, "FD")
}

// DrawText draws s with its baseline at y.
func (b *Backend) DrawText(s string, x, y, size float64, c color.RGBA) {
	b.doc.SetFont("Courier", "", size)
	b.doc.SetTextColor(int(c.R), int(c.G), int(c.B))
	b.doc.Text(x, y, s)
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(b.out.Bytes()).WriteTo(w)
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	return os.WriteFile(path, b.out.Bytes(), 0o644)
}

func (b *Backend) applyStroke(s export.Stroke) {
	b.doc.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
	b.doc.SetLineWidth(s.Width)
	b.doc.SetDashPattern(s.Dash, 0)
}
