// Package raster provides a PNG backend for scene export.
// It renders scenes to pixel images using gg.Context.
//
// Code text is drawn with the Go Mono font. When the font cannot be loaded
// the text is skipped and a warning is logged.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/pathedit/export/raster"
//
//	// Create via registry
//	backend, _ := export.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	export.Render(backend, scene)
//	backend.SaveToFile("drawing.png")
package raster

import (
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/pathedit"
	"github.com/gogpu/pathedit/export"
)

func init() {
	export.Register("raster", ".png", func() export.Backend {
		return NewBackend()
	})
}

// Backend renders scenes to a pixel image using gg.Context.
// It implements export.Backend, export.WriterBackend and
// export.FileBackend.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int
}

// Ensure Backend implements all required interfaces.
var (
	_ export.Backend       = (*Backend)(nil)
	_ export.WriterBackend = (*Backend)(nil)
	_ export.FileBackend   = (*Backend)(nil)
)

// The font source is parsed once and shared by all backends.
var (
	monoOnce   sync.Once
	monoSource *text.FontSource
)

func monoFont() *text.FontSource {
	monoOnce.Do(func() {
		src, err := text.NewFontSource(gomono.TTF)
		if err != nil {
			pathedit.Logger().Warn("raster: code font unavailable", "err", err)
			return
		}
		monoSource = src
	})
	return monoSource
}

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin initializes the backend for rendering at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	return nil
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	return nil
}

// Clear fills the canvas with c.
func (b *Backend) Clear(c color.RGBA) {
	b.ctx.ClearWithColor(gg.FromColor(c))
}

// StrokePath strokes path with the given stroke.
func (b *Backend) StrokePath(path *pathedit.Path, stroke export.Stroke) {
	b.ctx.ClearPath()
	for _, seg := range path.Segments() {
		switch s := seg.(type) {
		case pathedit.MoveTo:
			b.ctx.MoveTo(s.Point.X, s.Point.Y)
		case pathedit.LineTo:
			b.ctx.LineTo(s.Point.X, s.Point.Y)
		case pathedit.QuadTo:
			b.ctx.QuadraticTo(s.Control.X, s.Control.Y, s.Point.X, s.Point.Y)
		case pathedit.CubicTo:
			b.ctx.CubicTo(s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.Point.X, s.Point.Y)
		case pathedit.Close:
			b.ctx.ClosePath()
		}
	}
	b.stroke(stroke)
}

// DrawLine strokes a straight line from one point to another.
func (b *Backend) DrawLine(from, to pathedit.Point, stroke export.Stroke) {
	b.ctx.ClearPath()
	b.ctx.DrawLine(from.X, from.Y, to.X, to.Y)
	b.stroke(stroke)
}

// DrawMarker draws a white marker outlined with stroke.
func (b *Backend) DrawMarker(center pathedit.Point, shape export.MarkerShape, size float64, stroke export.Stroke) {
	half := size / 2
	b.ctx.ClearPath()
	if shape == export.MarkerSquare {
		b.ctx.DrawRectangle(center.X-half, center.Y-half, size, size)
	} else {
		b.ctx.DrawCircle(center.X, center.Y, half)
	}
	b.ctx.SetColor(color.White)
	_ = b.ctx.FillPreserve()
	b.stroke(export.Stroke{Width: stroke.Width, Color: stroke.Color})
}

// DrawText draws s with its baseline at y using the Go Mono font.
func (b *Backend) DrawText(s string, x, y, size float64, c color.RGBA) {
	src := monoFont()
	if src == nil {
		return
	}
	b.ctx.SetFont(src.Face(size))
	b.ctx.SetColor(c)
	b.ctx.DrawString(s, x, y)
}

// WriteTo writes the rendered image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw, n := export.CountingWriter(w)
	err := b.ctx.EncodePNG(cw)
	return n(), err
}

// SaveToFile saves the rendered image as PNG to path.
func (b *Backend) SaveToFile(path string) error {
	return b.ctx.SavePNG(path)
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	return b.ctx.Image()
}

// Width returns the canvas width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	return b.height
}

func (b *Backend) stroke(s export.Stroke) {
	b.ctx.SetColor(s.Color)
	b.ctx.SetLineWidth(s.Width)
	if len(s.Dash) > 0 {
		b.ctx.SetDash(s.Dash...)
	} else {
		b.ctx.ClearDash()
	}
	_ = b.ctx.Stroke()
}
