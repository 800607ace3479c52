package export

import (
	"image/color"
	"io"

	"github.com/gogpu/pathedit"
)

// MarkerShape selects how a point marker is drawn.
type MarkerShape uint8

const (
	// MarkerCircle marks an anchor.
	MarkerCircle MarkerShape = iota
	// MarkerSquare marks a handle.
	MarkerSquare
)

// Stroke describes how lines and outlines are drawn.
type Stroke struct {
	Width float64
	Color color.RGBA
	Dash  []float64
}

// Backend is the interface that all export backends must implement.
// Backends receive high-level drawing commands and translate them to
// their output format.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using export.Register(), naming the file
//     extension it writes
//  2. Accept drawing calls only between Begin and End
//  3. Use canvas coordinates: origin top-left, y down, one unit per pixel
//     or point
type Backend interface {
	// Begin initializes the backend for a canvas of the given size.
	Begin(width, height int) error

	// End finalizes the output. After End, output methods can be used.
	End() error

	// Clear fills the whole canvas with c.
	Clear(c color.RGBA)

	// StrokePath strokes the path.
	StrokePath(path *pathedit.Path, stroke Stroke)

	// DrawLine strokes a straight line.
	DrawLine(from, to pathedit.Point, stroke Stroke)

	// DrawMarker draws a white-filled marker of the given size centered
	// at center, outlined with stroke.
	DrawMarker(center pathedit.Point, shape MarkerShape, size float64, stroke Stroke)

	// DrawText draws one line of text with its baseline at y.
	DrawText(s string, x, y, size float64, c color.RGBA)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. It must only be called
	// after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to path. It must only be
	// called after End.
	SaveToFile(path string) error
}

// countingWriter counts bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// CountingWriter wraps w and reports the bytes written through it.
// Backends use it to implement WriteTo on top of encoders that only
// return an error.
func CountingWriter(w io.Writer) (io.Writer, func() int64) {
	cw := &countingWriter{w: w}
	return cw, func() int64 { return cw.n }
}
