// Package svg provides an SVG backend for scene export.
//
// Every drawing call becomes one SVG element. Path segments map one to one
// onto SVG path commands, so the output keeps the exact curve geometry.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/pathedit"
	"github.com/gogpu/pathedit/export"
)

func init() {
	export.Register("svg", ".svg", func() export.Backend {
		return NewBackend()
	})
}

// Backend renders scenes to an SVG document.
type Backend struct {
	buf    bytes.Buffer
	width  int
	height int
}

var (
	_ export.Backend       = (*Backend)(nil)
	_ export.WriterBackend = (*Backend)(nil)
	_ export.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a document with a width by height view box.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.buf.Reset()
	fmt.Fprintf(&b.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	b.buf.WriteString("</svg>\n")
	return nil
}

// Clear paints the view box with c.
func (b *Backend) Clear(c color.RGBA) {
	fmt.Fprintf(&b.buf, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
		b.width, b.height, hex(c))
}

// StrokePath emits path as a single path element.
func (b *Backend) StrokePath(path *pathedit.Path, stroke export.Stroke) {
	fmt.Fprintf(&b.buf, `<path d="%s" fill="none"%s/>`+"\n", PathData(path), strokeAttrs(stroke))
}

// DrawLine emits a line element.
func (b *Backend) DrawLine(from, to pathedit.Point, stroke export.Stroke) {
	fmt.Fprintf(&b.buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
		num(from.X), num(from.Y), num(to.X), num(to.Y), strokeAttrs(stroke))
}

// DrawMarker emits a white circle or square outlined with stroke.
func (b *Backend) DrawMarker(center pathedit.Point, shape export.MarkerShape, size float64, stroke export.Stroke) {
	attrs := strokeAttrs(export.Stroke{Width: stroke.Width, Color: stroke.Color})
	half := size / 2
	if shape == export.MarkerSquare {
		fmt.Fprintf(&b.buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="#ffffff"%s/>`+"\n",
			num(center.X-half), num(center.Y-half), num(size), num(size), attrs)
		return
	}
	fmt.Fprintf(&b.buf, `<circle cx="%s" cy="%s" r="%s" fill="#ffffff"%s/>`+"\n",
		num(center.X), num(center.Y), num(half), attrs)
}

// DrawText emits a monospace text element with its baseline at y.
func (b *Backend) DrawText(s string, x, y, size float64, c color.RGBA) {
	var esc bytes.Buffer
	_ = xml.EscapeText(&esc, []byte(s))
	fmt.Fprintf(&b.buf,
		`<text x="%s" y="%s" font-family="monospace" font-size="%s" fill="%s" xml:space="preserve">%s</text>`+"\n",
		num(x), num(y), num(size), hex(c), esc.String())
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(b.buf.Bytes()).WriteTo(w)
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}

// PathData returns the SVG path data for path, for example
// "M10 20 C30 0 50 0 70 20".
func PathData(path *pathedit.Path) string {
	var sb strings.Builder
	for i, seg := range path.Segments() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s := seg.(type) {
		case pathedit.MoveTo:
			sb.WriteString("M" + pair(s.Point))
		case pathedit.LineTo:
			sb.WriteString("L" + pair(s.Point))
		case pathedit.QuadTo:
			sb.WriteString("Q" + pair(s.Control) + " " + pair(s.Point))
		case pathedit.CubicTo:
			sb.WriteString("C" + pair(s.Control1) + " " + pair(s.Control2) + " " + pair(s.Point))
		case pathedit.Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func strokeAttrs(s export.Stroke) string {
	attrs := fmt.Sprintf(` stroke="%s" stroke-width="%s"`, hex(s.Color), num(s.Width))
	if len(s.Dash) > 0 {
		dash := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			dash[i] = num(d)
		}
		attrs += ` stroke-dasharray="` + strings.Join(dash, " ") + `"`
	}
	if s.Color.A != 0 && s.Color.A != 255 {
		attrs += ` stroke-opacity="` + num(float64(s.Color.A)/255) + `"`
	}
	return attrs
}

func hex(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cf.Hex()
}

func pair(p pathedit.Point) string {
	return num(p.X) + " " + num(p.Y)
}

// num formats v with at most two decimals.
func num(v float64) string {
	// Adding zero turns a negative zero into zero.
	return strconv.FormatFloat(math.Round(v*100)/100+0, 'f', -1, 64)
}
