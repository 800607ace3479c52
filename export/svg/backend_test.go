package svg

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gogpu/pathedit"
	"github.com/gogpu/pathedit/export"
)

func TestBackendRegistration(t *testing.T) {
	backend, err := export.NewBackend("svg")
	if err != nil {
		t.Fatalf("failed to create svg backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *svg.Backend")
	}
	if got, ok := export.BackendForPath("drawing.SVG"); !ok || got != "svg" {
		t.Errorf("BackendForPath(drawing.SVG) = %q, %v; want svg", got, ok)
	}
}

func TestPathData(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *pathedit.Path)
		want  string
	}{
		{"empty", func(*pathedit.Path) {}, ""},
		{"line", func(p *pathedit.Path) {
			p.MoveTo(0, 0)
			p.LineTo(10, -5)
		}, "M0 0 L10 -5"},
		{"curves", func(p *pathedit.Path) {
			p.MoveTo(1, 2)
			p.QuadraticTo(3, 4, 5, 6)
			p.CubicTo(7, 8, 9, 10, 11.5, 12)
			p.Close()
		}, "M1 2 Q3 4 5 6 C7 8 9 10 11.5 12 Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pathedit.NewPath()
			tt.build(p)
			if got := PathData(p); got != tt.want {
				t.Errorf("PathData = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.001, "0"},
		{16.799999999999997, "16.8"},
		{2.5, "2.5"},
		{-40, "-40"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStrokeAttrs(t *testing.T) {
	got := strokeAttrs(export.Stroke{
		Width: 1,
		Color: color.RGBA{R: 160, G: 160, B: 160, A: 255},
		Dash:  []float64{4, 2},
	})
	want := ` stroke="#a0a0a0" stroke-width="1" stroke-dasharray="4 2"`
	if got != want {
		t.Errorf("strokeAttrs = %q, want %q", got, want)
	}
	if hex(color.RGBA{}) != "none" {
		t.Errorf("transparent color = %q, want none", hex(color.RGBA{}))
	}
}

func renderSample(t *testing.T, showCode bool) []byte {
	t.Helper()
	ed := pathedit.NewEditor()
	ed.PlaceOrDragAnchor(pathedit.Pt(10, 50), pathedit.Pt(10, 50))
	ed.PlaceOrDragAnchor(pathedit.Pt(90, 50), pathedit.Pt(90, 50))

	s := export.SceneOf(ed, 100, 100)
	s.Style.ShowCode = showCode

	backend, err := export.NewBackend("svg")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if err := export.Render(backend, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var buf bytes.Buffer
	if _, err := backend.(export.WriterBackend).WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	return buf.Bytes()
}

func TestBackendDocument(t *testing.T) {
	doc := string(renderSample(t, true))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">`,
		`<path d="M10 50 L90 50" fill="none" stroke="#000000" stroke-width="2"/>`,
		`<text x="12" y="24" font-family="monospace" font-size="12"`,
		`p.MoveTo(10, 50)`,
		"</svg>\n",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks %q:\n%s", want, doc)
		}
	}
	if got := strings.Count(doc, "<circle"); got != 2 {
		t.Errorf("found %d anchor markers, want 2", got)
	}
}

// TestBackendParses feeds the document to an independent SVG renderer and
// checks that the stroked path shows up in the rasterized image.
func TestBackendParses(t *testing.T) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(renderSample(t, false)), oksvg.IgnoreErrorMode)
	if err != nil {
		t.Fatalf("oksvg rejected the document: %v", err)
	}

	const w, h = 100, 100
	icon.SetTarget(0, 0, w, h)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	// Midway along the straight segment from (10,50) to (90,50).
	px := img.RGBAAt(30, 50)
	if px.R > 100 || px.G > 100 || px.B > 100 {
		t.Errorf("pixel on the path = %v, expected dark", px)
	}
	bg := img.RGBAAt(50, 90)
	if bg.R < 200 {
		t.Errorf("background pixel = %v, expected white", bg)
	}
}
