package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/pathedit"
	"github.com/gogpu/pathedit/export"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestBackendRegistration(t *testing.T) {
	if got, ok := export.BackendForPath("drawing.png"); !ok || got != "raster" {
		t.Errorf("BackendForPath(drawing.png) = %q, %v; want raster", got, ok)
	}

	if !export.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}

	backend, err := export.NewBackend("raster")
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(120, 80); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 120 || backend.Height() != 80 {
		t.Errorf("size = %dx%d, want 120x80", backend.Width(), backend.Height())
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	bounds := backend.Image().Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 80 {
		t.Errorf("Image bounds = %v, want 120x80", bounds)
	}
}

func pixelAt(t *testing.T, b *Backend, x, y int) color.RGBA {
	t.Helper()
	rgba, ok := b.Image().(*image.RGBA)
	if !ok {
		t.Fatal("expected *image.RGBA")
	}
	return rgba.RGBAAt(x, y)
}

func TestBackendStrokePath(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.Clear(white)

	path := pathedit.NewPath()
	path.MoveTo(10, 50)
	path.LineTo(90, 50)
	backend.StrokePath(path, export.Stroke{Width: 6, Color: red})

	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	on := pixelAt(t, backend, 50, 50)
	if on.R < 200 || on.G > 80 || on.B > 80 {
		t.Errorf("pixel on the line = %v, expected red", on)
	}
	off := pixelAt(t, backend, 50, 10)
	if off.R < 250 || off.G < 250 || off.B < 250 {
		t.Errorf("pixel off the line = %v, expected white", off)
	}
}

func TestBackendDrawMarker(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	backend.Clear(red)
	backend.DrawMarker(pathedit.Pt(50, 50), export.MarkerSquare, 40, export.Stroke{Width: 1, Color: red})
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	// Markers are filled white.
	in := pixelAt(t, backend, 50, 50)
	if in.R < 250 || in.G < 250 || in.B < 250 {
		t.Errorf("pixel inside marker = %v, expected white", in)
	}
}

func TestBackendWriteTo(t *testing.T) {
	ed := pathedit.NewEditor()
	ed.PlaceOrDragAnchor(pathedit.Pt(10, 10), pathedit.Pt(10, 10))
	ed.PlaceOrDragAnchor(pathedit.Pt(60, 40), pathedit.Pt(80, 20))

	scene := export.SceneOf(ed, 64, 48)
	scene.Style.ShowCode = true

	backend := NewBackend()
	if err := export.Render(backend, scene); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("decoded bounds = %v, want 64x48", img.Bounds())
	}
}
