package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/pathedit"
)

// Style holds the visual parameters of a rendered scene.
type Style struct {
	Background color.RGBA

	Path     Stroke
	Guide    Stroke
	Marker   Stroke
	Selected Stroke

	AnchorSize float64
	HandleSize float64

	// ShowCode draws the code text under the canvas contents.
	ShowCode  bool
	CodeSize  float64
	CodeColor color.RGBA
	CodeInset float64
}

// DefaultStyle returns the editor look, a black path on white with blue
// selected anchors.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Path:       Stroke{Width: 2, Color: color.RGBA{A: 255}},
		Guide:      Stroke{Width: 1, Color: color.RGBA{R: 160, G: 160, B: 160, A: 255}, Dash: []float64{4, 4}},
		Marker:     Stroke{Width: 1, Color: color.RGBA{R: 64, G: 64, B: 64, A: 255}},
		Selected:   Stroke{Width: 2, Color: color.RGBA{R: 0, G: 122, B: 255, A: 255}},
		AnchorSize: 8,
		HandleSize: 6,
		CodeSize:   12,
		CodeColor:  color.RGBA{R: 40, G: 40, B: 40, A: 255},
		CodeInset:  12,
	}
}

// Scene is everything drawn for one frame of an editing session.
type Scene struct {
	Width, Height int

	Path    *pathedit.Path
	Anchors []pathedit.AnchorInfo
	Code    string

	Style Style
}

// SceneOf captures the live state of an editor, including any gesture in
// progress, with the default style.
func SceneOf(ed *pathedit.Editor, width, height int) Scene {
	return Scene{
		Width:   width,
		Height:  height,
		Path:    ed.CurrentPath(),
		Anchors: ed.AnchorPositions(),
		Code:    ed.SourceCode(),
		Style:   DefaultStyle(),
	}
}

// Render draws s on b: the path first, then guides and handles of the
// anchors that show their controls, then every anchor marker and finally
// the code text when enabled.
func Render(b Backend, s Scene) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("export: invalid canvas size %dx%d", s.Width, s.Height)
	}
	if err := b.Begin(s.Width, s.Height); err != nil {
		return fmt.Errorf("export: begin: %w", err)
	}

	st := s.Style
	b.Clear(st.Background)

	if s.Path != nil && !s.Path.IsEmpty() {
		b.StrokePath(s.Path, st.Path)
	}

	for _, a := range s.Anchors {
		if !a.ShowControls || !a.HasControls {
			continue
		}
		b.DrawLine(a.Point, a.Primary, st.Guide)
		b.DrawLine(a.Point, a.Secondary, st.Guide)
		b.DrawMarker(a.Primary, MarkerSquare, st.HandleSize, st.Marker)
		b.DrawMarker(a.Secondary, MarkerSquare, st.HandleSize, st.Marker)
	}

	for _, a := range s.Anchors {
		stroke := st.Marker
		if a.Selected {
			stroke = st.Selected
		}
		b.DrawMarker(a.Point, MarkerCircle, st.AnchorSize, stroke)
	}

	if st.ShowCode && s.Code != "" {
		lineHeight := st.CodeSize * 1.4
		y := st.CodeInset + st.CodeSize
		for _, line := range strings.Split(s.Code, "\n") {
			b.DrawText(strings.ReplaceAll(line, "\t", "    "), st.CodeInset, y, st.CodeSize, st.CodeColor)
			y += lineHeight
		}
	}

	if err := b.End(); err != nil {
		return fmt.Errorf("export: end: %w", err)
	}
	pathedit.Logger().Debug("export: scene rendered",
		"width", s.Width, "height", s.Height, "anchors", len(s.Anchors))
	return nil
}
