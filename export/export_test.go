package export

import (
	"image/color"

	"github.com/gogpu/pathedit"
)

// mockBackend records the calls it receives as short strings.
type mockBackend struct {
	name     string
	calls    []string
	width    int
	height   int
	beginErr error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.calls = append(b.calls, "begin")
	b.width = width
	b.height = height
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.calls = append(b.calls, "end")
	return nil
}

func (b *mockBackend) Clear(_ color.RGBA) { b.calls = append(b.calls, "clear") }

func (b *mockBackend) StrokePath(_ *pathedit.Path, _ Stroke) {
	b.calls = append(b.calls, "path")
}

func (b *mockBackend) DrawLine(_, _ pathedit.Point, _ Stroke) {
	b.calls = append(b.calls, "line")
}

func (b *mockBackend) DrawMarker(_ pathedit.Point, shape MarkerShape, _ float64, s Stroke) {
	switch {
	case shape == MarkerSquare:
		b.calls = append(b.calls, "handle")
	case s.Color == DefaultStyle().Selected.Color:
		b.calls = append(b.calls, "anchor*")
	default:
		b.calls = append(b.calls, "anchor")
	}
}

func (b *mockBackend) DrawText(s string, _, _, _ float64, _ color.RGBA) {
	b.calls = append(b.calls, "text:"+s)
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]registration)
	byExt = make(map[string]string)
}
