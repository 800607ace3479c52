package pathedit

import (
	"errors"
	"go/parser"
	"testing"
)

func TestCode_Empty(t *testing.T) {
	if got := NewPath().Code(); got != EmptyPathCode {
		t.Errorf("Code() = %q, want %q", got, EmptyPathCode)
	}
	if got := NewDrawing().Code(); got != "gg.NewPath()" {
		t.Errorf("empty drawing Code() = %q", got)
	}
}

func TestCode_Golden(t *testing.T) {
	anchors := []Anchor{
		corner(Pt(0, 0)),
		smooth(Pt(100, 0), Pt(120, 20)),
		corner(Pt(200, 0)),
	}

	want := "func() *gg.Path {\n" +
		"\tp := gg.NewPath()\n" +
		"\tp.MoveTo(0, 0)\n" +
		"\tp.QuadraticTo(80, -20, 100, 0)\n" +
		"\tp.CubicTo(120, 20, 200, 0, 200, 0)\n" +
		"\treturn p\n" +
		"}()"

	if got := Synthesize(anchors).Code(); got != want {
		t.Errorf("Code() =\n%s\nwant\n%s", got, want)
	}
}

func TestCode_EverySegmentKind(t *testing.T) {
	p := NewPath()
	p.MoveTo(1.5, -2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)
	p.CubicTo(9, 10, 11, 12, 13, 14)
	p.Close()

	want := "func() *gg.Path {\n" +
		"\tp := gg.NewPath()\n" +
		"\tp.MoveTo(1.5, -2)\n" +
		"\tp.LineTo(3, 4)\n" +
		"\tp.QuadraticTo(5, 6, 7, 8)\n" +
		"\tp.CubicTo(9, 10, 11, 12, 13, 14)\n" +
		"\tp.Close()\n" +
		"\treturn p\n" +
		"}()"

	if got := p.Code(); got != want {
		t.Errorf("Code() =\n%s\nwant\n%s", got, want)
	}
}

func TestCode_IsValidGo(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(-10, 20, 30, -40, 50, 60)
	p.Close()

	if _, err := parser.ParseExpr(p.Code()); err != nil {
		t.Errorf("emitted code does not parse: %v\n%s", err, p.Code())
	}
}

func TestParseCode_RoundTrip(t *testing.T) {
	paths := map[string]*Path{
		"empty": NewPath(),
		"drawing": Synthesize([]Anchor{
			smooth(Pt(0, 0), Pt(30, -30)),
			asymmetric(Pt(100, 0), Pt(90, 40), Pt(120, 20)),
			corner(Pt(200, 0)),
			corner(Pt(300, 50)),
		}),
	}
	all := NewPath()
	all.MoveTo(-1, -2.25)
	all.LineTo(3, 4)
	all.QuadraticTo(5, 6, 7, 8)
	all.CubicTo(9, 10, 11, 12, 13, 14)
	all.Close()
	all.MoveTo(1e6, 0)
	paths["all kinds"] = all

	for name, p := range paths {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCode(p.Code())
			if err != nil {
				t.Fatalf("ParseCode: %v", err)
			}
			if !got.Equal(p) {
				t.Errorf("round trip mismatch:\n got %v\nwant %v", got.Segments(), p.Segments())
			}
		})
	}
}

func TestParseCode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not go", "p.MoveTo(("},
		{"plain call", "gg.NewPath(1)"},
		{"not called", "func() *gg.Path { p := gg.NewPath(); return p }"},
		{"no declaration", "func() *gg.Path { p.MoveTo(0, 0); return p }()"},
		{"no return", "func() *gg.Path { p := gg.NewPath(); p.MoveTo(0, 0) }()"},
		{"unknown method", "func() *gg.Path { p := gg.NewPath(); p.Arc(0, 0, 1, 0, 1); return p }()"},
		{"wrong arity", "func() *gg.Path { p := gg.NewPath(); p.LineTo(1); return p }()"},
		{"non numeric", "func() *gg.Path { p := gg.NewPath(); p.LineTo(x, 1); return p }()"},
		{"stray statement", "func() *gg.Path { p := gg.NewPath(); x := 1; return p }()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCode(tt.src)
			if !errors.Is(err, ErrBadCode) {
				t.Errorf("ParseCode(%q) error = %v, want ErrBadCode", tt.src, err)
			}
		})
	}
}
