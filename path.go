package pathedit

import "math"

// Segment represents a single drawing primitive in a path.
type Segment interface {
	isSegment()

	// End returns the point the segment finishes at. Close reports
	// false because its end is the start of the subpath.
	End() (Point, bool)
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// End returns the target point.
func (s MoveTo) End() (Point, bool) { return s.Point, true }

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// End returns the target point.
func (s LineTo) End() (Point, bool) { return s.Point, true }

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isSegment() {}

// End returns the target point.
func (s QuadTo) End() (Point, bool) { return s.Point, true }

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// End returns the target point.
func (s CubicTo) End() (Point, bool) { return s.Point, true }

// Close closes the current subpath.
type Close struct{}

func (Close) isSegment() {}

// End reports no explicit end point.
func (Close) End() (Point, bool) { return Point{}, false }

// Path is a sequence of segments with absolute coordinates.
type Path struct {
	segments []Segment
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]Segment, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.segments = append(p.segments, MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.segments = append(p.segments, LineTo{Point: Pt(x, y)})
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.segments = append(p.segments, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segments = append(p.segments, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.segments = append(p.segments, Close{})
}

// Segments returns the path segments.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.segments = append(result.segments, p.segments...)
	return result
}

// Equal reports whether both paths hold the same segments in the same order.
func (p *Path) Equal(q *Path) bool {
	if len(p.segments) != len(q.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != q.segments[i] {
			return false
		}
	}
	return true
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Bounds returns the box enclosing every point and control point of the
// path. The control polygon contains the curve, so the box does too.
func (p *Path) Bounds() (Rect, bool) {
	r := Rect{
		Min: Pt(math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1)),
	}
	found := false
	add := func(q Point) {
		r.Min.X = math.Min(r.Min.X, q.X)
		r.Min.Y = math.Min(r.Min.Y, q.Y)
		r.Max.X = math.Max(r.Max.X, q.X)
		r.Max.Y = math.Max(r.Max.Y, q.Y)
		found = true
	}
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			add(s.Point)
		case LineTo:
			add(s.Point)
		case QuadTo:
			add(s.Control)
			add(s.Point)
		case CubicTo:
			add(s.Control1)
			add(s.Control2)
			add(s.Point)
		}
	}
	if !found {
		return Rect{}, false
	}
	return r, true
}
