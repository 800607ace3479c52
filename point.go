package pathedit

import "math"

// Point represents a 2D point or vector in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Mirror reflects p through about, so that about is the midpoint of
// p and the result.
func (p Point) Mirror(about Point) Point {
	return Point{X: 2*about.X - p.X, Y: 2*about.Y - p.Y}
}

// Round returns the point with both coordinates rounded to the nearest
// whole unit, halves away from zero.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// IsIntegral reports whether both coordinates are whole numbers.
func (p Point) IsIntegral() bool {
	return p.X == math.Trunc(p.X) && p.Y == math.Trunc(p.Y)
}
