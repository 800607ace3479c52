package pathedit

import "github.com/google/uuid"

// AnchorID identifies an anchor for the lifetime of its Drawing.
// IDs are never reused.
type AnchorID = uuid.UUID

// AnchorKind classifies the control geometry of an anchor.
type AnchorKind uint8

const (
	// Corner is an anchor without handles. Neighbouring segments meet it
	// with a straight tangent of their own.
	Corner AnchorKind = iota

	// Smooth is an anchor with only a secondary handle set. The primary
	// handle is its mirror about the anchor point.
	Smooth

	// Asymmetric is an anchor whose primary handle was set independently.
	Asymmetric
)

var anchorKindNames = [...]string{
	Corner:     "Corner",
	Smooth:     "Smooth",
	Asymmetric: "Asymmetric",
}

// String returns the name of the kind.
func (k AnchorKind) String() string {
	if int(k) < len(anchorKindNames) {
		return anchorKindNames[k]
	}
	return "Unknown"
}

// Anchor is a single editable point on the path with optional Bézier
// handles. All stored positions are rounded to whole units.
//
// The primary handle arrives at the anchor, the secondary handle departs
// from it. Handles are absolute canvas positions, not offsets.
type Anchor struct {
	id    AnchorID
	point Point

	primary    Point
	hasPrimary bool

	secondary    Point
	hasSecondary bool
}

// NewAnchor creates an anchor at point. If secondary is non-nil the anchor
// is created as a smooth point with that outgoing handle.
func NewAnchor(id AnchorID, point Point, secondary *Point) Anchor {
	a := Anchor{id: id, point: point.Round()}
	if secondary != nil {
		a.setSecondary(*secondary)
	}
	return a
}

// ID returns the anchor identity.
func (a *Anchor) ID() AnchorID {
	return a.id
}

// Point returns the anchor position.
func (a *Anchor) Point() Point {
	return a.point
}

// ExplicitPrimary returns the independently set primary handle, if any.
func (a *Anchor) ExplicitPrimary() (Point, bool) {
	return a.primary, a.hasPrimary
}

// Secondary returns the outgoing handle, if any.
func (a *Anchor) Secondary() (Point, bool) {
	return a.secondary, a.hasSecondary
}

// Primary returns the effective incoming handle: the explicit primary if
// set, otherwise the secondary handle mirrored about the anchor point.
func (a *Anchor) Primary() (Point, bool) {
	if a.hasPrimary {
		return a.primary, true
	}
	if a.hasSecondary {
		return a.secondary.Mirror(a.point), true
	}
	return Point{}, false
}

// ControlPair returns both handles when the anchor has a secondary handle
// and an effective primary.
func (a *Anchor) ControlPair() (primary, secondary Point, ok bool) {
	if !a.hasSecondary {
		return Point{}, Point{}, false
	}
	primary, ok = a.Primary()
	if !ok {
		return Point{}, Point{}, false
	}
	return primary, a.secondary, true
}

// Kind reports how the anchor's handles relate to each other.
func (a *Anchor) Kind() AnchorKind {
	switch {
	case a.hasPrimary:
		return Asymmetric
	case a.hasSecondary:
		return Smooth
	default:
		return Corner
	}
}

// MoveTo moves the anchor to a new position. Both handles follow by the
// same delta so the handle shape relative to the anchor is kept.
func (a *Anchor) MoveTo(to Point) {
	delta := to.Sub(a.point)
	a.point = to.Round()
	if a.hasPrimary {
		a.primary = a.primary.Add(delta).Round()
	}
	if a.hasSecondary {
		a.secondary = a.secondary.Add(delta).Round()
	}
}

// MoveBy translates the anchor and its handles by delta.
func (a *Anchor) MoveBy(delta Point) {
	a.MoveTo(a.point.Add(delta))
}

// MoveControlPoint1 drags the primary handle. With option held, or when the
// anchor is already asymmetric, the primary handle is set directly.
// Otherwise the anchor stays smooth and the secondary handle is moved to
// the mirror of to.
func (a *Anchor) MoveControlPoint1(to Point, option bool) {
	if option || a.hasPrimary {
		a.setPrimary(to)
		return
	}
	a.setSecondary(to.Mirror(a.point))
}

// MoveControlPoint2 drags the secondary handle. Holding option on a smooth
// anchor first freezes the mirrored primary handle in place, turning the
// anchor into an asymmetric one.
func (a *Anchor) MoveControlPoint2(to Point, option bool) {
	if option && !a.hasPrimary {
		if p, ok := a.Primary(); ok {
			a.setPrimary(p)
		}
	}
	a.setSecondary(to)
}

// ResetControlPoints removes both handles, making the anchor a corner.
func (a *Anchor) ResetControlPoints() {
	a.primary, a.hasPrimary = Point{}, false
	a.secondary, a.hasSecondary = Point{}, false
}

// SetCoupledControlPoints sets the secondary handle and drops any explicit
// primary, forcing the anchor back to smooth.
func (a *Anchor) SetCoupledControlPoints(to Point) {
	a.primary, a.hasPrimary = Point{}, false
	a.setSecondary(to)
}

func (a *Anchor) setPrimary(p Point) {
	a.primary, a.hasPrimary = p.Round(), true
}

func (a *Anchor) setSecondary(p Point) {
	a.secondary, a.hasSecondary = p.Round(), true
}
