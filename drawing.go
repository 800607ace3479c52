package pathedit

import (
	"fmt"
	"slices"
)

// Gesture is a placement gesture on the canvas: where the pointer went
// down and where it is now (or where it was released).
type Gesture struct {
	Start    Point
	Location Point
}

// Travel returns the distance covered by the gesture.
func (g Gesture) Travel() float64 {
	return g.Start.Distance(g.Location)
}

// Drawing is an ordered sequence of anchors plus a selection.
// Anchor order is the path traversal order.
//
// The zero value is not usable; create drawings with NewDrawing.
// A Drawing is not safe for concurrent use.
type Drawing struct {
	elements  []Anchor
	selection map[AnchorID]struct{}
	opts      *options
}

// NewDrawing creates an empty drawing.
func NewDrawing(opts ...Option) *Drawing {
	return newDrawing(buildOptions(opts))
}

func newDrawing(o *options) *Drawing {
	return &Drawing{
		elements:  make([]Anchor, 0, 16),
		selection: make(map[AnchorID]struct{}),
		opts:      o,
	}
}

// DragThreshold returns the travel above which a placement is a drag.
func (d *Drawing) DragThreshold() float64 {
	return d.opts.dragThreshold
}

// Update appends the anchor produced by a completed placement gesture.
// The anchor sits at the gesture start. When the gesture travelled further
// than the drag threshold its release location becomes the secondary handle.
func (d *Drawing) Update(g Gesture) AnchorID {
	id := d.place(d.opts.newID(), g)
	Logger().Debug("pathedit: anchor placed",
		"id", id, "point", g.Start.Round(), "travel", g.Travel(), "count", len(d.elements))
	return id
}

func (d *Drawing) place(id AnchorID, g Gesture) AnchorID {
	var secondary *Point
	if g.Travel() > d.opts.dragThreshold {
		loc := g.Location
		secondary = &loc
	}
	a := NewAnchor(id, g.Start, secondary)
	d.elements = append(d.elements, a)
	return a.id
}

// Select changes the selection. With shift pressed id is toggled in or out
// of the selection, otherwise the selection becomes exactly id.
func (d *Drawing) Select(id AnchorID, shiftPressed bool) {
	d.mustIndex(id)
	if !shiftPressed {
		clear(d.selection)
		d.selection[id] = struct{}{}
	} else if _, ok := d.selection[id]; ok {
		delete(d.selection, id)
	} else {
		d.selection[id] = struct{}{}
	}
	Logger().Debug("pathedit: selection changed", "id", id, "shift", shiftPressed, "selected", len(d.selection))
}

// Deselect empties the selection.
func (d *Drawing) Deselect() {
	clear(d.selection)
}

// Move drags the anchor id to a new position. The delta between to and the
// current position of id is applied to every selected anchor. The anchor id
// itself only moves if it is part of the selection.
func (d *Drawing) Move(id AnchorID, to Point) {
	delta := to.Sub(d.elements[d.mustIndex(id)].point)
	for i := range d.elements {
		if _, ok := d.selection[d.elements[i].id]; ok {
			d.elements[i].MoveBy(delta)
		}
	}
}

// Anchor returns the anchor with the given id for in-place mutation.
// The pointer stays valid until the next anchor is appended or removed.
//
// Anchor panics if id does not belong to the drawing; callers must only use
// ids obtained from this drawing.
func (d *Drawing) Anchor(id AnchorID) *Anchor {
	return &d.elements[d.mustIndex(id)]
}

// Index returns the position of id in the anchor sequence.
func (d *Drawing) Index(id AnchorID) (int, bool) {
	i := slices.IndexFunc(d.elements, func(a Anchor) bool { return a.id == id })
	return i, i >= 0
}

// Has reports whether id belongs to the drawing.
func (d *Drawing) Has(id AnchorID) bool {
	_, ok := d.Index(id)
	return ok
}

// Len returns the number of anchors.
func (d *Drawing) Len() int {
	return len(d.elements)
}

// Anchors returns a copy of the anchor sequence in path order.
func (d *Drawing) Anchors() []Anchor {
	return slices.Clone(d.elements)
}

// Last returns the id of the most recently appended anchor.
func (d *Drawing) Last() (AnchorID, bool) {
	if len(d.elements) == 0 {
		return AnchorID{}, false
	}
	return d.elements[len(d.elements)-1].id, true
}

// IsSelected reports whether id is part of the selection.
func (d *Drawing) IsSelected(id AnchorID) bool {
	_, ok := d.selection[id]
	return ok
}

// Selection returns the selected ids in path order.
func (d *Drawing) Selection() []AnchorID {
	ids := make([]AnchorID, 0, len(d.selection))
	for _, a := range d.elements {
		if _, ok := d.selection[a.id]; ok {
			ids = append(ids, a.id)
		}
	}
	return ids
}

// Remove deletes the anchor id and drops it from the selection.
// The order of the remaining anchors is kept. Remove panics on an unknown id.
func (d *Drawing) Remove(id AnchorID) {
	i := d.mustIndex(id)
	d.elements = slices.Delete(d.elements, i, i+1)
	delete(d.selection, id)
	Logger().Debug("pathedit: anchor removed", "id", id, "count", len(d.elements))
}

// Path synthesizes the geometric path through the anchors.
// It is recomputed on every call.
func (d *Drawing) Path() *Path {
	return Synthesize(d.elements)
}

// Code returns Go source that rebuilds the drawing's path.
func (d *Drawing) Code() string {
	return d.Path().Code()
}

// Clone returns a deep copy of the drawing sharing its configuration.
func (d *Drawing) Clone() *Drawing {
	c := newDrawing(d.opts)
	c.elements = append(c.elements, d.elements...)
	for id := range d.selection {
		c.selection[id] = struct{}{}
	}
	return c
}

// mustIndex resolves id or panics. An unknown id is a broken invariant in
// the caller, not a recoverable condition.
func (d *Drawing) mustIndex(id AnchorID) int {
	i, ok := d.Index(id)
	if !ok {
		panic(fmt.Sprintf("pathedit: unknown anchor %s", id))
	}
	return i
}
