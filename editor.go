package pathedit

import "github.com/google/uuid"

// PendingAnchorID returns the id of the tentative anchor of a gesture in
// progress, as reported by the live readers of an Editor. It is the nil
// UUID, which no committed anchor may carry.
func PendingAnchorID() AnchorID {
	return uuid.Nil
}

// AnchorInfo is a read-only snapshot of one anchor for overlay rendering.
type AnchorInfo struct {
	ID    AnchorID
	Index int
	Point Point
	Kind  AnchorKind

	// Primary and Secondary are valid when HasControls is set.
	Primary     Point
	Secondary   Point
	HasControls bool

	Selected bool

	// ShowControls is set for anchors whose handles should be drawn:
	// selected anchors, or the last anchor while nothing is selected.
	ShowControls bool
}

// Editor is a single editing session. It owns the committed drawing and
// the gesture currently in progress, if any.
//
// The interaction layer feeds it pointer events through the entry points
// below and reads back the live path, the code text and overlay state.
// An Editor is not safe for concurrent use.
type Editor struct {
	drawing *Drawing

	gesture   Gesture
	inGesture bool
}

// NewEditor creates an editing session with an empty drawing.
func NewEditor(opts ...Option) *Editor {
	return &Editor{drawing: NewDrawing(opts...)}
}

// BeginGesture starts a placement gesture at start. Until EndGesture the
// tentative anchor only shows up in the live readers.
func (e *Editor) BeginGesture(start Point) {
	e.gesture = Gesture{Start: start, Location: start}
	e.inGesture = true
}

// UpdateGesture moves the pointer of the gesture in progress.
// It is a no-op when no gesture is active.
func (e *Editor) UpdateGesture(location Point) {
	if e.inGesture {
		e.gesture.Location = location
	}
}

// EndGesture commits the gesture in progress and returns the new anchor.
// It reports false when no gesture was active.
func (e *Editor) EndGesture() (AnchorID, bool) {
	if !e.inGesture {
		return AnchorID{}, false
	}
	e.inGesture = false
	return e.drawing.Update(e.gesture), true
}

// CancelGesture drops the gesture in progress without committing it.
func (e *Editor) CancelGesture() {
	e.inGesture = false
}

// Gesture returns the gesture in progress.
func (e *Editor) Gesture() (Gesture, bool) {
	return e.gesture, e.inGesture
}

// PlaceOrDragAnchor commits a complete placement gesture from start to end.
func (e *Editor) PlaceOrDragAnchor(start, end Point) AnchorID {
	return e.drawing.Update(Gesture{Start: start, Location: end})
}

// SelectAnchor clicks an anchor, extending the selection with shift.
func (e *Editor) SelectAnchor(id AnchorID, shiftPressed bool) {
	e.drawing.Select(id, shiftPressed)
}

// ClearSelection deselects all anchors.
func (e *Editor) ClearSelection() {
	e.drawing.Deselect()
}

// DragAnchorBody drags an anchor to a new location. An unselected anchor
// becomes the only selection first, so that it moves with the drag; a
// selected one moves together with the rest of the selection.
func (e *Editor) DragAnchorBody(id AnchorID, to Point) {
	if !e.drawing.IsSelected(id) {
		e.drawing.Select(id, false)
	}
	e.drawing.Move(id, to)
}

// DragPrimaryHandle drags the incoming handle of an anchor.
func (e *Editor) DragPrimaryHandle(id AnchorID, to Point, optionHeld bool) {
	e.drawing.Anchor(id).MoveControlPoint1(to, optionHeld)
}

// DragSecondaryHandle drags the outgoing handle of an anchor.
func (e *Editor) DragSecondaryHandle(id AnchorID, to Point, optionHeld bool) {
	e.drawing.Anchor(id).MoveControlPoint2(to, optionHeld)
}

// ResetAnchorHandles turns an anchor into a plain corner.
func (e *Editor) ResetAnchorHandles(id AnchorID) {
	e.drawing.Anchor(id).ResetControlPoints()
}

// CoupleAnchorHandles pulls a symmetric handle pair out of an anchor.
func (e *Editor) CoupleAnchorHandles(id AnchorID, to Point) {
	e.drawing.Anchor(id).SetCoupledControlPoints(to)
}

// DeleteAnchor removes an anchor from the drawing and the selection.
func (e *Editor) DeleteAnchor(id AnchorID) {
	e.drawing.Remove(id)
}

// live returns the drawing including the gesture in progress. The
// committed drawing is only returned when no gesture is active, so callers
// must not mutate the result.
func (e *Editor) live() *Drawing {
	if !e.inGesture {
		return e.drawing
	}
	c := e.drawing.Clone()
	c.place(PendingAnchorID(), e.gesture)
	return c
}

// CurrentPath returns the path including the gesture in progress.
func (e *Editor) CurrentPath() *Path {
	return e.live().Path()
}

// CommittedPath returns the path of the committed anchors only.
func (e *Editor) CommittedPath() *Path {
	return e.drawing.Path()
}

// SourceCode returns the code text for the current path.
func (e *Editor) SourceCode() string {
	return e.CurrentPath().Code()
}

// Selection returns the selected anchor ids in path order.
func (e *Editor) Selection() []AnchorID {
	return e.drawing.Selection()
}

// Has reports whether id belongs to the committed drawing.
func (e *Editor) Has(id AnchorID) bool {
	return e.drawing.Has(id)
}

// Drawing returns a copy of the committed drawing.
func (e *Editor) Drawing() *Drawing {
	return e.drawing.Clone()
}

// AnchorPositions returns overlay state for every anchor of the live
// drawing, in path order.
func (e *Editor) AnchorPositions() []AnchorInfo {
	d := e.live()
	last, _ := d.Last()
	noSelection := len(d.selection) == 0

	infos := make([]AnchorInfo, 0, len(d.elements))
	for i := range d.elements {
		a := &d.elements[i]
		info := AnchorInfo{
			ID:       a.id,
			Index:    i,
			Point:    a.point,
			Kind:     a.Kind(),
			Selected: d.IsSelected(a.id),
		}
		info.Primary, info.Secondary, info.HasControls = a.ControlPair()
		info.ShowControls = info.Selected || (noSelection && a.id == last)
		infos = append(infos, info)
	}
	return infos
}
