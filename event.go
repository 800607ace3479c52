package pathedit

import "fmt"

// Event is a discrete interaction delivered to an Editor.
// Events are the explicit form of the Editor entry points, suitable for
// queuing, logging and replay.
type Event interface {
	apply(e *Editor)
	fmt.Stringer
}

// Handle selects one of the two Bézier handles of an anchor.
type Handle uint8

const (
	// PrimaryHandle is the incoming handle.
	PrimaryHandle Handle = iota
	// SecondaryHandle is the outgoing handle.
	SecondaryHandle
)

// String returns the handle name.
func (h Handle) String() string {
	if h == PrimaryHandle {
		return "primary"
	}
	return "secondary"
}

// PlaceAnchor is a completed placement gesture on empty canvas.
type PlaceAnchor struct {
	Start, End Point
}

// SelectAnchor is a click on an anchor.
type SelectAnchor struct {
	ID    AnchorID
	Shift bool
}

// DragAnchor is a drag of an anchor body.
type DragAnchor struct {
	ID AnchorID
	To Point
}

// DragHandle is a drag of one handle of an anchor.
type DragHandle struct {
	ID     AnchorID
	Handle Handle
	To     Point
	Option bool
}

// ResetHandles is a double click on an anchor.
type ResetHandles struct {
	ID AnchorID
}

// CoupleHandles is an option drag on an anchor body.
type CoupleHandles struct {
	ID AnchorID
	To Point
}

// DeleteAnchor removes an anchor.
type DeleteAnchor struct {
	ID AnchorID
}

// ClearSelection is a click on empty canvas that deselects everything.
type ClearSelection struct{}

func (ev PlaceAnchor) apply(e *Editor)   { e.PlaceOrDragAnchor(ev.Start, ev.End) }
func (ev SelectAnchor) apply(e *Editor)  { e.SelectAnchor(ev.ID, ev.Shift) }
func (ev DragAnchor) apply(e *Editor)    { e.DragAnchorBody(ev.ID, ev.To) }
func (ev ResetHandles) apply(e *Editor)  { e.ResetAnchorHandles(ev.ID) }
func (ev CoupleHandles) apply(e *Editor) { e.CoupleAnchorHandles(ev.ID, ev.To) }
func (ev DeleteAnchor) apply(e *Editor)  { e.DeleteAnchor(ev.ID) }
func (ClearSelection) apply(e *Editor)   { e.ClearSelection() }

func (ev DragHandle) apply(e *Editor) {
	if ev.Handle == PrimaryHandle {
		e.DragPrimaryHandle(ev.ID, ev.To, ev.Option)
		return
	}
	e.DragSecondaryHandle(ev.ID, ev.To, ev.Option)
}

func (ev PlaceAnchor) String() string {
	return fmt.Sprintf("place %v -> %v", ev.Start, ev.End)
}

func (ev SelectAnchor) String() string {
	return fmt.Sprintf("select %s shift=%t", ev.ID, ev.Shift)
}

func (ev DragAnchor) String() string {
	return fmt.Sprintf("drag %s to %v", ev.ID, ev.To)
}

func (ev DragHandle) String() string {
	return fmt.Sprintf("drag %s handle of %s to %v option=%t", ev.Handle, ev.ID, ev.To, ev.Option)
}

func (ev ResetHandles) String() string { return fmt.Sprintf("reset %s", ev.ID) }

func (ev CoupleHandles) String() string {
	return fmt.Sprintf("couple %s to %v", ev.ID, ev.To)
}

func (ev DeleteAnchor) String() string { return fmt.Sprintf("delete %s", ev.ID) }

func (ClearSelection) String() string { return "clear selection" }

// Apply delivers ev to the editor.
func (e *Editor) Apply(ev Event) {
	Logger().Debug("pathedit: event", "event", ev.String())
	ev.apply(e)
}
