// Package pathedit is the model of an interactive vector-path editor.
//
// # Overview
//
// A user places anchors on a canvas, drags them around and pulls Bézier
// handles out of them. pathedit keeps the resulting anchor sequence and
// selection, applies the gestures to it, and flattens it into a path of
// move, line, quadratic and cubic segments. The path can be turned into Go
// source that rebuilds it with github.com/gogpu/gg.
//
// # Quick Start
//
//	ed := pathedit.NewEditor()
//
//	// A click places a corner, a drag pulls out a handle
//	a := ed.PlaceOrDragAnchor(pathedit.Pt(10, 10), pathedit.Pt(10, 10))
//	ed.PlaceOrDragAnchor(pathedit.Pt(100, 10), pathedit.Pt(140, 60))
//
//	// Dragging a handle keeps the anchor smooth unless option is held
//	ed.DragSecondaryHandle(a, pathedit.Pt(40, -20), false)
//
//	fmt.Println(ed.SourceCode())
//
// # Anchors
//
// Every anchor has a position and up to two handles. The secondary handle
// departs from the anchor; the primary handle arrives at it. When only the
// secondary handle is set the anchor is smooth and its primary handle is
// the mirror image of the secondary one. Setting the primary handle on its
// own makes the anchor asymmetric. All positions are rounded to whole
// units when stored.
//
// # Path Synthesis
//
// Consecutive anchors are joined with a cubic curve when the first of the
// pair has a secondary handle, a quadratic curve when only the second has
// both handles, and a straight line otherwise. A lone primary handle does
// not bend the path. The path is recomputed on every read.
//
// # Gestures
//
// Editor is the boundary to the interaction layer. A placement gesture in
// progress is shown through the live readers (CurrentPath, SourceCode,
// AnchorPositions) by applying it to a throwaway copy of the drawing; the
// committed drawing changes only when the gesture ends.
//
// # Errors
//
// Editing operations cannot fail. Addressing an anchor id that does not
// belong to the drawing is a programming error and panics.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package pathedit
