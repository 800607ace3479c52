package pathedit

// Synthesize flattens an anchor sequence into a path.
//
// The path starts with a move to the first anchor. Each following anchor is
// reached with a cubic curve when the previous anchor has a secondary
// handle, with a quadratic curve when only the anchor's own control pair is
// known, and with a straight line otherwise. An explicit primary handle on
// an anchor without a secondary one has no control pair and does not bend
// the path.
func Synthesize(anchors []Anchor) *Path {
	p := NewPath()
	if len(anchors) == 0 {
		return p
	}

	first := anchors[0].point
	p.MoveTo(first.X, first.Y)

	// outgoing is the raw secondary handle of the previous anchor; its
	// mirrored primary never leaks into the next segment.
	outgoing, hasOutgoing := anchors[0].Secondary()

	for i := 1; i < len(anchors); i++ {
		a := &anchors[i]
		to := a.point
		arriving, _, hasArriving := a.ControlPair()

		switch {
		case hasOutgoing:
			if !hasArriving {
				arriving = to
			}
			p.CubicTo(outgoing.X, outgoing.Y, arriving.X, arriving.Y, to.X, to.Y)
		case hasArriving:
			p.QuadraticTo(arriving.X, arriving.Y, to.X, to.Y)
		default:
			p.LineTo(to.X, to.Y)
		}

		outgoing, hasOutgoing = a.Secondary()
	}
	return p
}
