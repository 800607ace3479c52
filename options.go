package pathedit

import "github.com/google/uuid"

// DefaultDragThreshold is the gesture travel, in canvas units, above which
// a placement gesture counts as a drag that pulls out a handle.
const DefaultDragThreshold = 1.0

// Option configures a Drawing or Editor during creation.
//
// Example:
//
//	// Default configuration
//	ed := pathedit.NewEditor()
//
//	// Touch input needs more slack before a tap turns into a drag
//	ed := pathedit.NewEditor(pathedit.WithDragThreshold(6))
type Option func(*options)

// options holds the configuration shared by a Drawing and its clones.
type options struct {
	dragThreshold float64
	newID         func() AnchorID
}

// defaultOptions returns the default drawing options.
func defaultOptions() *options {
	return &options{
		dragThreshold: DefaultDragThreshold,
		newID:         uuid.New,
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDragThreshold sets the distance a placement gesture must exceed to
// create a smooth anchor instead of a corner. Negative values are treated
// as zero.
func WithDragThreshold(d float64) Option {
	return func(o *options) {
		if d < 0 {
			d = 0
		}
		o.dragThreshold = d
	}
}

// WithIDSource replaces the anchor ID generator. The source must never
// return the same ID twice for one Drawing, and must never return the nil
// UUID: that value is PendingAnchorID, and an anchor carrying it would be
// reported as the tentative anchor of a gesture. A nil source restores the
// default random UUIDs.
//
// Example:
//
//	// Reproducible IDs for golden output
//	var n uint32
//	ed := pathedit.NewEditor(pathedit.WithIDSource(func() pathedit.AnchorID {
//	    n++
//	    return uuid.NewSHA1(uuid.NameSpaceOID, binary.BigEndian.AppendUint32(nil, n))
//	}))
func WithIDSource(next func() AnchorID) Option {
	return func(o *options) {
		if next == nil {
			next = uuid.New
		}
		o.newID = next
	}
}
