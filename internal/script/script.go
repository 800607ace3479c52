// Package script replays recorded editing sessions.
//
// A script is a YAML document with a list of steps. Each step holds exactly
// one action. Every placed anchor can be referred to by its placement
// ordinal ("0", "1", ...). A placement step may also give its anchor a
// name. Names are unique and must not be numbers, so a name never shadows
// an ordinal.
//
//	steps:
//	  - place: {at: [10, 10]}
//	  - place: {at: [100, 10], drag: [140, 60], name: b}
//	  - handle: {anchor: "0", which: secondary, to: [40, -20]}
//	  - select: {anchor: b}
//	  - move: {anchor: b, to: [120, 30]}
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/pathedit"
)

var (
	// ErrUnknownAnchor is returned when a step names an anchor that was
	// never placed or has been deleted.
	ErrUnknownAnchor = errors.New("script: unknown anchor")

	// ErrInvalidStep is returned for steps without exactly one action.
	ErrInvalidStep = errors.New("script: invalid step")
)

// Point is a canvas position written as a two element sequence.
type Point pathedit.Point

// UnmarshalYAML implements yaml.Unmarshaler for Point.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var xy []float64
	if err := value.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("point needs 2 coordinates, got %d", len(xy))
	}
	*p = Point{X: xy[0], Y: xy[1]}
	return nil
}

// Script is a decoded list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one action. Exactly one field must be set.
type Step struct {
	Place  *Place  `yaml:"place,omitempty"`
	Begin  *Place  `yaml:"begin,omitempty"`
	Update *Point  `yaml:"update,omitempty"`
	End    bool    `yaml:"end,omitempty"`
	Cancel bool    `yaml:"cancel,omitempty"`
	Select *Select `yaml:"select,omitempty"`
	Clear  bool    `yaml:"clear,omitempty"`
	Move   *Move   `yaml:"move,omitempty"`
	Handle *Handle `yaml:"handle,omitempty"`
	Reset  *Target `yaml:"reset,omitempty"`
	Couple *Move   `yaml:"couple,omitempty"`
	Delete *Target `yaml:"delete,omitempty"`
}

// Place is a placement gesture. Drag is the release location; without it
// the gesture is a click.
type Place struct {
	At   Point  `yaml:"at"`
	Drag *Point `yaml:"drag,omitempty"`
	Name string `yaml:"name,omitempty"`
}

// Target names an anchor.
type Target struct {
	Anchor string `yaml:"anchor"`
}

// Select clicks an anchor.
type Select struct {
	Anchor string `yaml:"anchor"`
	Shift  bool   `yaml:"shift,omitempty"`
}

// Move drags an anchor body, or couples its handles, towards To.
type Move struct {
	Anchor string `yaml:"anchor"`
	To     Point  `yaml:"to"`
}

// Handle drags one handle of an anchor.
type Handle struct {
	Anchor string `yaml:"anchor"`
	Which  string `yaml:"which"`
	To     Point  `yaml:"to"`
	Option bool   `yaml:"option,omitempty"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Place != nil, s.Begin != nil, s.Update != nil, s.End, s.Cancel,
		s.Select != nil, s.Clear, s.Move != nil, s.Handle != nil,
		s.Reset != nil, s.Couple != nil, s.Delete != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Decode reads a script from r and checks the shape of every step.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("script: %w", err)
	}
	seen := make(map[string]bool)
	for i, step := range s.Steps {
		if n := step.actions(); n != 1 {
			return nil, fmt.Errorf("%w: step %d has %d actions", ErrInvalidStep, i, n)
		}
		if h := step.Handle; h != nil {
			if _, err := parseHandle(h.Which); err != nil {
				return nil, fmt.Errorf("%w: step %d: %v", ErrInvalidStep, i, err)
			}
		}
		if name := step.placeName(); name != "" {
			if err := checkName(name, seen); err != nil {
				return nil, fmt.Errorf("%w: step %d: %v", ErrInvalidStep, i, err)
			}
			seen[name] = true
		}
	}
	return &s, nil
}

func (s Step) placeName() string {
	switch {
	case s.Place != nil:
		return s.Place.Name
	case s.Begin != nil:
		return s.Begin.Name
	}
	return ""
}

func checkName[V any](name string, taken map[string]V) error {
	if _, err := strconv.Atoi(name); err == nil {
		return fmt.Errorf("anchor name %q is reserved for ordinals", name)
	}
	if _, dup := taken[name]; dup {
		return fmt.Errorf("anchor name %q used twice", name)
	}
	return nil
}

// Load reads the script file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func parseHandle(which string) (pathedit.Handle, error) {
	switch which {
	case "primary", "1":
		return pathedit.PrimaryHandle, nil
	case "secondary", "2", "":
		return pathedit.SecondaryHandle, nil
	}
	return 0, fmt.Errorf("unknown handle %q", which)
}

// Player replays scripts against one editor and remembers anchor names
// across runs.
type Player struct {
	ed      *pathedit.Editor
	names    map[string]pathedit.AnchorID
	ordinals []pathedit.AnchorID
	pending  string
}

// NewPlayer creates a player for ed.
func NewPlayer(ed *pathedit.Editor) *Player {
	return &Player{ed: ed, names: make(map[string]pathedit.AnchorID)}
}

// Run replays every step of s in order. It stops at the first step that
// cannot be applied.
func (p *Player) Run(s *Script) error {
	for i, step := range s.Steps {
		if err := p.step(step); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Run replays s against ed.
func Run(ed *pathedit.Editor, s *Script) error {
	return NewPlayer(ed).Run(s)
}

// Anchor returns the id placed under name or placement ordinal.
func (p *Player) Anchor(name string) (pathedit.AnchorID, bool) {
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n >= len(p.ordinals) {
			return pathedit.AnchorID{}, false
		}
		return p.ordinals[n], true
	}
	id, ok := p.names[name]
	return id, ok
}

func (p *Player) step(s Step) error {
	switch {
	case s.Place != nil:
		end := s.Place.At
		if s.Place.Drag != nil {
			end = *s.Place.Drag
		}
		id := p.ed.PlaceOrDragAnchor(pathedit.Point(s.Place.At), pathedit.Point(end))
		return p.name(s.Place.Name, id)

	case s.Begin != nil:
		p.ed.BeginGesture(pathedit.Point(s.Begin.At))
		if s.Begin.Drag != nil {
			p.ed.UpdateGesture(pathedit.Point(*s.Begin.Drag))
		}
		p.pending = s.Begin.Name
		return nil

	case s.Update != nil:
		p.ed.UpdateGesture(pathedit.Point(*s.Update))
		return nil

	case s.End:
		name := p.pending
		p.pending = ""
		if id, ok := p.ed.EndGesture(); ok {
			return p.name(name, id)
		}
		return nil

	case s.Cancel:
		p.ed.CancelGesture()
		p.pending = ""
		return nil

	case s.Clear:
		p.ed.Apply(pathedit.ClearSelection{})
		return nil
	}

	ev, err := p.event(s)
	if err != nil {
		return err
	}
	p.ed.Apply(ev)
	return nil
}

func (p *Player) event(s Step) (pathedit.Event, error) {
	switch {
	case s.Select != nil:
		id, err := p.resolve(s.Select.Anchor)
		return pathedit.SelectAnchor{ID: id, Shift: s.Select.Shift}, err
	case s.Move != nil:
		id, err := p.resolve(s.Move.Anchor)
		return pathedit.DragAnchor{ID: id, To: pathedit.Point(s.Move.To)}, err
	case s.Handle != nil:
		id, err := p.resolve(s.Handle.Anchor)
		if err != nil {
			return nil, err
		}
		h, err := parseHandle(s.Handle.Which)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStep, err)
		}
		return pathedit.DragHandle{ID: id, Handle: h, To: pathedit.Point(s.Handle.To), Option: s.Handle.Option}, nil
	case s.Reset != nil:
		id, err := p.resolve(s.Reset.Anchor)
		return pathedit.ResetHandles{ID: id}, err
	case s.Couple != nil:
		id, err := p.resolve(s.Couple.Anchor)
		return pathedit.CoupleHandles{ID: id, To: pathedit.Point(s.Couple.To)}, err
	case s.Delete != nil:
		id, err := p.resolve(s.Delete.Anchor)
		return pathedit.DeleteAnchor{ID: id}, err
	}
	return nil, ErrInvalidStep
}

// name records id under the next placement ordinal and, when given, under
// name.
func (p *Player) name(name string, id pathedit.AnchorID) error {
	p.ordinals = append(p.ordinals, id)
	if name == "" {
		return nil
	}
	if err := checkName(name, p.names); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
	p.names[name] = id
	return nil
}

func (p *Player) resolve(name string) (pathedit.AnchorID, error) {
	id, ok := p.Anchor(name)
	if !ok || !p.ed.Has(id) {
		return pathedit.AnchorID{}, fmt.Errorf("%w %q", ErrUnknownAnchor, name)
	}
	return id, nil
}
