// Package ui implements a retained tree of widget nodes: a fixed-capacity
// arena with stable ids, a cursor-driven construction protocol, a two-phase
// measure/place layout engine, tabstop traversal, change-detecting value
// binding and a frame-spread update scheduler.
//
// A State is not safe for concurrent use. All calls must happen on the UI
// thread, and callbacks must not re-enter layout of an ancestor that is being
// measured.
package ui

import (
	"github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/surface"
)

// Default capacities used when Options leaves them zero.
const (
	DefaultNodeCapacity   = 4096
	DefaultRectStackSize  = 32
	DefaultUpdateCapacity = 256
)

// Policy selects how violations are surfaced.
type Policy int

const (
	// PolicyPanic panics with the *errors.ViolationError.
	PolicyPanic Policy = iota
	// PolicyReport sends the violation to errors.Handler(), records the
	// first one in State.Err and turns the offending call into a no-op.
	PolicyReport
)

func (p Policy) String() string {
	switch p {
	case PolicyPanic:
		return "panic"
	case PolicyReport:
		return "report"
	default:
		return "unknown"
	}
}

// Options configures a State.
type Options struct {
	// NodeCapacity is the number of usable node ids, root included.
	NodeCapacity int
	// RectStackSize bounds PushRect.
	RectStackSize int
	// UpdateCapacity bounds RegisterUpdate.
	UpdateCapacity int
	Policy         Policy
	// Style is used as is when non-nil, otherwise DefaultStyle.
	Style *Style
}

type cursor struct {
	parent, child ID
}

// State owns the node arena, the construction cursor and the update registry.
type State struct {
	backend surface.Backend

	nodes   []Node
	used    int
	active  int
	removed ID

	ctx      cursor
	saved    cursor
	hasSaved bool

	rects    []Rect
	rectCap  int
	updates  []registration
	updCap   int
	updateAt int

	handles    map[surface.Handle]ID
	style      Style
	stats      Stats
	policy     Policy
	err        error
	adjusters  map[Type]PlacementAdjuster
	retriggers map[ID]uint8
	measuring  int
	closed     bool
}

// New creates a State whose root node is bound to the root surface.
// The root request is taken from the client area of root and laid out.
func New(b surface.Backend, root surface.Handle, opts Options) *State {
	if opts.NodeCapacity <= 1 {
		opts.NodeCapacity = DefaultNodeCapacity
	}
	if opts.RectStackSize <= 0 {
		opts.RectStackSize = DefaultRectStackSize
	}
	if opts.UpdateCapacity <= 0 {
		opts.UpdateCapacity = DefaultUpdateCapacity
	}

	s := &State{
		backend:    b,
		nodes:      make([]Node, opts.NodeCapacity+1),
		rectCap:    opts.RectStackSize,
		updCap:     opts.UpdateCapacity,
		policy:     opts.Policy,
		handles:    make(map[surface.Handle]ID),
		adjusters:  make(map[Type]PlacementAdjuster),
		retriggers: make(map[ID]uint8),
	}
	if opts.Style != nil {
		s.style = *opts.Style
	} else {
		s.style = DefaultStyle()
	}
	s.rects = make([]Rect, 0, s.rectCap)
	s.updates = make([]registration, 0, s.updCap)
	s.adjusters[TypeCombo] = ComboDropdown

	r := &s.nodes[RootID]
	r.id = RootID
	r.Type = TypeWindow
	r.Flags = FlagRoot
	r.Layout = Absolute
	r.surface = root
	if root != 0 {
		s.handles[root] = RootID
	}
	s.used = int(RootID)
	s.active = 1
	s.ctx = cursor{parent: RootID}

	s.Resize()
	return s
}

// Backend returns the windowing collaborator driven by s.
func (s *State) Backend() surface.Backend { return s.backend }

// Style returns the active style. Changes apply to nodes created afterwards.
func (s *State) Style() *Style { return &s.style }

// Policy returns the violation policy.
func (s *State) Policy() Policy { return s.policy }

// Err returns the first violation recorded under PolicyReport.
func (s *State) Err() error { return s.err }

// Capacity returns the number of usable node ids.
func (s *State) Capacity() int { return len(s.nodes) - 1 }

// Used returns the highest id ever allocated.
func (s *State) Used() int { return s.used }

// Active returns the number of live nodes, root included.
func (s *State) Active() int { return s.active }

// Root returns the root node.
func (s *State) Root() *Node { return &s.nodes[RootID] }

// Node returns the node with the given id.
// An out of range id is a contract violation; under PolicyReport Node
// returns nil.
func (s *State) Node(id ID) *Node {
	n, ok := s.lookup("ui.Node", id)
	if !ok {
		return nil
	}
	return n
}

// Cursor returns the current insertion point.
func (s *State) Cursor() (parent, child ID) { return s.ctx.parent, s.ctx.child }

// Resize re-reads the client area of the root surface and lays out the tree.
func (s *State) Resize() {
	r := &s.nodes[RootID]
	rc := s.backend.ClientRect(r.surface)
	r.Rect = Rect{X: float32(rc.X), Y: float32(rc.Y), W: float32(rc.W), H: float32(rc.H)}
	s.Invalidate(RootID)
}

// Close releases owned resources of all live nodes and destroys top level
// surfaces. The State must not be used afterwards.
func (s *State) Close() {
	if s.closed {
		return
	}
	for i := int(RootID); i <= s.used; i++ {
		if s.nodes[i].Live() {
			s.freeResources(ID(i))
		}
	}
	for c := s.nodes[RootID].child; c != Null; c = s.nodes[c].after {
		s.destroySurface(c)
	}
	clear(s.nodes)
	clear(s.handles)
	s.updates = s.updates[:0]
	s.rects = s.rects[:0]
	s.ctx = cursor{}
	s.saved = cursor{}
	s.hasSaved = false
	s.used = 0
	s.active = 0
	s.removed = Null
	s.closed = true
}

// at returns the node for an id already known to be in range.
func (s *State) at(id ID) *Node { return &s.nodes[id] }

func (s *State) inRange(id ID) bool { return id > Null && int(id) < len(s.nodes) }

// lookup validates id and returns its node.
func (s *State) lookup(op string, id ID) (*Node, bool) {
	if !s.inRange(id) {
		s.violate(op, errors.KindContract, id, "node id %d out of range [1, %d]", id, len(s.nodes)-1)
		return nil, false
	}
	return &s.nodes[id], true
}

// live validates id and requires an allocated node.
func (s *State) live(op string, id ID) (*Node, bool) {
	n, ok := s.lookup(op, id)
	if !ok {
		return nil, false
	}
	if !n.Live() {
		s.violate(op, errors.KindContract, id, "node %d is not allocated, it may have been removed", id)
		return nil, false
	}
	return n, true
}

// Violate reports a contract violation detected by code built on the State,
// following its policy.
func (s *State) Violate(op string, id ID, format string, args ...any) {
	s.violate(op, errors.KindContract, id, format, args...)
}

func (s *State) violate(op string, kind errors.ViolationKind, id ID, format string, args ...any) {
	v := errors.Violation(op, kind, int(id), format, args...)
	v.StackTrace = errors.CaptureStack()
	if s.policy == PolicyPanic {
		panic(v)
	}
	errors.Report(v)
	if s.err == nil {
		s.err = v
	}
}
