package ui

import "github.com/go-edwin/edwin/pkg/surface"

// ID is the stable handle of a node. It is an index into the arena.
type ID int32

const (
	// Null is the absent node.
	Null ID = 0
	// RootID is the id of the root node created by New.
	RootID ID = 1
)

// Layout selects how a node places its children.
type Layout uint8

const (
	// Vertical stacks children top to bottom.
	Vertical Layout = iota
	// Horizontal stacks children left to right.
	Horizontal
	// Absolute leaves child coordinates untouched.
	Absolute
)

func (l Layout) String() string {
	switch l {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Absolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// Type identifies what a node represents.
type Type uint16

const (
	TypeNone Type = iota
	TypeBlock
	TypeWindow
	TypeUserWindow
	TypeGroup
	TypeLabel
	TypeButton
	TypeSpace
	TypeSeparator
	TypeInput
	TypeCombo
	TypeCheckbox
	TypeCaption
	TypeScrollBlock
	TypeScrollBar
	TypeImage
	TypeColorPicker

	// TypeUser is the first type value available to embedders.
	TypeUser Type = 0x8000
)

var typeNames = [...]string{
	TypeNone:        "none",
	TypeBlock:       "block",
	TypeWindow:      "window",
	TypeUserWindow:  "userwindow",
	TypeGroup:       "group",
	TypeLabel:       "label",
	TypeButton:      "button",
	TypeSpace:       "space",
	TypeSeparator:   "separator",
	TypeInput:       "input",
	TypeCombo:       "combo",
	TypeCheckbox:    "checkbox",
	TypeCaption:     "caption",
	TypeScrollBlock: "scrollblock",
	TypeScrollBar:   "scrollbar",
	TypeImage:       "image",
	TypeColorPicker: "colorpicker",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	if t >= TypeUser {
		return "user"
	}
	return "unknown"
}

// Flags is a set of orthogonal node traits.
type Flags uint32

const (
	FlagRoot Flags = 1 << iota
	FlagBorder
	// FlagTextNode sizes a zero width or height from the measured text.
	FlagTextNode
	// FlagExpand marks a collapsible group.
	FlagExpand
	// FlagPopParent makes ending this node also end its parent.
	FlagPopParent
	// FlagReadOnly guarantees the bound source is never written.
	FlagReadOnly
	FlagCollapsed
	// FlagEditing is set while the user edits the node text.
	FlagEditing
	FlagTabstop
	// FlagOwnData means the tree releases the node resource on removal.
	FlagOwnData
	// FlagOwnUpdate means an update callback is registered for the node.
	FlagOwnUpdate
)

// Kind is the category of value a node displays.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindInt64
	KindFloat64
	KindEnum
	KindFlags
	KindBool
	KindBitmap
	KindIcon
	KindPixels
	KindColor
)

var kindNames = [...]string{
	KindString:  "string",
	KindInt:     "int",
	KindFloat:   "float",
	KindInt64:   "int64",
	KindFloat64: "float64",
	KindEnum:    "enum",
	KindFlags:   "flags",
	KindBool:    "bool",
	KindBitmap:  "bitmap",
	KindIcon:    "icon",
	KindPixels:  "pixels",
	KindColor:   "color",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind returns the kind named name, as printed by Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsNumber reports whether k is rendered as formatted number text.
func (k Kind) IsNumber() bool { return k >= KindInt && k <= KindFloat64 }

// IsScalar reports whether k uses scalar change detection.
func (k Kind) IsScalar() bool { return k >= KindInt && k <= KindBool }

// Rect is a layout request. Values in (0, 1] are fractions of the parent,
// values greater than 1 are pixels and 0 means size from content.
type Rect struct {
	X, Y, W, H float32
}

// Dst is a computed pixel rectangle relative to the parent surface.
type Dst struct {
	X, Y, W, H int
}

// Bounds is the content envelope of a node.
type Bounds struct {
	W, H int
}

// PixelBuffer describes an allocated image buffer.
type PixelBuffer struct {
	Format surface.PixelFormat
	W, H   int
}

// Node is one element of the tree.
//
// Topology fields are maintained by the State and exposed read-only.
// Pointers returned by State.Node stay valid for the lifetime of the State,
// but the node they point at is reset when its id is recycled.
type Node struct {
	id            ID
	parent, child ID
	before, after ID
	surface       surface.Handle

	Type    Type
	Layout  Layout
	Flags   Flags
	Spacing int
	Padding int

	Rect   Rect
	Dst    Dst
	Bounds Bounds

	// ScrollPos is the vertical scroll offset of a scroll client.
	ScrollPos int
	// ScrollBar is set on scroll clients, ScrollClient on scrollbars.
	ScrollBar    ID
	ScrollClient ID

	Kind Kind
	// Format overrides the default display format of number kinds.
	Format string
	// Base is the integer parse base used by Commit. 0 detects the prefix.
	Base int
	// MinInt/MaxInt bound integer kinds, MinFloat/MaxFloat float kinds.
	// Equal bounds leave the value unconstrained.
	MinInt, MaxInt     int64
	MinFloat, MaxFloat float64
	// Items are the entries of enum and flags nodes.
	Items []string

	value    [16]byte
	pending  bool
	src      any
	srcSize  int
	resource surface.Resource
	pixels   PixelBuffer

	// Next links the following node of a composite value.
	Next ID

	OnClick  func(s *State, id ID)
	OnChange func(s *State, id ID)
	UserData any
}

// ID returns the node id.
func (n *Node) ID() ID { return n.id }

// Parent returns the parent id, or Null for the root.
func (n *Node) Parent() ID { return n.parent }

// Child returns the first child id.
func (n *Node) Child() ID { return n.child }

// Before returns the previous sibling id.
func (n *Node) Before() ID { return n.before }

// After returns the next sibling id.
func (n *Node) After() ID { return n.after }

// Surface returns the platform surface backing the node.
func (n *Node) Surface() surface.Handle { return n.surface }

// Has reports whether all of f are set.
func (n *Node) Has(f Flags) bool { return n.Flags&f == f }

// Resource returns the backend resource owned by an image node.
func (n *Node) Resource() surface.Resource { return n.resource }

// PixelBuffer returns the descriptor of an allocated image buffer.
func (n *Node) PixelBuffer() PixelBuffer { return n.pixels }

// Live reports whether the node is allocated.
func (n *Node) Live() bool { return n.Type != TypeNone }

// reset zeroes every field except the id.
func (n *Node) reset() {
	id := n.id
	*n = Node{}
	n.id = id
}
