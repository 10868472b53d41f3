package scene

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
	"github.com/go-edwin/edwin/pkg/widgets"
)

var pixelFormats = map[string]surface.PixelFormat{
	"rgb":  surface.RGB,
	"bgr":  surface.BGR,
	"argb": surface.ARGB,
	"rgba": surface.RGBA,
	"abgr": surface.ABGR,
	"bgra": surface.BGRA,
}

type builder struct {
	s     *ui.State
	built *Built
}

func (b *builder) node(n *Node, path string) error {
	r, err := rectOf(n.Rect)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	layout, err := ParseLayout(n.Layout)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	s := b.s
	var id ui.ID
	open := true
	switch n.Type {
	case "block":
		id = widgets.Begin(s, layout, r)
	case "border":
		id = widgets.BeginBorder(s, layout, r)
	case "scroll":
		id = widgets.BeginScroll(s, layout)
	case "window":
		id = widgets.BeginWindow(s, n.Text, layout, r)
	case "group":
		id = widgets.BeginGroup(s, n.Text, layout, r)
	case "button":
		if len(n.Children) > 0 {
			id = widgets.BeginButton(s, r, nil)
			break
		}
		open = false
		b.pushRect(r, n.Rect)
		id = widgets.Button(s, n.Text, nil)
	default:
		open = false
		if len(n.Children) > 0 {
			return fmt.Errorf("%s: %s nodes take no children", path, n.Type)
		}
		b.pushRect(r, n.Rect)
		if id, err = b.leaf(n); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	if open {
		for i := range n.Children {
			if err := b.node(&n.Children[i], fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
				return err
			}
		}
		widgets.End(s)
	}
	if id != ui.Null {
		b.apply(n, id)
	}
	return nil
}

func (b *builder) pushRect(r ui.Rect, raw []float32) {
	if len(raw) == 4 {
		b.s.PushRect(r.X, r.Y, r.W, r.H)
	}
}

func (b *builder) apply(n *Node, id ui.ID) {
	if n.ReadOnly {
		b.s.ReadOnly(id)
	}
	if n.Disabled {
		b.s.Disable(id)
	}
	if n.Hidden {
		b.s.Hide(id)
	}
	if n.Collapsed {
		b.s.Collapse(id)
	}
}

func (b *builder) bind(id ui.ID, src any) {
	b.s.Bind(id, src)
	b.built.Values[id] = src
}

func (b *builder) leaf(n *Node) (ui.ID, error) {
	s := b.s
	switch n.Type {
	case "label":
		return widgets.Label(s, n.Text), nil
	case "space":
		return widgets.Space(s, float32(n.Size)), nil
	case "separator":
		return widgets.Separator(s), nil
	case "input", "string":
		id := widgets.Input(s, n.Text, ui.KindString)
		return id, b.bindString(id, n.Value)
	case "text":
		id := widgets.Text(s, n.Text)
		return id, b.bindString(id, n.Value)
	case "int":
		id := widgets.Int(s, n.Text, int32(n.Min), int32(n.Max))
		b.format(id, n)
		return id, bindNumber[int32](b, id, n.Value)
	case "int64":
		id := widgets.Int64(s, n.Text, int64(n.Min), int64(n.Max))
		b.format(id, n)
		return id, bindNumber[int64](b, id, n.Value)
	case "float":
		id := widgets.Float(s, n.Text, float32(n.Min), float32(n.Max))
		b.format(id, n)
		return id, bindNumber[float32](b, id, n.Value)
	case "float64":
		id := widgets.Float64(s, n.Text, n.Min, n.Max)
		b.format(id, n)
		return id, bindNumber[float64](b, id, n.Value)
	case "bool":
		id := widgets.Bool(s, n.Text)
		v := new(bool)
		if n.Value != nil {
			x, ok := n.Value.(bool)
			if !ok {
				return id, fmt.Errorf("bool value must be true or false, got %v", n.Value)
			}
			*v = x
		}
		b.bind(id, v)
		return id, nil
	case "enum":
		id := widgets.Enum(s, n.Text, n.Items)
		return id, b.bindEnum(id, n)
	case "flags":
		id := widgets.Flags(s, n.Text, n.Items)
		return id, b.bindFlags(id, n)
	case "vector":
		return b.composite(n, n.Size, func(k ui.Kind) ui.ID {
			return widgets.Vector(s, n.Text, k, n.Size)
		})
	case "matrix", "matrix_row":
		return b.composite(n, n.Rows*n.Cols, func(k ui.Kind) ui.ID {
			if n.Type == "matrix" {
				return widgets.Matrix(s, n.Text, k, n.Rows, n.Cols)
			}
			return widgets.MatrixRow(s, n.Text, k, n.Rows, n.Cols)
		})
	case "color":
		id := widgets.Color(s, n.Text)
		if n.Value == nil {
			return id, nil
		}
		c, err := colorValue(n.Value)
		if err != nil {
			return id, err
		}
		b.bind(id, &c)
		return id, nil
	case "image":
		return b.image(n)
	}
	return ui.Null, fmt.Errorf("unknown node type %q", n.Type)
}

// format applies a custom display format to a number node.
func (b *builder) format(id ui.ID, n *Node) {
	if n.Format == "" && n.Base == 0 {
		return
	}
	node := b.s.Node(id)
	node.Format, node.Base = n.Format, n.Base
}

func (b *builder) bindString(id ui.ID, v any) error {
	text := new(string)
	if v != nil {
		x, ok := v.(string)
		if !ok {
			return fmt.Errorf("string value expected, got %T", v)
		}
		*text = x
	}
	b.bind(id, text)
	return nil
}

func (b *builder) bindEnum(id ui.ID, n *Node) error {
	if n.Value == nil {
		return nil
	}
	sel := new(int32)
	if name, ok := n.Value.(string); ok {
		i := slices.Index(n.Items, name)
		if i < 0 {
			return fmt.Errorf("enum value %q is not one of %v", name, n.Items)
		}
		*sel = int32(i)
	} else {
		f, err := number(n.Value)
		if err != nil {
			return err
		}
		*sel = int32(f)
	}
	b.bind(id, sel)
	return nil
}

func (b *builder) bindFlags(id ui.ID, n *Node) error {
	bits := new(uint32)
	switch v := n.Value.(type) {
	case nil:
	case []any:
		for _, item := range v {
			name, _ := item.(string)
			i := slices.Index(n.Items, name)
			if i < 0 || i >= 32 {
				return fmt.Errorf("flag %v is not one of %v", item, n.Items)
			}
			*bits |= 1 << i
		}
	default:
		f, err := number(v)
		if err != nil {
			return err
		}
		*bits = uint32(f)
	}
	b.bind(id, bits)
	return nil
}

// composite creates a chained widget of count elements and binds it to a
// slice of the element kind.
func (b *builder) composite(n *Node, count int, create func(ui.Kind) ui.ID) (ui.ID, error) {
	name := n.Kind
	if name == "" {
		name = "float"
	}
	k, ok := ui.ParseKind(name)
	if !ok || !k.IsNumber() {
		return ui.Null, fmt.Errorf("%s elements must be int, int64, float or float64, got %q", n.Type, name)
	}
	id := create(k)
	if id == ui.Null {
		return ui.Null, nil
	}
	switch k {
	case ui.KindInt:
		return id, bindSlice[int32](b, id, n.Value, count)
	case ui.KindInt64:
		return id, bindSlice[int64](b, id, n.Value, count)
	case ui.KindFloat:
		return id, bindSlice[float32](b, id, n.Value, count)
	default:
		return id, bindSlice[float64](b, id, n.Value, count)
	}
}

func (b *builder) image(n *Node) (ui.ID, error) {
	f := surface.BGRA
	if n.Format != "" {
		var ok bool
		if f, ok = pixelFormats[n.Format]; !ok {
			return ui.Null, fmt.Errorf("unknown pixel format %q", n.Format)
		}
	}
	if n.Cols == 0 || n.Rows == 0 {
		return ui.Null, fmt.Errorf("image needs cols and rows")
	}
	id := widgets.ImageBuffer(b.s, nil, n.Cols, n.Rows, f)
	if id == ui.Null || n.Value == nil {
		return id, nil
	}
	c, err := colorValue(n.Value)
	if err != nil {
		return id, err
	}
	r, g, bl := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().RGB255()
	b.s.ClearImage(id, r, g, bl, uint8(c[3]*255+0.5))
	return id, nil
}

type numeric interface {
	int32 | int64 | float32 | float64
}

func bindNumber[T numeric](b *builder, id ui.ID, v any) error {
	if id == ui.Null {
		return nil
	}
	x := new(T)
	if v != nil {
		f, err := number(v)
		if err != nil {
			return err
		}
		*x = T(f)
	}
	b.bind(id, x)
	return nil
}

func bindSlice[T numeric](b *builder, id ui.ID, v any, count int) error {
	xs := make([]T, count)
	if v != nil {
		list, ok := v.([]any)
		if !ok || len(list) != count {
			return fmt.Errorf("value must be a list of %d numbers", count)
		}
		for i, e := range list {
			f, err := number(e)
			if err != nil {
				return err
			}
			xs[i] = T(f)
		}
	}
	b.bind(id, xs)
	return nil
}

// number converts a decoded YAML scalar to float64.
func number(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64:
		return x, nil
	}
	return 0, fmt.Errorf("number expected, got %v", v)
}

// colorValue accepts "#rrggbb" or a list of three or four channels in [0, 1].
func colorValue(v any) ([4]float32, error) {
	switch x := v.(type) {
	case string:
		c, err := colorful.Hex(x)
		if err != nil {
			return [4]float32{}, fmt.Errorf("invalid color %q: %w", x, err)
		}
		return [4]float32{float32(c.R), float32(c.G), float32(c.B), 1}, nil
	case []any:
		if len(x) != 3 && len(x) != 4 {
			break
		}
		c := [4]float32{3: 1}
		for i, e := range x {
			f, err := number(e)
			if err != nil {
				return c, err
			}
			c[i] = float32(f)
		}
		return c, nil
	}
	return [4]float32{}, fmt.Errorf("color must be #rrggbb or a list of channels, got %v", v)
}
