package ui

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-edwin/edwin/pkg/errors"
)

// truncate cuts s to at most n bytes without splitting a rune. n == 0 keeps s.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Commit applies user-entered text to the bound source of an input node.
//
// Numbers are parsed (integers in the node Base), clamped to the node range
// when its bounds differ, copied into the display buffer, reported to
// OnChange and written to the source. Strings are truncated to the bound
// size. Read-only and unbound nodes are left untouched. After a number
// commit the display is refreshed from the source, so rejected text is
// replaced by the current value.
func (s *State) Commit(id ID, text string) error {
	n, ok := s.live("ui.Commit", id)
	if !ok {
		return nil
	}
	if n.src == nil || n.Has(FlagReadOnly) {
		return nil
	}

	if n.Kind == KindString {
		p, ok := n.src.(*string)
		if !ok {
			return nil
		}
		text = truncate(text, n.srcSize)
		s.changed(n)
		*p = text
		return nil
	}

	if !n.Kind.IsNumber() {
		s.violate("ui.Commit", errors.KindContract, id, "unsupported value kind %s for input node", n.Kind)
		return nil
	}

	err := s.commitNumber(n, strings.TrimSpace(text))
	s.InvalidateData(id)
	if err != nil {
		return fmt.Errorf("failed to commit node %d: %w", id, err)
	}
	return nil
}

func (s *State) commitNumber(n *Node, text string) error {
	le := binary.LittleEndian
	switch n.Kind {
	case KindInt:
		v, err := strconv.ParseInt(text, n.Base, 32)
		if err != nil {
			return err
		}
		if n.MinInt != n.MaxInt {
			v = min(max(v, n.MinInt), n.MaxInt)
		}
		le.PutUint32(n.value[:4], uint32(int32(v)))
	case KindInt64:
		v, err := strconv.ParseInt(text, n.Base, 64)
		if err != nil {
			return err
		}
		if n.MinInt != n.MaxInt {
			v = min(max(v, n.MinInt), n.MaxInt)
		}
		le.PutUint64(n.value[:8], uint64(v))
	case KindFloat:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return err
		}
		if n.MinFloat != n.MaxFloat {
			v = min(max(v, n.MinFloat), n.MaxFloat)
		}
		_, _ = binary.Encode(n.value[:4], le, float32(v))
	case KindFloat64:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return err
		}
		if n.MinFloat != n.MaxFloat {
			v = min(max(v, n.MinFloat), n.MaxFloat)
		}
		_, _ = binary.Encode(n.value[:8], le, v)
	}
	s.changed(n)
	s.writeSource(n)
	return nil
}

// changed runs the change callback of n, recovering panics.
func (s *State) changed(n *Node) {
	if n.OnChange == nil {
		return
	}
	defer errors.RecoverNode("ui.OnChange", int(n.id))
	n.OnChange(s, n.id)
}

// writeSource copies the display buffer into the bound source.
func (s *State) writeSource(n *Node) {
	if n.Has(FlagReadOnly) {
		return
	}
	switch p := n.src.(type) {
	case *int32:
		*p = n.Current().(int32)
	case *uint32:
		*p = n.Current().(uint32)
	case *float32:
		*p = n.Current().(float32)
	case *int64:
		*p = n.Current().(int64)
	case *float64:
		*p = n.Current().(float64)
	case *bool:
		*p = n.Current().(bool)
	case *[4]float32:
		*p = n.Current().([4]float32)
	}
}

// Select applies a list selection to an enum or flags node. Enums take the
// index as their value; flags toggle bit index.
func (s *State) Select(id ID, index int) {
	n, ok := s.live("ui.Select", id)
	if !ok || n.src == nil || n.Has(FlagReadOnly) || index < 0 {
		return
	}
	le := binary.LittleEndian
	switch n.Kind {
	case KindEnum:
		le.PutUint32(n.value[:4], uint32(int32(index)))
	case KindFlags:
		if index >= 32 {
			s.violate("ui.Select", errors.KindContract, id, "flag index %d out of range", index)
			return
		}
		le.PutUint32(n.value[:4], le.Uint32(n.value[:4])^(1<<index))
		s.backend.Repaint(n.surface)
	default:
		s.violate("ui.Select", errors.KindContract, id, "node kind %s is not selectable", n.Kind)
		return
	}
	s.changed(n)
	s.writeSource(n)
}

// Click activates a button or toggles a bound checkbox.
func (s *State) Click(id ID) {
	n, ok := s.live("ui.Click", id)
	if !ok || !s.IsEnabled(id) {
		return
	}
	switch {
	case n.Type == TypeCheckbox:
		if n.src == nil || n.Has(FlagReadOnly) {
			return
		}
		if n.value[0] != 0 {
			n.value[0] = 0
		} else {
			n.value[0] = 1
		}
		s.changed(n)
		s.writeSource(n)
		s.push(n)
	case n.OnClick != nil:
		defer errors.RecoverNode("ui.OnClick", int(id))
		n.OnClick(s, id)
	}
}
