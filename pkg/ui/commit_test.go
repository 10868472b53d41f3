package ui

import (
	"strconv"
	"testing"

	"github.com/go-edwin/edwin/pkg/surface"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 0, "hello"},
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"héllo", 2, "h"},
		{"héllo", 3, "hé"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestCommit_Int(t *testing.T) {
	tests := []struct {
		name     string
		base     int
		min, max int64
		text     string
		want     int32
		wantErr  bool
	}{
		{"decimal", 10, 0, 0, "42", 42, false},
		{"clamped high", 10, 0, 10, "42", 10, false},
		{"clamped low", 10, 5, 10, "-3", 5, false},
		{"hex", 16, 0, 0, "ff", 255, false},
		{"prefix detected", 0, 0, 0, "0x10", 16, false},
		{"spaces", 10, 0, 0, "  7 ", 7, false},
		{"invalid", 10, 0, 0, "abc", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, b := newTestState(t, Options{})
			id := attachInput(s, KindInt)
			n := s.Node(id)
			n.Base, n.MinInt, n.MaxInt = tt.base, tt.min, tt.max
			v := int32(1)
			s.Bind(id, &v)

			err := s.Commit(id, tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Commit error = %v, wantErr %v", err, tt.wantErr)
			}
			if v != tt.want {
				t.Errorf("source = %d, want %d", v, tt.want)
			}
			if got := b.Text(n.Surface()); got != strconv.Itoa(int(tt.want)) {
				t.Errorf("display = %q after commit", got)
			}
		})
	}
}

func TestCommit_Float64Clamp(t *testing.T) {
	s, _ := newTestState(t, Options{})
	id := attachInput(s, KindFloat64)
	n := s.Node(id)
	n.MinFloat, n.MaxFloat = -1, 1
	v := 0.0
	s.Bind(id, &v)

	if err := s.Commit(id, "3.5"); err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Errorf("source = %v, want 1", v)
	}
}

func TestCommit_ChangeCallback(t *testing.T) {
	s, _ := newTestState(t, Options{})
	id := attachInput(s, KindFloat)
	v := float32(0)
	var seen []float32
	s.Node(id).OnChange = func(s *State, id ID) {
		seen = append(seen, s.Node(id).Current().(float32))
	}
	s.Bind(id, &v)

	if err := s.Commit(id, "0.25"); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 || seen[0] != 0.25 {
		t.Errorf("callback saw %v, want [0.25]", seen)
	}
	if v != 0.25 {
		t.Errorf("source = %v, want 0.25", v)
	}
}

func TestCommit_ReadOnly(t *testing.T) {
	s, _ := newTestState(t, Options{})
	id := attachInput(s, KindInt)
	v := int32(3)
	s.Bind(id, &v)
	s.ReadOnly(id)

	if err := s.Commit(id, "9"); err != nil {
		t.Fatal(err)
	}
	if v != 3 {
		t.Errorf("read-only source was written: %d", v)
	}
	s.ReadWrite(id)
	_ = s.Commit(id, "9")
	if v != 9 {
		t.Errorf("source = %d after ReadWrite, want 9", v)
	}
}

func TestCommit_String(t *testing.T) {
	s, _ := newTestState(t, Options{})
	id := attachInput(s, KindString)
	text := ""
	s.BindSized(id, &text, 4)

	if err := s.Commit(id, "hello"); err != nil {
		t.Fatal(err)
	}
	if text != "hell" {
		t.Errorf("source = %q, want %q", text, "hell")
	}

	unbounded := ""
	other := attachInput(s, KindString)
	s.Bind(other, &unbounded)
	_ = s.Commit(other, "hello world")
	if unbounded != "hello world" {
		t.Errorf("unbounded source = %q", unbounded)
	}
}

func TestSelect(t *testing.T) {
	s, b := newTestState(t, Options{})
	enum := s.Attach(TypeCombo, Rect{W: 50, H: 20})
	s.Node(enum).Kind = KindEnum
	flags := s.Attach(TypeCombo, Rect{W: 50, H: 20})
	s.Node(flags).Kind = KindFlags
	s.AttachSurface(flags, surface.ClassCombo, "", surface.StyleVisible)

	level := int32(0)
	mask := uint32(0)
	s.Bind(enum, &level)
	s.Bind(flags, &mask)

	s.Select(enum, 2)
	if level != 2 {
		t.Errorf("enum = %d, want 2", level)
	}

	repaints := b.Surface(s.Node(flags).Surface()).Repaints
	s.Select(flags, 3)
	if mask != 8 {
		t.Errorf("flags = %#x, want 0x8", mask)
	}
	if b.Surface(s.Node(flags).Surface()).Repaints == repaints {
		t.Error("expected flags repaint")
	}
	s.Select(flags, 3)
	if mask != 0 {
		t.Errorf("flags = %#x after second toggle, want 0", mask)
	}
}

func TestClick(t *testing.T) {
	s, b := newTestState(t, Options{})
	check := s.Attach(TypeCheckbox, Rect{W: 50, H: 20})
	s.Node(check).Kind = KindBool
	s.AttachSurface(check, surface.ClassCheckbox, "", surface.StyleVisible)
	on := false
	s.Bind(check, &on)

	s.Click(check)
	if !on || !b.Surface(s.Node(check).Surface()).Checked {
		t.Error("expected checkbox toggled on")
	}

	button := s.Attach(TypeButton, Rect{W: 50, H: 20})
	s.AttachSurface(button, surface.ClassButton, "go", surface.StyleVisible)
	clicks := 0
	s.Node(button).OnClick = func(*State, ID) { clicks++ }
	s.Click(button)
	s.Disable(button)
	s.Click(button)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestClick_RecoversPanic(t *testing.T) {
	quietReports(t)
	s, _ := newTestState(t, Options{})
	button := s.Attach(TypeButton, Rect{})
	s.Node(button).OnClick = func(*State, ID) { panic("boom") }

	s.Click(button)
}
