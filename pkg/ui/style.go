package ui

// Style holds the metrics used by layout and the widget constructors.
type Style struct {
	Spacing        int
	Padding        int
	BorderSize     int
	ScrollbarSize  int
	TextWSpacing   int
	TextHSpacing   int
	CaptionHeight  int
	ScrollWheel    int
	ScrollUnit     int
	NumberDeadzone int

	LabelWidth  float32
	LabelHeight float32
	InputHeight float32

	FloatIncrement   float32
	Float64Increment float64

	// Formats are the default display formats indexed by Kind.
	Formats [KindColor + 1]string
}

// DefaultStyle returns the built-in metrics.
func DefaultStyle() Style {
	st := Style{
		Spacing:          8,
		Padding:          8,
		BorderSize:       1,
		ScrollbarSize:    15,
		TextWSpacing:     20,
		TextHSpacing:     10,
		CaptionHeight:    26,
		ScrollWheel:      8,
		ScrollUnit:       15,
		NumberDeadzone:   3,
		LabelWidth:       0.4,
		LabelHeight:      20,
		InputHeight:      20,
		FloatIncrement:   0.01,
		Float64Increment: 0.01,
	}
	st.Formats[KindString] = "%s"
	st.Formats[KindInt] = "%d"
	st.Formats[KindFloat] = "%.3f"
	st.Formats[KindInt64] = "%d"
	st.Formats[KindFloat64] = "%.3f"
	return st
}

// format returns the display format for a node.
func (st *Style) format(n *Node) string {
	if n.Format != "" {
		return n.Format
	}
	if int(n.Kind) < len(st.Formats) && st.Formats[n.Kind] != "" {
		return st.Formats[n.Kind]
	}
	return "%v"
}
