package scene

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-edwin/edwin/pkg/headless"
	"github.com/go-edwin/edwin/pkg/ui"
)

// Dump writes the laid out tree under the root of s, one node per line with
// its computed rectangle and displayed text, followed by a stats summary.
// Colors are used only when w is a terminal.
func Dump(w io.Writer, s *ui.State, b *headless.Backend) error {
	r := lipgloss.NewRenderer(w)
	st := dumpStyles{
		kind:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		text:  r.NewStyle().Foreground(lipgloss.Color("14")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("8")),
		flags: r.NewStyle().Foreground(lipgloss.Color("11")),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}

	var sb strings.Builder
	for c := s.Root().Child(); c != ui.Null; c = s.Node(c).After() {
		dumpNode(&sb, s, b, st, c, 0)
	}

	stats := s.Stats()
	summary := fmt.Sprintf("nodes %d/%d  invalidations %d  measure %.3fms  place %.3fms",
		s.Active(), s.Capacity(), stats.InvalidateCalls, stats.MeasureMs(), stats.PlaceMs())
	sb.WriteString(st.box.Render(summary))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

type dumpStyles struct {
	kind, text, dim, flags, box lipgloss.Style
}

func dumpNode(sb *strings.Builder, s *ui.State, b *headless.Backend, st dumpStyles, id ui.ID, depth int) {
	n := s.Node(id)
	line := strings.Repeat("  ", depth) + st.kind.Render(n.Type.String())
	if text := b.Text(n.Surface()); text != "" {
		line += " " + st.text.Render(fmt.Sprintf("%q", text))
	}
	d := n.Dst
	line += " " + st.dim.Render(fmt.Sprintf("%d,%d %dx%d", d.X, d.Y, d.W, d.H))
	if f := flagWords(s, n); f != "" {
		line += " " + st.flags.Render("["+f+"]")
	}
	sb.WriteString(line)
	sb.WriteByte('\n')

	for c := n.Child(); c != ui.Null; c = s.Node(c).After() {
		dumpNode(sb, s, b, st, c, depth+1)
	}
}

func flagWords(s *ui.State, n *ui.Node) string {
	var words []string
	if !s.IsVisible(n.ID()) {
		words = append(words, "hidden")
	}
	if !s.IsEnabled(n.ID()) {
		words = append(words, "disabled")
	}
	if n.Has(ui.FlagCollapsed) {
		words = append(words, "collapsed")
	}
	if n.Has(ui.FlagReadOnly) {
		words = append(words, "read-only")
	}
	return strings.Join(words, " ")
}
