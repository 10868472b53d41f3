// Package scene describes edwin trees in YAML and builds them on a ui.State.
package scene

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/ui"
)

// Scene is a scene file.
type Scene struct {
	Window Window `yaml:"window"`
	// Config is an optional configuration file, relative to the scene file.
	Config string `yaml:"config,omitempty"`
	Nodes  []Node `yaml:"nodes"`

	dir string
}

// Window is the top level surface the scene is built in.
type Window struct {
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Node is one widget. Which fields apply depends on Type.
type Node struct {
	Type   string    `yaml:"type"`
	Text   string    `yaml:"text,omitempty"`
	Layout string    `yaml:"layout,omitempty"`
	Rect   []float32 `yaml:"rect,omitempty,flow"`

	Min    float64  `yaml:"min,omitempty"`
	Max    float64  `yaml:"max,omitempty"`
	// Format is the display format of numbers and the pixel format of
	// images.
	Format string   `yaml:"format,omitempty"`
	// Kind is the element kind of vectors and matrices, float by default.
	Kind   string   `yaml:"kind,omitempty"`
	Base   int      `yaml:"base,omitempty"`
	Items  []string `yaml:"items,omitempty,flow"`
	// Size is the element count of vectors and the extent of spaces.
	Size int `yaml:"size,omitempty"`
	// Rows and Cols size matrices and images.
	Rows int `yaml:"rows,omitempty"`
	Cols int `yaml:"cols,omitempty"`
	// Value is bound to the widget after creation.
	Value any `yaml:"value,omitempty"`

	ReadOnly  bool `yaml:"read_only,omitempty"`
	Disabled  bool `yaml:"disabled,omitempty"`
	Hidden    bool `yaml:"hidden,omitempty"`
	Collapsed bool `yaml:"collapsed,omitempty"`

	Children []Node `yaml:"children,omitempty"`
}

// Load reads a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

// Parse decodes a scene document. Missing window sizes default to 640x480.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if sc.Window.Width <= 0 {
		sc.Window.Width = 640
	}
	if sc.Window.Height <= 0 {
		sc.Window.Height = 480
	}
	if sc.Window.Title == "" {
		sc.Window.Title = "edwin"
	}
	return &sc, nil
}

// ConfigPath returns the configuration file named by the scene, resolved
// against the scene directory, or "" when there is none.
func (sc *Scene) ConfigPath() string {
	if sc.Config == "" || filepath.IsAbs(sc.Config) {
		return sc.Config
	}
	return filepath.Join(sc.dir, sc.Config)
}

// Built keeps the storage bound to the widgets of a built scene.
type Built struct {
	// Values maps value nodes to the storage they are bound to.
	Values map[ui.ID]any
}

// Build creates the scene nodes at the cursor of s and lays out the tree.
// Violations raised while building are returned as errors regardless of the
// State policy.
func (sc *Scene) Build(s *ui.State) (built *Built, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(*errors.ViolationError)
			if !ok {
				panic(r)
			}
			built, err = nil, v
		}
	}()

	b := &builder{s: s, built: &Built{Values: make(map[ui.ID]any)}}
	for i := range sc.Nodes {
		if err := b.node(&sc.Nodes[i], fmt.Sprintf("nodes[%d]", i)); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	s.Invalidate(ui.RootID)
	return b.built, nil
}

// ParseLayout converts a layout name. Empty selects vertical.
func ParseLayout(name string) (ui.Layout, error) {
	switch name {
	case "", "vertical":
		return ui.Vertical, nil
	case "horizontal":
		return ui.Horizontal, nil
	case "absolute":
		return ui.Absolute, nil
	}
	return 0, fmt.Errorf("unknown layout %q", name)
}

func rectOf(v []float32) (ui.Rect, error) {
	switch len(v) {
	case 0:
		return ui.Rect{}, nil
	case 4:
		return ui.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	}
	return ui.Rect{}, stderrors.New("rect needs four values [x, y, w, h]")
}
