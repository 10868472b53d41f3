// Package config loads edwin tree and style settings from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	edwinerrors "github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/ui"
)

// SchemaMajor is the configuration schema major version this module reads.
const SchemaMajor = "v1"

// FileNames are the names LoadOptional looks for, in order.
var FileNames = []string{"edwin.yaml", "edwin.yml", "edwin.toml"}

// Config is the contents of an edwin configuration file.
type Config struct {
	// Version is the schema version, for example "1.0" or "v1.2.0".
	// Empty means the current schema.
	Version string      `yaml:"version,omitempty" toml:"version,omitempty"`
	Tree    TreeConfig  `yaml:"tree" toml:"tree"`
	Style   StyleConfig `yaml:"style" toml:"style"`
}

// TreeConfig sizes the fixed-capacity structures of a ui.State.
type TreeConfig struct {
	NodeCapacity   int `yaml:"node_capacity,omitempty" toml:"node_capacity,omitempty"`
	RectStackSize  int `yaml:"rect_stack_size,omitempty" toml:"rect_stack_size,omitempty"`
	UpdateCapacity int `yaml:"update_capacity,omitempty" toml:"update_capacity,omitempty"`
	// Policy is "panic" or "report".
	Policy string `yaml:"policy,omitempty" toml:"policy,omitempty"`
}

// StyleConfig overrides ui.DefaultStyle. Zero fields keep the default.
type StyleConfig struct {
	Spacing        int `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
	Padding        int `yaml:"padding,omitempty" toml:"padding,omitempty"`
	BorderSize     int `yaml:"border_size,omitempty" toml:"border_size,omitempty"`
	ScrollbarSize  int `yaml:"scrollbar_size,omitempty" toml:"scrollbar_size,omitempty"`
	TextWSpacing   int `yaml:"text_w_spacing,omitempty" toml:"text_w_spacing,omitempty"`
	TextHSpacing   int `yaml:"text_h_spacing,omitempty" toml:"text_h_spacing,omitempty"`
	CaptionHeight  int `yaml:"caption_height,omitempty" toml:"caption_height,omitempty"`
	ScrollWheel    int `yaml:"scroll_wheel,omitempty" toml:"scroll_wheel,omitempty"`
	ScrollUnit     int `yaml:"scroll_unit,omitempty" toml:"scroll_unit,omitempty"`
	NumberDeadzone int `yaml:"number_deadzone,omitempty" toml:"number_deadzone,omitempty"`

	LabelWidth  float32 `yaml:"label_width,omitempty" toml:"label_width,omitempty"`
	LabelHeight float32 `yaml:"label_height,omitempty" toml:"label_height,omitempty"`
	InputHeight float32 `yaml:"input_height,omitempty" toml:"input_height,omitempty"`

	FloatIncrement   float32 `yaml:"float_increment,omitempty" toml:"float_increment,omitempty"`
	Float64Increment float64 `yaml:"float64_increment,omitempty" toml:"float64_increment,omitempty"`

	// Formats maps kind names ("int", "float64", ...) to display formats.
	Formats map[string]string `yaml:"formats,omitempty" toml:"formats,omitempty"`
}

// Load reads the configuration file at path. The format is chosen by the
// file extension. Unknown keys are logged and ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data as the format implied by name and checks the schema
// version.
func Parse(name string, data []byte) (*Config, error) {
	var cfg Config
	var err error
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(name, data, &cfg)
	case ".toml":
		err = decodeTOML(name, data, &cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(name), err)
	}
	if err := checkVersion(cfg.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(name), err)
	}
	return &cfg, nil
}

// LoadOptional loads the first of FileNames found in dir, or returns the
// default configuration when there is none.
func LoadOptional(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		return Load(path)
	}
	return &Config{}, nil
}

func decodeYAML(name string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	var te *yaml.TypeError
	if !errors.As(err, &te) {
		return err
	}
	for _, msg := range te.Errors {
		log.Printf("edwin: %s: %s", filepath.Base(name), msg)
	}
	// Decode again without the strict check; type errors still fail.
	*cfg = Config{}
	return yaml.Unmarshal(data, cfg)
}

func decodeTOML(name string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	var sme *toml.StrictMissingError
	if !errors.As(err, &sme) {
		return err
	}
	for i := range sme.Errors {
		log.Printf("edwin: %s: unknown key %s", filepath.Base(name), strings.Join(sme.Errors[i].Key(), "."))
	}
	*cfg = Config{}
	return toml.Unmarshal(data, cfg)
}

// canonicalVersion adds the v prefix semver expects.
func canonicalVersion(v string) string {
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	cv := canonicalVersion(v)
	if !semver.IsValid(cv) {
		return fmt.Errorf("invalid config version %q", v)
	}
	if major := semver.Major(cv); major != SchemaMajor {
		return fmt.Errorf("config version %s is not supported (schema %s)", v, SchemaMajor)
	}
	return nil
}

// ParsePolicy converts a policy name to a ui.Policy. Empty selects panic.
func ParsePolicy(name string) (ui.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "panic":
		return ui.PolicyPanic, nil
	case "report":
		return ui.PolicyReport, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want panic or report)", name)
	}
}

// Options returns the ui.Options described by the configuration.
func (c *Config) Options() (ui.Options, error) {
	policy, err := ParsePolicy(c.Tree.Policy)
	if err != nil {
		return ui.Options{}, err
	}
	st, err := c.Style.apply(ui.DefaultStyle())
	if err != nil {
		return ui.Options{}, err
	}
	return ui.Options{
		NodeCapacity:   c.Tree.NodeCapacity,
		RectStackSize:  c.Tree.RectStackSize,
		UpdateCapacity: c.Tree.UpdateCapacity,
		Policy:         policy,
		Style:          &st,
	}, nil
}

func override[T int | float32 | float64](dst *T, v T) {
	if v != 0 {
		*dst = v
	}
}

func (sc StyleConfig) apply(st ui.Style) (ui.Style, error) {
	override(&st.Spacing, sc.Spacing)
	override(&st.Padding, sc.Padding)
	override(&st.BorderSize, sc.BorderSize)
	override(&st.ScrollbarSize, sc.ScrollbarSize)
	override(&st.TextWSpacing, sc.TextWSpacing)
	override(&st.TextHSpacing, sc.TextHSpacing)
	override(&st.CaptionHeight, sc.CaptionHeight)
	override(&st.ScrollWheel, sc.ScrollWheel)
	override(&st.ScrollUnit, sc.ScrollUnit)
	override(&st.NumberDeadzone, sc.NumberDeadzone)
	override(&st.LabelWidth, sc.LabelWidth)
	override(&st.LabelHeight, sc.LabelHeight)
	override(&st.InputHeight, sc.InputHeight)
	override(&st.FloatIncrement, sc.FloatIncrement)
	override(&st.Float64Increment, sc.Float64Increment)

	for name, format := range sc.Formats {
		k, ok := ui.ParseKind(name)
		if !ok || int(k) >= len(st.Formats) {
			return st, fmt.Errorf("unknown value kind %q in style formats", name)
		}
		st.Formats[k] = format
	}
	return st, nil
}

// Validate reports every setting that New would reject or silently replace.
// The result is an *errors.ViolationError of kind KindConfig wrapping the
// joined problems.
func (c *Config) Validate() error {
	var errs []error
	if c.Tree.NodeCapacity < 0 || c.Tree.NodeCapacity == 1 {
		errs = append(errs, fmt.Errorf("tree.node_capacity must be at least 2, got %d", c.Tree.NodeCapacity))
	}
	if c.Tree.RectStackSize < 0 {
		errs = append(errs, fmt.Errorf("tree.rect_stack_size must not be negative, got %d", c.Tree.RectStackSize))
	}
	if c.Tree.UpdateCapacity < 0 {
		errs = append(errs, fmt.Errorf("tree.update_capacity must not be negative, got %d", c.Tree.UpdateCapacity))
	}
	if w := c.Style.LabelWidth; w < 0 || w > 1 {
		errs = append(errs, fmt.Errorf("style.label_width must be a fraction in (0, 1], got %g", w))
	}
	if _, err := c.Options(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return &edwinerrors.ViolationError{Op: "config.Validate", Kind: edwinerrors.KindConfig, Err: errors.Join(errs...)}
}
