package config

import (
	"bytes"
	stderrors "errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	edwinerrors "github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/ui"
)

const yamlConfig = `version: "1.0"
tree:
  node_capacity: 128
  policy: report
style:
  spacing: 4
  label_width: 0.5
  formats:
    float: "%.1f"
`

const tomlConfig = `version = "v1.2.0"

[tree]
node_capacity = 128
policy = "report"

[style]
spacing = 4
label_width = 0.5

[style.formats]
float = "%.1f"
`

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"edwin.yaml", yamlConfig},
		{"edwin.toml", tomlConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.name, []byte(tt.data))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			opts, err := cfg.Options()
			if err != nil {
				t.Fatalf("Options: %v", err)
			}
			if opts.NodeCapacity != 128 || opts.Policy != ui.PolicyReport {
				t.Errorf("tree options = %+v", opts)
			}
			st := opts.Style
			if st.Spacing != 4 || st.LabelWidth != 0.5 {
				t.Errorf("style overrides not applied: spacing %d, label width %v", st.Spacing, st.LabelWidth)
			}
			if st.Padding != ui.DefaultStyle().Padding {
				t.Errorf("padding = %d, want the default", st.Padding)
			}
			if st.Formats[ui.KindFloat] != "%.1f" || st.Formats[ui.KindInt] != "%d" {
				t.Errorf("formats = %q", st.Formats)
			}
		})
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"", false},
		{"1", false},
		{"v1.4.2", false},
		{"1.0", false},
		{"v2.0.0", true},
		{"0.9", true},
		{"latest", true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := checkVersion(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkVersion(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
		})
	}
}

func TestParse_UnknownKeysLogged(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})

	tests := []struct {
		name, data, key string
	}{
		{"edwin.yaml", "style:\n  spacing: 2\n  glow: 3\n", "glow"},
		{"edwin.toml", "[style]\nspacing = 2\nglow = 3\n", "glow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			cfg, err := Parse(tt.name, []byte(tt.data))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if cfg.Style.Spacing != 2 {
				t.Errorf("known key lost: spacing = %d", cfg.Style.Spacing)
			}
			if !strings.Contains(buf.String(), tt.key) {
				t.Errorf("log %q does not mention %s", buf.String(), tt.key)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name, data string
	}{
		{"edwin.json", "{}"},
		{"edwin.yaml", "tree:\n  node_capacity: many\n"},
		{"edwin.toml", "version = \"2.0\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.name, []byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional on empty dir: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if *opts.Style != ui.DefaultStyle() || opts.Policy != ui.PolicyPanic {
		t.Error("expected defaults without a config file")
	}

	if err := os.WriteFile(filepath.Join(dir, "edwin.toml"), []byte(tomlConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Tree.NodeCapacity != 128 {
		t.Errorf("node capacity = %d, want 128", cfg.Tree.NodeCapacity)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"one node", Config{Tree: TreeConfig{NodeCapacity: 1}}, true},
		{"negative stack", Config{Tree: TreeConfig{RectStackSize: -1}}, true},
		{"label width", Config{Style: StyleConfig{LabelWidth: 1.5}}, true},
		{"policy", Config{Tree: TreeConfig{Policy: "ignore"}}, true},
		{"format kind", Config{Style: StyleConfig{Formats: map[string]string{"decimal": "%d"}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			var v *edwinerrors.ViolationError
			if err != nil && (!stderrors.As(err, &v) || v.Kind != edwinerrors.KindConfig) {
				t.Errorf("Validate() error = %#v, want a config violation", err)
			}
		})
	}
}
