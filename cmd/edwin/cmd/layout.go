package cmd

import (
	"errors"
	"path/filepath"

	"github.com/go-edwin/edwin/cmd/edwin/internal/scene"
	"github.com/go-edwin/edwin/pkg/config"
	"github.com/go-edwin/edwin/pkg/headless"
	"github.com/go-edwin/edwin/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Build a scene and print its geometry",
		Long: `Build a scene file on the headless backend and print every node with
its computed rectangle, followed by layout statistics.

The configuration is taken from --config, else from the config key of the
scene, else from an edwin.yaml, edwin.yml or edwin.toml next to the scene.

Flags:
  --config FILE   Configuration file
  --cells         Measure text in terminal cells instead of a bitmap font
  --size WxH      Override the window size of the scene`,
		Usage: "edwin layout <scene.yaml> [--config FILE] [--cells] [--size WxH]",
		Run:   runLayout,
	})
}

type layoutArgs struct {
	scene  string
	config string
	cells  bool
	width  int
	height int
}

func parseLayoutArgs(args []string) (layoutArgs, error) {
	var la layoutArgs
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--config", "--size":
			if i+1 >= len(args) {
				return la, errors.New(arg + " requires a value")
			}
			i++
			if arg == "--config" {
				la.config = args[i]
				break
			}
			w, h, err := parseSize(args[i])
			if err != nil {
				return la, err
			}
			la.width, la.height = w, h
		case "--cells":
			la.cells = true
		default:
			if len(arg) > 0 && arg[0] == '-' {
				return la, errors.New("unknown flag: " + arg)
			}
			if la.scene != "" {
				return la, errors.New("only one scene file may be given")
			}
			la.scene = arg
		}
	}
	if la.scene == "" {
		return la, errors.New("usage: edwin layout <scene.yaml>")
	}
	return la, nil
}

func runLayout(args []string) error {
	la, err := parseLayoutArgs(args)
	if err != nil {
		return err
	}

	sc, err := scene.Load(la.scene)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(la.config, sc.ConfigPath(), filepath.Dir(la.scene))
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	if la.width > 0 {
		sc.Window.Width, sc.Window.Height = la.width, la.height
	}
	b := headless.New()
	if la.cells {
		b.Measurer = headless.CellMeasurer{CellW: 8, CellH: 16}
	}
	s := ui.New(b, b.NewWindow(sc.Window.Title, sc.Window.Width, sc.Window.Height), opts)
	defer s.Close()

	if _, err := sc.Build(s); err != nil {
		return err
	}
	return scene.Dump(stdout, s, b)
}

// loadConfig picks the first of an explicit path, the scene's config and a
// config file in dir.
func loadConfig(explicit, fromScene, dir string) (*config.Config, error) {
	switch {
	case explicit != "":
		return config.Load(explicit)
	case fromScene != "":
		return config.Load(fromScene)
	}
	return config.LoadOptional(dir)
}
