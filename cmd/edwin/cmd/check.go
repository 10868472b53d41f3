package cmd

import (
	"errors"
	"fmt"

	"github.com/go-edwin/edwin/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate configuration files",
		Long: `Validate one or more edwin configuration files. Unknown keys are
reported as warnings; out of range values and schema versions other than
` + config.SchemaMajor + ` are errors.`,
		Usage: "edwin check <edwin.yaml|edwin.toml>...",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: edwin check <config>...")
	}
	var errs []error
	for _, path := range args {
		cfg, err := config.Load(path)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		fmt.Fprintf(stdout, "%s: ok\n", path)
	}
	return errors.Join(errs...)
}
