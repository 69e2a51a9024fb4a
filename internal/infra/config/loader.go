package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/gabryel85/peopletable/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace config file looked up by the finder.
const FileName = "peopletable.yaml"

// Load reads peopletable.yaml from root (when present), applies it over the
// defaults and then applies PEOPLETABLE_* environment overrides. A missing
// file is not an error; an empty root skips the file entirely.
func Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if root != "" {
		path := filepath.Join(root, FileName)
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			var y YAMLConfig
			if err := yaml.Unmarshal(b, &y); err != nil {
				return cfg, &domain.OpError{
					Op:   "config.load",
					Kind: domain.KindInvalidConfig,
					Path: path,
					Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
				}
			}
			cfg = MapConfig(root, cfg, y)

		case errors.Is(err, os.ErrNotExist):
			// No file: defaults plus env.

		default:
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindExecution,
				Path: path,
				Err:  fmt.Errorf("%w: %w", domain.ErrExecution, err),
			}
		}
	}

	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: parse env: %w", domain.ErrInvalidConfig, err),
		}
	}

	wd := root
	if wd == "" {
		wd, _ = os.Getwd()
	}
	return mapEnv(wd, cfg, o), nil
}
