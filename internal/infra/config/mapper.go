package config

import (
	"path/filepath"
	"strings"

	"github.com/gabryel85/peopletable/internal/domain"
)

// MapConfig applies parsed values on top of cfg. A relative seed path is
// resolved against root.
func MapConfig(root string, cfg domain.Config, y YAMLConfig) domain.Config {
	pt := y.PeopleTable

	if seed := strings.TrimSpace(pt.Seed); seed != "" {
		cfg.Seed.Path = resolvePath(root, seed)
	}
	if pt.Selection.PruneOnDelete != nil {
		cfg.Selection.PruneOnDelete = *pt.Selection.PruneOnDelete
	}
	if pt.Debug != nil {
		cfg.Debug = *pt.Debug
	}

	return cfg
}

func mapEnv(root string, cfg domain.Config, o envOverrides) domain.Config {
	if o.Seed != nil && strings.TrimSpace(*o.Seed) != "" {
		cfg.Seed.Path = resolvePath(root, strings.TrimSpace(*o.Seed))
	}
	if o.PruneOnDelete != nil {
		cfg.Selection.PruneOnDelete = *o.PruneOnDelete
	}
	if o.Debug != nil {
		cfg.Debug = *o.Debug
	}
	return cfg
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) || root == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
