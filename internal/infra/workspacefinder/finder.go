package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/gabryel85/peopletable/internal/infra/config"
	"github.com/gabryel85/peopletable/internal/ports"
)

// Finder locates a peopletable workspace root by searching for peopletable.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "peopletable.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: config.FileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: startDir is empty", domain.ErrInvalidConfig),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%w: %w", domain.ErrExecution, err),
		}
	}

	// A file path searches from its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
