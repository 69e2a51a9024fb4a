package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/gabryel85/peopletable/internal/infra/config"
	"github.com/gabryel85/peopletable/internal/infra/peopleseed"
	"github.com/gabryel85/peopletable/internal/ports"
)

type workspaceCtx struct {
	// root is empty when no peopletable.yaml was found; the embedded seed
	// and env overrides still apply.
	root string
	cfg  domain.Config

	source ports.PeopleSource
}

func loadWorkspace(locator ports.WorkspaceLocator, workspaceFlag, seedFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(locator, workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	if s := strings.TrimSpace(seedFlag); s != "" {
		abs, err := filepath.Abs(s)
		if err != nil {
			return nil, fmt.Errorf("invalid seed path: %w", err)
		}
		cfg.Seed.Path = abs
	}

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		source: peopleseed.NewLoader(),
	}, nil
}

func (ws *workspaceCtx) tableOptions() []domain.TableOption {
	return []domain.TableOption{
		domain.WithPruneOnDelete(ws.cfg.Selection.PruneOnDelete),
	}
}

// seedName is how the configured seed is shown to users.
func (ws *workspaceCtx) seedName() string {
	if ws.cfg.Seed.Path == "" {
		return peopleseed.DefaultName
	}
	if ws.root != "" {
		if rel, err := filepath.Rel(ws.root, ws.cfg.Seed.Path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return ws.cfg.Seed.Path
}

// resolveWorkspaceRoot honors an explicit flag, otherwise searches upward
// from the working directory. Not finding a workspace is not an error.
func resolveWorkspaceRoot(locator ports.WorkspaceLocator, workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return root, nil
}

// logRoot picks where .peopletable/logs lives: the workspace, else the cwd.
func logRoot(ws *workspaceCtx) string {
	if ws != nil && ws.root != "" {
		return ws.root
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	abs, _ := filepath.Abs(wd)
	return abs
}
