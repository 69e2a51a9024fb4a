package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gabryel85/peopletable/internal/domain"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_AppliesFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
peopletable:
  seed: data/people.yaml
  selection:
    prune_on_delete: true
`)

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if want := filepath.Join(root, "data", "people.yaml"); cfg.Seed.Path != want {
		t.Fatalf("expected seed=%s, got=%s", want, cfg.Seed.Path)
	}
	if !cfg.Selection.PruneOnDelete {
		t.Fatalf("expected prune_on_delete=true")
	}
	if cfg.Debug {
		t.Fatalf("expected debug default false")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "peopletable:\n  debug: true\n")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug=true")
	}
	if cfg.Seed.Path != "" {
		t.Fatalf("expected embedded seed default, got %q", cfg.Seed.Path)
	}
	if cfg.Selection.PruneOnDelete {
		t.Fatalf("expected prune_on_delete default false")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "peopletable: [\n")

	_, err := Load(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected wrapped ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, FileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := Load(root)
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
	if !errors.Is(err, domain.ErrExecution) {
		t.Fatalf("expected wrapped ErrExecution, got %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
peopletable:
  seed: people.json
  selection:
    prune_on_delete: true
`)
	t.Setenv("PEOPLETABLE_SEED", "/abs/other.yaml")
	t.Setenv("PEOPLETABLE_PRUNE_ON_DELETE", "false")
	t.Setenv("PEOPLETABLE_DEBUG", "true")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Seed.Path != "/abs/other.yaml" {
		t.Fatalf("expected env seed, got %s", cfg.Seed.Path)
	}
	if cfg.Selection.PruneOnDelete {
		t.Fatalf("expected env to turn prune_on_delete off")
	}
	if !cfg.Debug {
		t.Fatalf("expected env debug=true")
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("PEOPLETABLE_DEBUG", "maybe")

	_, err := Load(t.TempDir())
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected wrapped ErrInvalidConfig, got %v", err)
	}
}
