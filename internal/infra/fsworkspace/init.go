package fsworkspace

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/gabryel85/peopletable/internal/infra/peopleseed"
	"github.com/gabryel85/peopletable/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

const seedFile = "people.json"

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init scaffolds peopletable.yaml and a starter people.json under spec.Root.
// Existing files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	if err := os.MkdirAll(filepath.Join(root, ".peopletable", "logs"), 0o755); err != nil {
		return opErr("fsworkspace.mkdir", root, err)
	}

	if err := ensureGitignore(root); err != nil {
		return opErr("fsworkspace.gitignore", root, err)
	}

	if err := writeFile(filepath.Join(root, seedFile), peopleseed.DefaultSeed(), force); err != nil {
		return opErr("fsworkspace.seed", root, err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		dst := filepath.Join(root, strings.TrimPrefix(p, "templates/"))
		if err := writeFile(dst, b, force); err != nil {
			return opErr("fsworkspace.template", dst, err)
		}
		return nil
	})
}

func writeFile(dst string, b []byte, force bool) error {
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, b, 0o644)
}

func opErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  fmt.Errorf("%w: %w", domain.ErrExecution, err),
	}
}

func ensureGitignore(root string) error {
	const header = "# peopletable"
	entries := []string{
		".peopletable/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
