package peopleseed

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadPeople_EmbeddedDefault(t *testing.T) {
	people, err := NewLoader().LoadPeople("")
	if err != nil {
		t.Fatalf("LoadPeople error: %v", err)
	}
	if len(people) == 0 {
		t.Fatalf("expected embedded seed to have people")
	}
	if people[0].Slug != "carolus-haverbeke-1832" {
		t.Fatalf("expected first slug carolus-haverbeke-1832, got %s", people[0].Slug)
	}
}

func TestLoadPeople_JSON(t *testing.T) {
	p := writeSeed(t, "people.json", `[
  {"slug": "a", "name": "Alice", "sex": "f", "born": 1990, "died": 2050},
  {"slug": "b", "name": "Bob", "sex": "m", "born": 1985}
]`)

	people, err := NewLoader().LoadPeople(p)
	if err != nil {
		t.Fatalf("LoadPeople error: %v", err)
	}

	want := []domain.Person{
		{Slug: "a", Name: "Alice", Sex: domain.SexFemale, Born: 1990},
		{Slug: "b", Name: "Bob", Sex: domain.SexMale, Born: 1985},
	}
	if diff := cmp.Diff(want, people); diff != "" {
		t.Fatalf("people mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPeople_YAML(t *testing.T) {
	p := writeSeed(t, "people.yml", `
- slug: a
  name: Alice
  sex: f
  born: 1990
`)

	people, err := NewLoader().LoadPeople(p)
	if err != nil {
		t.Fatalf("LoadPeople error: %v", err)
	}
	if len(people) != 1 || people[0].Name != "Alice" || people[0].Born != 1990 {
		t.Fatalf("unexpected people: %+v", people)
	}
}

func TestLoadPeople_Errors(t *testing.T) {
	cases := []struct {
		name     string
		file     string
		content  string
		wantKind domain.ErrorKind
	}{
		{"duplicate slug", "dup.json", `[{"slug":"a","name":"A","sex":"f"},{"slug":"a","name":"B","sex":"m"}]`, domain.KindInvalidData},
		{"bad sex", "sex.json", `[{"slug":"a","name":"A","sex":"x"}]`, domain.KindInvalidData},
		{"malformed json", "bad.json", `[{"slug":`, domain.KindInvalidData},
		{"malformed yaml", "bad.yaml", "- slug: [", domain.KindInvalidData},
		{"unsupported extension", "people.csv", "slug,name", domain.KindInvalidConfig},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := writeSeed(t, c.file, c.content)
			_, err := NewLoader().LoadPeople(p)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, c.wantKind) {
				t.Fatalf("expected kind %s, got %v", c.wantKind, err)
			}
		})
	}
}

func TestLoadPeople_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadPeople(filepath.Join(t.TempDir(), "nope.json"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected wrapped ErrNotFound, got %v", err)
	}
}

func TestLoadPeople_UnreadableFile(t *testing.T) {
	cases := []struct {
		name   string
		loader *Loader
		path   string
	}{
		{"directory", NewLoader(), t.TempDir()},
		{"permission", NewLoader(WithReadFile(func(string) ([]byte, error) {
			return nil, &fs.PathError{Op: "open", Path: "people.json", Err: fs.ErrPermission}
		})), "people.json"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.loader.LoadPeople(c.path)
			if domain.IsKind(err, domain.KindNotFound) {
				t.Fatalf("expected a read failure not to be reported as missing: %v", err)
			}
			if !domain.IsKind(err, domain.KindExecution) {
				t.Fatalf("expected KindExecution, got %v", err)
			}
			if !errors.Is(err, domain.ErrExecution) {
				t.Fatalf("expected wrapped ErrExecution, got %v", err)
			}
		})
	}
}

func TestLoadPeople_WithReadFile(t *testing.T) {
	l := NewLoader(WithReadFile(func(string) ([]byte, error) {
		return []byte(`[{"slug":"z","name":"Zed","sex":"m","born":2000}]`), nil
	}))

	people, err := l.LoadPeople("virtual.json")
	if err != nil {
		t.Fatalf("LoadPeople error: %v", err)
	}
	if len(people) != 1 || people[0].Slug != "z" {
		t.Fatalf("unexpected people: %+v", people)
	}
}
