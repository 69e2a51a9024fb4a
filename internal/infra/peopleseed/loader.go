package peopleseed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabryel85/peopletable/internal/domain"
	"github.com/gabryel85/peopletable/internal/ports"
	"gopkg.in/yaml.v3"
)

//go:embed data/people.json
var defaultSeed []byte

// DefaultName is what the embedded seed is reported as in errors and logs.
const DefaultName = "people.json (embedded)"

type Loader struct {
	readFile func(string) ([]byte, error)
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{readFile: os.ReadFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

// WithReadFile swaps the file reader (tests, embedded filesystems).
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(l *Loader) {
		if fn != nil {
			l.readFile = fn
		}
	}
}

var _ ports.PeopleSource = (*Loader)(nil)

// LoadPeople reads a JSON or YAML seed list. An empty path loads the
// embedded default list.
func (l *Loader) LoadPeople(path string) ([]domain.Person, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return decode(DefaultName, formatJSON, defaultSeed)
	}

	b, err := l.readFile(p)
	if err != nil {
		return nil, readError(p, err)
	}

	format, err := formatOf(p)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "peopleseed.load",
			Kind: domain.KindInvalidConfig,
			Path: p,
			Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
		}
	}

	return decode(p, format, b)
}

// readError tells a missing seed apart from one that exists but cannot be read.
func readError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.OpError{
			Op:   "peopleseed.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrNotFound, err),
		}
	}
	return &domain.OpError{
		Op:   "peopleseed.load",
		Kind: domain.KindExecution,
		Path: path,
		Err:  fmt.Errorf("%w: %w", domain.ErrExecution, err),
	}
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported seed extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// seedPerson mirrors one record of the seed file. Unknown fields are ignored.
type seedPerson struct {
	Slug string `json:"slug" yaml:"slug"`
	Name string `json:"name" yaml:"name"`
	Sex  string `json:"sex" yaml:"sex"`
	Born int    `json:"born" yaml:"born"`
}

func decode(path string, f format, b []byte) ([]domain.Person, error) {
	var records []seedPerson

	var err error
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(b, &records)
	default:
		err = json.Unmarshal(b, &records)
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "peopleseed.decode",
			Kind: domain.KindInvalidData,
			Path: path,
			Err:  err,
		}
	}

	people := make([]domain.Person, 0, len(records))
	for _, r := range records {
		people = append(people, domain.Person{
			Slug: strings.TrimSpace(r.Slug),
			Name: r.Name,
			Sex:  domain.Sex(strings.TrimSpace(r.Sex)),
			Born: r.Born,
		})
	}

	if err := domain.ValidatePeople(people); err != nil {
		return nil, &domain.OpError{
			Op:   "peopleseed.validate",
			Kind: domain.KindInvalidData,
			Path: path,
			Err:  err,
		}
	}

	return people, nil
}

// DefaultSeed returns a copy of the embedded seed file.
func DefaultSeed() []byte {
	out := make([]byte, len(defaultSeed))
	copy(out, defaultSeed)
	return out
}
