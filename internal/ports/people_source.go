package ports

import "github.com/gabryel85/peopletable/internal/domain"

// PeopleSource loads the seed list a table starts from (e.g., a JSON file).
// An empty path selects the source's built-in default.
type PeopleSource interface {
	LoadPeople(path string) ([]domain.Person, error)
}
