package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gabryel85/peopletable/internal/domain"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{
			"seed not found",
			&domain.OpError{Op: "peopleseed.load", Kind: domain.KindNotFound, Path: "/w/people.json", Err: errors.New("no such file")},
			"Seed file not found: people.json",
		},
		{
			"seed validation",
			&domain.OpError{
				Op:   "peopleseed.validate",
				Kind: domain.KindInvalidData,
				Path: "/w/people.json",
				Err:  fmt.Errorf("%w: people[1].slug %q duplicates people[0]", domain.ErrInvalidData, "a"),
			},
			`Invalid seed at people.json: people[1].slug "a" duplicates people[0]`,
		},
		{
			"seed yaml decode",
			&domain.OpError{Op: "peopleseed.decode", Kind: domain.KindInvalidData, Path: "/w/people.yaml", Err: errors.New("yaml: line 3: did not find expected node content")},
			"Invalid seed at people.yaml line 3",
		},
		{
			"config yaml",
			&domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/w/peopletable.yaml", Err: errors.New("yaml: line 2: mapping values are not allowed")},
			"Invalid YAML at peopletable.yaml line 2",
		},
		{
			"config env",
			&domain.OpError{Op: "config.env", Kind: domain.KindInvalidConfig, Err: errors.New("parse env: bad bool")},
			"Invalid config",
		},
		{
			"seed unreadable",
			&domain.OpError{Op: "peopleseed.load", Kind: domain.KindExecution, Path: "/w/people.json", Err: fmt.Errorf("%w: permission denied", domain.ErrExecution)},
			"Cannot read seed file: people.json",
		},
		{
			"execution",
			&domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindExecution, Err: errors.New("denied")},
			"Unexpected error (see logs)",
		},
		{"plain yaml", errors.New("yaml: line 7: oops"), "Invalid YAML line 7"},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := userMessage(c.err); got != c.want {
				t.Fatalf("userMessage() = %q, want %q", got, c.want)
			}
		})
	}
}
