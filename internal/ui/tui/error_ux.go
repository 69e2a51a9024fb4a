package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabryel85/peopletable/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		base := "config"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}

		switch oe.Kind {
		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "peopleseed") {
				return "Seed file not found: " + base
			}
			return "Not found"

		case domain.KindInvalidData:
			if detail := invalidDataDetail(oe.Err); detail != "" {
				return "Invalid seed at " + base + ": " + detail
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid seed at " + base + " line " + line
			}
			return "Invalid seed at " + base

		case domain.KindInvalidConfig:
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindExecution:
			if strings.HasPrefix(oe.Op, "peopleseed") {
				return "Cannot read seed file: " + base
			}
			return "Unexpected error (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

// invalidDataDetail returns the validation message of a seed error, without
// the sentinel prefix. Decode errors yield "".
func invalidDataDetail(err error) string {
	if err == nil || !errors.Is(err, domain.ErrInvalidData) {
		return ""
	}
	msg := err.Error()
	return strings.TrimPrefix(msg, domain.ErrInvalidData.Error()+": ")
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
