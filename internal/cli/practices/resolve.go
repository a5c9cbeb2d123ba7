package practices

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/praxishq/praxis-cli/internal/cli"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

// ResolvePractice finds a practice in the group by ID or by (unique) title.
func ResolvePractice(ctx *cli.Context, groupID, ref string) (models.Practice, error) {
	practices, err := ctx.Store.GetPracticesForGroup(groupID)
	if err != nil {
		return models.Practice{}, err
	}

	for _, p := range practices {
		if p.ID == ref {
			return p, nil
		}
	}

	var matches []models.Practice
	for _, p := range practices {
		if strings.EqualFold(p.Title, ref) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Practice{}, fmt.Errorf("practice %q: %w", ref, apperrors.ErrNotFound)
	default:
		return models.Practice{}, fmt.Errorf("practice title %q is ambiguous, use the ID", ref)
	}
}

// ParseFrequency parses "2" (fixed) or "1-3" (range) into a Frequency.
func ParseFrequency(s string) (models.Frequency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Frequency{}, nil
	}

	if min, max, ok := strings.Cut(s, "-"); ok {
		lo, err := strconv.Atoi(strings.TrimSpace(min))
		if err != nil {
			return models.Frequency{}, fmt.Errorf("invalid frequency %q", s)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(max))
		if err != nil {
			return models.Frequency{}, fmt.Errorf("invalid frequency %q", s)
		}
		if lo < 1 || hi < lo {
			return models.Frequency{}, fmt.Errorf("invalid frequency range %q", s)
		}
		return models.Frequency{Min: lo, Max: hi}, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return models.Frequency{}, fmt.Errorf("invalid frequency %q", s)
	}
	return models.Frequency{Min: n, Max: n}, nil
}
