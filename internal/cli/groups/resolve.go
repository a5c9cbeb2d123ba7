package groups

import (
	"fmt"
	"strings"

	"github.com/praxishq/praxis-cli/internal/cli"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

// ResolveGroup finds a group of the user's by ID or by (unique) name.
func ResolveGroup(ctx *cli.Context, userID, ref string) (models.Group, error) {
	groups, err := ctx.Store.GetGroupsForUser(userID)
	if err != nil {
		return models.Group{}, err
	}

	for _, g := range groups {
		if g.ID == ref {
			return g, nil
		}
	}

	var matches []models.Group
	for _, g := range groups {
		if strings.EqualFold(g.Name, ref) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Group{}, fmt.Errorf("group %q: %w", ref, apperrors.ErrNotFound)
	default:
		return models.Group{}, fmt.Errorf("group name %q is ambiguous, use the ID", ref)
	}
}
