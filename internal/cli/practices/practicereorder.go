package practices

import (
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
)

type PracticeReorderCmd struct {
	Group     string   `arg:"" help:"Group ID or name."`
	Practices []string `arg:"" help:"Practice IDs or titles in the desired order."`
}

func (c *PracticeReorderCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := groups.ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}

	orderedIDs := make([]string, 0, len(c.Practices))
	for _, ref := range c.Practices {
		p, err := ResolvePractice(ctx, group.ID, ref)
		if err != nil {
			return err
		}
		orderedIDs = append(orderedIDs, p.ID)
	}

	// The ordering service enforces the owner gate; a partial failure means
	// the saved order is mixed and the list command shows the truth.
	if err := ctx.OrderingService().Reorder(session.UserID, group.ID, orderedIDs); err != nil {
		return err
	}

	fmt.Printf("Reordered %d practices in %s\n", len(orderedIDs), group.Name)
	return nil
}
