package groups

import (
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/constants"
)

type GroupMembersCmd struct {
	Group string `arg:"" help:"Group ID or name."`
}

func (c *GroupMembersCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}

	members, err := ctx.Store.GetMemberships(group.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d members)\n", cli.TitleStyle.Render(group.Name), len(members))
	for _, m := range members {
		label := m.UserID
		if m.UserID == group.OwnerID {
			label += cli.FaintStyle.Render(" (owner)")
		}
		if m.UserID == session.UserID {
			label += cli.FaintStyle.Render(" (you)")
		}
		fmt.Printf("  %s  joined %s\n", label, m.JoinedAt.Format(constants.DateFormat))
	}

	return nil
}
