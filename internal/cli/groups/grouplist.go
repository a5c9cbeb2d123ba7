package groups

import (
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
)

type GroupListCmd struct{}

func (c *GroupListCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	groups, err := ctx.Store.GetGroupsForUser(session.UserID)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		fmt.Println("No groups yet. Create one with 'praxis group create' or join with a code.")
		return nil
	}

	for _, g := range groups {
		marker := ""
		if g.IsOwnedBy(session.UserID) {
			marker = cli.FaintStyle.Render(" (owner)")
		}
		fmt.Printf("%s%s\n", cli.TitleStyle.Render(g.Name), marker)
		fmt.Printf("  code: %s  id: %s\n", g.JoinCode, cli.FaintStyle.Render(g.ID))
	}

	return nil
}
