package groups

import (
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
)

type GroupDeleteCmd struct {
	Group string `arg:"" help:"Group ID or name."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *GroupDeleteCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}

	if !group.IsOwnedBy(session.UserID) {
		return fmt.Errorf("only the group owner can delete %s: %w", group.Name, apperrors.ErrNotAuthorized)
	}

	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete group %q and all of its practices?", group.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteGroup(group.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted group %s\n", group.Name)
	return nil
}
