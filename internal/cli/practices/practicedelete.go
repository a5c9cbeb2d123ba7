package practices

import (
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
)

type PracticeDeleteCmd struct {
	Group    string `arg:"" help:"Group ID or name."`
	Practice string `arg:"" help:"Practice ID or title."`
	Yes      bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PracticeDeleteCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := groups.ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}
	if !group.IsOwnedBy(session.UserID) {
		return fmt.Errorf("only the group owner can delete practices: %w", apperrors.ErrNotAuthorized)
	}

	practice, err := ResolvePractice(ctx, group.ID, c.Practice)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete practice %q and its progress?", practice.Title))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeletePractice(practice.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted practice %s\n", practice.Title)
	return nil
}
