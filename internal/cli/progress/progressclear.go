package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
	"github.com/praxishq/praxis-cli/internal/cli/practices"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/utils"
)

type ProgressClearCmd struct {
	Group    string `arg:"" help:"Group ID or name."`
	Practice string `arg:"" help:"Practice ID or title."`
	Date     string `short:"d" help:"Day to clear (YYYY-MM-DD), defaults to today."`
}

func (c *ProgressClearCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *ProgressClearCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := groups.ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}
	practice, err := practices.ResolvePractice(ctx, group.ID, c.Practice)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = utils.Today(time.Local)
	}

	if err := ctx.Store.DeleteProgress(practice.ID, session.UserID, day); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fmt.Printf("No progress recorded for %s on %s\n", practice.Title, day)
			return nil
		}
		return err
	}

	fmt.Printf("Cleared progress for %s on %s\n", practice.Title, day)
	return nil
}
