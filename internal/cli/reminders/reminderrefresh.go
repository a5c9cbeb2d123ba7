package reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
)

type ReminderRefreshCmd struct{}

func (c *ReminderRefreshCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	n, err := ctx.ReminderService().Refresh(context.Background(), session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotPermitted) {
			fmt.Println(cli.WarnStyle.Render("Notifications are not permitted, reminders were left unchanged"))
			return nil
		}
		return err
	}

	fmt.Printf("%s Scheduled %d reminders\n", cli.SuccessStyle.Render("✓"), n)
	return nil
}
