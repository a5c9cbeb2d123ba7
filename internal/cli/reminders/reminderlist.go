package reminders

import (
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
)

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.RequireUser(); err != nil {
		return err
	}

	scheduled, err := ctx.ReminderService().ListScheduled()
	if err != nil {
		return err
	}
	if len(scheduled) == 0 {
		fmt.Println(cli.FaintStyle.Render("No reminders scheduled, run 'praxis reminders refresh'"))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Scheduled reminders"))
	for _, r := range scheduled {
		fmt.Printf("  %s  %s\n", r.FireAt.Format("Mon Jan 2 15:04"), r.Title)
	}
	return nil
}
