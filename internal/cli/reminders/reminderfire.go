package reminders

import (
	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/notifier"
)

// ReminderFireCmd delivers everything currently due. The watch loop runs the
// same path on a timer; this command exists for external schedulers (cron,
// launchd) that prefer a one-shot invocation.
type ReminderFireCmd struct{}

func (c *ReminderFireCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.RequireUser(); err != nil {
		return err
	}
	_, err := ctx.ReminderService().Fire(notifier.New())
	return err
}
