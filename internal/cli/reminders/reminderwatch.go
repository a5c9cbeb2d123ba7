package reminders

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/notifier"
)

type ReminderWatchCmd struct{}

func (c *ReminderWatchCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.RequireUser(); err != nil {
		return err
	}

	fmt.Println("Watching for due reminders, press Ctrl+C to stop")

	watchCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := ctx.ReminderService().Watch(watchCtx, notifier.New())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
