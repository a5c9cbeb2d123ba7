package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/constants"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/utils"
	"github.com/praxishq/praxis-cli/internal/validation"
)

type PrefsSetCmd struct {
	PerDay  int      `short:"n" default:"-1" help:"Reminders per day (1-3)."`
	Times   []string `short:"t" help:"Reminder times (HH:MM), one per daily slot."`
	Enable  bool     `help:"Turn reminders on."`
	Disable bool     `help:"Turn reminders off."`
}

func (c *PrefsSetCmd) Validate() error {
	if c.Enable && c.Disable {
		return fmt.Errorf("--enable and --disable are mutually exclusive")
	}
	if c.PerDay != -1 && (c.PerDay < constants.MinRemindersPerDay || c.PerDay > constants.MaxRemindersPerDay) {
		return fmt.Errorf("per-day must be between %d and %d",
			constants.MinRemindersPerDay, constants.MaxRemindersPerDay)
	}
	for _, t := range c.Times {
		if !utils.ValidateTimeFormat(t) {
			return fmt.Errorf("invalid time (expected HH:MM): %s", t)
		}
	}
	return nil
}

func (c *PrefsSetCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	prefs, err := ctx.Store.GetReminderPrefs(session.UserID)
	if err != nil {
		return err
	}

	if c.PerDay != -1 {
		prefs.FrequencyPerDay = c.PerDay
	}
	if len(c.Times) > 0 {
		prefs.Times = c.Times
	}
	if c.Enable {
		prefs.Enabled = true
	}
	if c.Disable {
		prefs.Enabled = false
	}
	prefs.Clamp()

	result := validation.New().ValidatePrefs(prefs)
	if result.HasConflicts() {
		return errors.New(result.FormatReport())
	}

	if err := ctx.Store.SaveReminderPrefs(prefs); err != nil {
		return err
	}
	fmt.Println(cli.SuccessStyle.Render("✓") + " Preferences saved")

	// Bring the scheduled reminders in line with the new preferences.
	n, err := ctx.ReminderService().Refresh(context.Background(), session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotPermitted) {
			return nil
		}
		return fmt.Errorf("failed to reschedule reminders: %w", err)
	}
	fmt.Printf("Rescheduled %d reminders\n", n)
	return nil
}
