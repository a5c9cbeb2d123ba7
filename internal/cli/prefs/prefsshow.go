package prefs

import (
	"fmt"
	"strings"

	"github.com/praxishq/praxis-cli/internal/cli"
)

type PrefsShowCmd struct{}

func (c *PrefsShowCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	prefs, err := ctx.Store.GetReminderPrefs(session.UserID)
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("Reminder preferences"))
	state := cli.SuccessStyle.Render("enabled")
	if !prefs.Enabled {
		state = cli.WarnStyle.Render("disabled")
	}
	fmt.Printf("  Reminders:  %s\n", state)
	fmt.Printf("  Per day:    %d\n", prefs.FrequencyPerDay)
	fmt.Printf("  Times:      %s\n", strings.Join(prefs.Slots(), ", "))
	return nil
}
