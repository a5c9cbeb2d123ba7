package practices

import (
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
)

type PracticeListCmd struct {
	Group string `arg:"" help:"Group ID or name."`
}

func (c *PracticeListCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := groups.ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}

	practices, err := ctx.Store.GetPracticesForGroup(group.ID)
	if err != nil {
		return err
	}

	if len(practices) == 0 {
		fmt.Printf("No practices in %s yet.\n", group.Name)
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(group.Name))
	for i, p := range practices {
		details := fmt.Sprintf("%s to %s", p.StartDate, p.EndDate)
		if s := p.Frequency.String(); s != "" {
			details += ", " + s
		}
		if p.NumberOfDays > 0 {
			details += fmt.Sprintf(", %d days", p.NumberOfDays)
		}

		// Personal overrides shift the dates shown.
		if o, err := ctx.Store.GetOverride(p.ID, session.UserID); err == nil {
			details += fmt.Sprintf(" (yours: %s to %s)", o.StartDate, o.EndDate)
		}

		fmt.Printf("%2d. %s  %s\n", i+1, p.Title, cli.FaintStyle.Render(details))
	}

	return nil
}
