package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
	"github.com/praxishq/praxis-cli/internal/utils"
)

type ProgressShowCmd struct {
	Group string `arg:"" help:"Group ID or name."`
	Date  string `short:"d" help:"Day to show (YYYY-MM-DD), defaults to today."`
}

func (c *ProgressShowCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *ProgressShowCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := groups.ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = utils.Today(time.Local)
	}

	practices, err := ctx.Store.GetPracticesForGroup(group.ID)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.GetProgressForDay(session.UserID, day)
	if err != nil {
		return err
	}
	byPractice := make(map[string]models.ProgressEntry, len(entries))
	for _, e := range entries {
		byPractice[e.PracticeID] = e
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s on %s", group.Name, day)))

	shown := 0
	for _, p := range practices {
		override, err := ctx.Store.GetOverride(p.ID, session.UserID)
		var op *models.PracticeOverride
		if err == nil {
			op = &override
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if !p.ActiveOn(day, op) {
			continue
		}
		shown++

		entry, tracked := byPractice[p.ID]
		fmt.Printf("  %s %s\n", marker(entry, tracked), renderLine(p, entry, tracked))
	}

	if shown == 0 {
		fmt.Println(cli.FaintStyle.Render("  no practices active on this day"))
	}
	return nil
}

func marker(e models.ProgressEntry, tracked bool) string {
	if tracked && e.Completed {
		return cli.SuccessStyle.Render("[x]")
	}
	return "[ ]"
}

func renderLine(p models.Practice, e models.ProgressEntry, tracked bool) string {
	line := p.Title
	target := p.Frequency.Target()
	switch {
	case target > 0 && tracked:
		line += cli.FaintStyle.Render(fmt.Sprintf(" (%d/%d)", e.Count, target))
	case target > 0:
		line += cli.FaintStyle.Render(fmt.Sprintf(" (0/%d)", target))
	case tracked && e.Count > 0:
		line += cli.FaintStyle.Render(fmt.Sprintf(" (%d)", e.Count))
	}
	return line
}
