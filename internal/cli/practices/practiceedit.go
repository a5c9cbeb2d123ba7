package practices

import (
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/utils"
)

type PracticeEditCmd struct {
	Group     string `arg:"" help:"Group ID or name."`
	Practice  string `arg:"" help:"Practice ID or title."`
	Title     string `short:"t" help:"New title."`
	Start     string `short:"s" help:"New start date (YYYY-MM-DD)."`
	End       string `short:"e" help:"New end date (YYYY-MM-DD)."`
	Frequency string `short:"f" help:"New daily frequency: a count (2), range (1-3), or 'none'."`
	Days      int    `short:"n" help:"New fixed number of days, 0 clears it." default:"-1"`
}

func (c *PracticeEditCmd) Validate() error {
	if c.Start != "" && !utils.ValidateDateFormat(c.Start) {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %s", c.Start)
	}
	if c.End != "" && !utils.ValidateDateFormat(c.End) {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %s", c.End)
	}
	return nil
}

func (c *PracticeEditCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := groups.ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}
	if !group.IsOwnedBy(session.UserID) {
		return fmt.Errorf("only the group owner can edit practices: %w", apperrors.ErrNotAuthorized)
	}

	practice, err := ResolvePractice(ctx, group.ID, c.Practice)
	if err != nil {
		return err
	}

	if c.Title != "" {
		practice.Title = c.Title
	}
	if c.Start != "" {
		practice.StartDate = c.Start
	}
	if c.End != "" {
		practice.EndDate = c.End
	}
	switch c.Frequency {
	case "":
	case "none":
		practice.Frequency.Min, practice.Frequency.Max = 0, 0
	default:
		freq, err := ParseFrequency(c.Frequency)
		if err != nil {
			return err
		}
		practice.Frequency = freq
	}
	if c.Days >= 0 {
		practice.NumberOfDays = c.Days
	}

	if err := practice.Validate(); err != nil {
		return fmt.Errorf("invalid practice: %w", err)
	}
	if practice.NumberOfDays > 0 && practice.SpanDays() < practice.NumberOfDays {
		return fmt.Errorf("practice spans %d days, fewer than the required %d",
			practice.SpanDays(), practice.NumberOfDays)
	}

	if err := ctx.Store.UpdatePractice(practice); err != nil {
		return err
	}

	fmt.Printf("Updated practice %s\n", cli.TitleStyle.Render(practice.Title))
	return nil
}
