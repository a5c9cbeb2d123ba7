package practices

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
	"github.com/praxishq/praxis-cli/internal/utils"
)

type PracticeAddCmd struct {
	Group     string `arg:"" help:"Group ID or name."`
	Title     string `arg:"" help:"Practice title."`
	Start     string `short:"s" help:"Start date (YYYY-MM-DD)." required:""`
	End       string `short:"e" help:"End date (YYYY-MM-DD)." required:""`
	Frequency string `short:"f" help:"Daily frequency: a count (2) or range (1-3)."`
	Days      int    `short:"n" help:"Fixed number of days each member practices."`
}

func (c *PracticeAddCmd) Validate() error {
	if !utils.ValidateDateFormat(c.Start) {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %s", c.Start)
	}
	if !utils.ValidateDateFormat(c.End) {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %s", c.End)
	}
	if c.End < c.Start {
		return fmt.Errorf("end date %s is before start date %s", c.End, c.Start)
	}
	if c.Days < 0 {
		return fmt.Errorf("number of days cannot be negative")
	}
	return nil
}

func (c *PracticeAddCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := groups.ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}
	if !group.IsOwnedBy(session.UserID) {
		return fmt.Errorf("only the group owner can add practices: %w", apperrors.ErrNotAuthorized)
	}

	freq, err := ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	// New practices append to the display order.
	position, err := ctx.OrderingService().NextPosition(group.ID)
	if err != nil {
		return err
	}

	practice := models.Practice{
		ID:           uuid.NewString(),
		GroupID:      group.ID,
		Title:        c.Title,
		StartDate:    c.Start,
		EndDate:      c.End,
		Frequency:    freq,
		NumberOfDays: c.Days,
		DisplayOrder: &position,
		CreatedAt:    time.Now().UTC(),
	}
	if err := practice.Validate(); err != nil {
		return fmt.Errorf("invalid practice: %w", err)
	}
	if c.Days > 0 && practice.SpanDays() < c.Days {
		return fmt.Errorf("practice spans %d days, fewer than the required %d", practice.SpanDays(), c.Days)
	}

	if err := ctx.Store.AddPractice(practice); err != nil {
		return err
	}

	fmt.Printf("Added practice %s to %s (position %d)\n",
		cli.TitleStyle.Render(practice.Title), group.Name, position)
	return nil
}
