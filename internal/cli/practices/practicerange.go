package practices

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
	"github.com/praxishq/praxis-cli/internal/utils"
	"github.com/praxishq/praxis-cli/internal/validation"
)

// PracticeRangeCmd sets or clears the acting member's personal date range for
// a practice.
type PracticeRangeCmd struct {
	Group    string `arg:"" help:"Group ID or name."`
	Practice string `arg:"" help:"Practice ID or title."`
	Start    string `short:"s" help:"Personal start date (YYYY-MM-DD)."`
	End      string `short:"e" help:"Personal end date (YYYY-MM-DD)."`
	Clear    bool   `help:"Remove the personal range."`
}

func (c *PracticeRangeCmd) Validate() error {
	if c.Clear {
		if c.Start != "" || c.End != "" {
			return fmt.Errorf("--clear cannot be combined with --start/--end")
		}
		return nil
	}
	if c.Start == "" || c.End == "" {
		return fmt.Errorf("both --start and --end are required")
	}
	if !utils.ValidateDateFormat(c.Start) {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %s", c.Start)
	}
	if !utils.ValidateDateFormat(c.End) {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %s", c.End)
	}
	return nil
}

func (c *PracticeRangeCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := groups.ResolveGroup(ctx, session.UserID, c.Group)
	if err != nil {
		return err
	}

	practice, err := ResolvePractice(ctx, group.ID, c.Practice)
	if err != nil {
		return err
	}

	if c.Clear {
		err := ctx.Store.DeleteOverride(practice.ID, session.UserID)
		if errors.Is(err, apperrors.ErrNotFound) {
			fmt.Println("No personal range was set.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Cleared your range for %s\n", practice.Title)
		return nil
	}

	now := time.Now().UTC()
	override := models.PracticeOverride{
		ID:         uuid.NewString(),
		PracticeID: practice.ID,
		UserID:     session.UserID,
		StartDate:  c.Start,
		EndDate:    c.End,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if result := validation.New().ValidateOverride(practice, override); result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	if err := ctx.Store.UpsertOverride(override); err != nil {
		return err
	}

	fmt.Printf("Set your range for %s: %s to %s\n", practice.Title, c.Start, c.End)
	return nil
}
