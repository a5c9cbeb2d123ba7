package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/cli/groups"
	"github.com/praxishq/praxis-cli/internal/cli/practices"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
	"github.com/praxishq/praxis-cli/internal/utils"
)

type ProgressDoneCmd struct {
	Group    string `arg:"" help:"Group ID or name."`
	Practice string `arg:"" help:"Practice ID or title."`
	Date     string `short:"d" help:"Day to record (YYYY-MM-DD), defaults to today."`
}

func (c *ProgressDoneCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *ProgressDoneCmd) Run(ctx *cli.Context) error {
	return record(ctx, c.Group, c.Practice, c.Date, true)
}

// record upserts a progress entry for the day, incrementing the count and
// optionally marking the practice completed.
func record(ctx *cli.Context, groupRef, practiceRef, date string, complete bool) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	group, err := groups.ResolveGroup(ctx, session.UserID, groupRef)
	if err != nil {
		return err
	}
	practice, err := practices.ResolvePractice(ctx, group.ID, practiceRef)
	if err != nil {
		return err
	}

	day := date
	if day == "" {
		day = utils.Today(time.Local)
	}

	override, err := ctx.Store.GetOverride(practice.ID, session.UserID)
	var op *models.PracticeOverride
	if err == nil {
		op = &override
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if !practice.ActiveOn(day, op) {
		return fmt.Errorf("%s is not active on %s", practice.Title, day)
	}

	now := time.Now().UTC()
	entry, err := ctx.Store.GetProgress(practice.ID, session.UserID, day)
	if errors.Is(err, apperrors.ErrNotFound) {
		entry = models.ProgressEntry{
			ID:         uuid.NewString(),
			PracticeID: practice.ID,
			UserID:     session.UserID,
			Day:        day,
			CreatedAt:  now,
		}
	} else if err != nil {
		return err
	}

	entry.Count++
	entry.Completed = entry.Completed || complete
	entry.UpdatedAt = now

	if err := ctx.Store.UpsertProgress(entry); err != nil {
		return err
	}

	target := practice.Frequency.Target()
	status := fmt.Sprintf("count %d", entry.Count)
	if target > 0 {
		status = fmt.Sprintf("count %d of %d", entry.Count, target)
	}
	if entry.Completed {
		status += ", " + cli.SuccessStyle.Render("done")
	}
	fmt.Printf("%s on %s: %s\n", practice.Title, day, status)
	return nil
}
