package groups

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/praxishq/praxis-cli/internal/cli"
	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

type GroupJoinCmd struct {
	Code string `arg:"" help:"Join code of the group."`
}

func (c *GroupJoinCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	code := strings.ToUpper(strings.TrimSpace(c.Code))
	group, err := ctx.Store.GetGroupByJoinCode(code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("no group with join code %s", code)
		}
		return err
	}

	member, err := ctx.Store.IsMember(group.ID, session.UserID)
	if err != nil {
		return err
	}
	if member {
		fmt.Printf("Already a member of %s\n", group.Name)
		return nil
	}

	if err := ctx.Store.AddMembership(models.Membership{
		GroupID:  group.ID,
		UserID:   session.UserID,
		JoinedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	fmt.Printf("Joined group %s\n", cli.TitleStyle.Render(group.Name))
	return nil
}
