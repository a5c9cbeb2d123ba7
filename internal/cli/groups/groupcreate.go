package groups

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/models"
)

type GroupCreateCmd struct {
	Name string `arg:"" help:"Group name."`
}

func (c *GroupCreateCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	code, err := models.NewJoinCode()
	if err != nil {
		return err
	}

	group := models.Group{
		ID:        uuid.NewString(),
		Name:      c.Name,
		JoinCode:  code,
		OwnerID:   session.UserID,
		CreatedAt: time.Now().UTC(),
	}
	if err := group.Validate(); err != nil {
		return fmt.Errorf("invalid group: %w", err)
	}

	if err := ctx.Store.AddGroup(group); err != nil {
		return err
	}

	// The creator joins their own group.
	if err := ctx.Store.AddMembership(models.Membership{
		GroupID:  group.ID,
		UserID:   session.UserID,
		JoinedAt: group.CreatedAt,
	}); err != nil {
		return err
	}

	fmt.Printf("Created group %s\n", cli.TitleStyle.Render(group.Name))
	fmt.Printf("Join code: %s\n", cli.SuccessStyle.Render(group.JoinCode))
	return nil
}
