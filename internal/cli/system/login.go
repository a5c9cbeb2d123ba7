package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/identity"
	"github.com/praxishq/praxis-cli/internal/models"
)

type LoginCmd struct {
	Name   string `arg:"" help:"Display name to sign in as."`
	Email  string `short:"e" help:"Email address, shown to other group members."`
	UserID string `help:"Existing user ID to sign back in as, a new one is generated otherwise."`
	Token  string `help:"Access token for the hosted database, stored in the OS keyring."`
}

func (c *LoginCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if current, err := ctx.Identity.CurrentUser(); err == nil {
		return fmt.Errorf("already signed in as %s, run 'praxis logout' first", current.Name)
	} else if err != identity.ErrNoSession {
		return err
	}

	session := models.Session{
		UserID:    c.UserID,
		Name:      strings.TrimSpace(c.Name),
		Email:     strings.TrimSpace(c.Email),
		CreatedAt: time.Now().UTC(),
	}

	if err := ctx.Identity.Login(session, c.Token); err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}

	signed, err := ctx.Identity.CurrentUser()
	if err != nil {
		return err
	}

	fmt.Printf("%s Signed in as %s\n", cli.SuccessStyle.Render("✓"), signed.Name)
	fmt.Println(cli.FaintStyle.Render("  user id: " + signed.UserID))
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Identity.CurrentUser()
	if err != nil {
		if err == identity.ErrNoSession {
			fmt.Println("Not signed in")
			return nil
		}
		return err
	}

	if err := ctx.Identity.Logout(); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	fmt.Printf("%s Signed out %s\n", cli.SuccessStyle.Render("✓"), session.Name)
	fmt.Println(cli.FaintStyle.Render("  keep your user id to sign back in: " + session.UserID))
	return nil
}
