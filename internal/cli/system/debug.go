package system

import (
	"encoding/json"
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show database path."`
	DumpGroup    *DebugDumpGroupCmd    `cmd:"" help:"Dump group data as JSON."`
	DumpPractice *DebugDumpPracticeCmd `cmd:"" help:"Dump practice data as JSON."`
	DumpPrefs    *DebugDumpPrefsCmd    `cmd:"" help:"Dump reminder preferences as JSON."`
	DumpSession  *DebugDumpSessionCmd  `cmd:"" help:"Dump the current session as JSON."`
}

func dumpJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

type DebugDBPathCmd struct{}

func (c *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return dumpJSON(map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpGroupCmd struct {
	ID string `arg:"" help:"ID of the group to dump."`
}

func (c *DebugDumpGroupCmd) Run(ctx *cli.Context) error {
	group, err := ctx.Store.GetGroup(c.ID)
	if err != nil {
		return fmt.Errorf("failed to get group: %w", err)
	}

	members, err := ctx.Store.GetMemberships(group.ID)
	if err != nil {
		return fmt.Errorf("failed to get memberships: %w", err)
	}

	return dumpJSON(map[string]any{
		"group":   group,
		"members": members,
	})
}

type DebugDumpPracticeCmd struct {
	ID string `arg:"" help:"ID of the practice to dump."`
}

func (c *DebugDumpPracticeCmd) Run(ctx *cli.Context) error {
	practice, err := ctx.Store.GetPractice(c.ID)
	if err != nil {
		return fmt.Errorf("failed to get practice: %w", err)
	}
	return dumpJSON(practice)
}

type DebugDumpPrefsCmd struct{}

func (c *DebugDumpPrefsCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	prefs, err := ctx.Store.GetReminderPrefs(session.UserID)
	if err != nil {
		return fmt.Errorf("failed to get reminder preferences: %w", err)
	}
	return dumpJSON(prefs)
}

type DebugDumpSessionCmd struct{}

func (c *DebugDumpSessionCmd) Run(ctx *cli.Context) error {
	session, err := ctx.RequireUser()
	if err != nil {
		return err
	}
	return dumpJSON(session)
}
