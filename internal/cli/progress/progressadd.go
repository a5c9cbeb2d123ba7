package progress

import (
	"fmt"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/utils"
)

type ProgressAddCmd struct {
	Group    string `arg:"" help:"Group ID or name."`
	Practice string `arg:"" help:"Practice ID or title."`
	Date     string `short:"d" help:"Day to record (YYYY-MM-DD), defaults to today."`
}

func (c *ProgressAddCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *ProgressAddCmd) Run(ctx *cli.Context) error {
	return record(ctx, c.Group, c.Practice, c.Date, false)
}
