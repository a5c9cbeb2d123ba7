package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/praxishq/praxis-cli/internal/cli"
	"github.com/praxishq/praxis-cli/internal/keyring"
	"github.com/praxishq/praxis-cli/internal/storage/postgres"
)

// KeyringSetCmd stores the database connection string in the OS keyring.
type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (c *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(c.ConnectionString, "postgres://") &&
		!strings.HasPrefix(c.ConnectionString, "postgresql://") &&
		!strings.Contains(c.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(c.ConnectionString); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			// The keyring itself is encrypted, so storing the full string
			// there is acceptable; warn and continue.
			fmt.Println(cli.WarnStyle.Render("Warning: connection string contains embedded credentials."))
			fmt.Println("   It will be stored as-is in the encrypted OS keyring.")
			fmt.Println("   To keep passwords out of connection strings entirely, use .pgpass or environment variables.")
		} else {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	}

	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render("✓") + " Connection string stored in OS keyring")
	fmt.Println("  You can now use praxis without the --config flag")
	return nil
}

// KeyringGetCmd prints the stored connection string with the password masked.
type KeyringGetCmd struct{}

func (c *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring. Use 'praxis keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve connection string from keyring: %w", err)
	}

	fmt.Println("Connection string retrieved from keyring:")
	fmt.Println(maskPassword(connStr))
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render("✓") + " Connection string deleted from OS keyring")
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}

	fmt.Println(cli.SuccessStyle.Render("✓") + " OS keyring is available")

	_, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		fmt.Println(cli.SuccessStyle.Render("✓") + " Connection string is stored in keyring")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("ℹ No connection string stored in keyring")
	}
	return nil
}

// maskPassword masks passwords in connection strings for display.
func maskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		if idx := strings.Index(connStr, "://"); idx != -1 {
			remaining := connStr[idx+3:]
			if atIdx := strings.LastIndex(remaining, "@"); atIdx != -1 {
				userInfo := remaining[:atIdx]
				if colonIdx := strings.Index(userInfo, ":"); colonIdx != -1 {
					return connStr[:idx+3] + userInfo[:colonIdx] + ":****" + connStr[idx+3+atIdx:]
				}
			}
		}
	}

	if strings.Contains(connStr, "password=") {
		parts := strings.Fields(connStr)
		var masked []string
		for _, part := range parts {
			if strings.HasPrefix(part, "password=") {
				masked = append(masked, "password=****")
			} else {
				masked = append(masked, part)
			}
		}
		return strings.Join(masked, " ")
	}

	return connStr
}
