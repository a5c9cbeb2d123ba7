package storage

import (
	"net/url"
	"strings"

	"github.com/praxishq/praxis-cli/internal/storage/postgres"
	"github.com/praxishq/praxis-cli/internal/storage/sqlite"
)

// NewSQLiteStore returns a Provider backed by a local SQLite file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore returns a Provider backed by the hosted Postgres database.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgresConnString reports whether s looks like a Postgres connection
// string rather than a file path.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those are rejected: credentials belong in the OS keyring,
// the environment, or .pgpass.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs
	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}
