package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/ecolog/internal/keyring"
	"github.com/julianstephens/ecolog/internal/storage/postgres"
)

// DBSetConnectionCmd stores a PostgreSQL connection string in the OS keyring
type DBSetConnectionCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring."`
}

func (cmd *DBSetConnectionCmd) Run(ctx *Context) error {
	if !postgres.IsConnString(cmd.ConnectionString) && !strings.Contains(cmd.ConnectionString, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// the keyring is encrypted, so a password is acceptable here
		ctx.println("⚠️  Warning: Connection string contains embedded credentials.")
		ctx.println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	ctx.println("✓ Connection string stored in OS keyring")
	ctx.println("  Use --config postgres:// to connect with it")
	return nil
}

// DBShowConnectionCmd prints the resolved connection string with the password masked
type DBShowConnectionCmd struct{}

func (cmd *DBShowConnectionCmd) Run(ctx *Context) error {
	connStr, source, err := keyring.Resolve()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string configured. Use 'ecolog db set-connection' to store one")
		}
		return fmt.Errorf("failed to resolve connection string: %w", err)
	}

	ctx.printf("Connection string (from %s):\n", source)
	ctx.println(maskPassword(connStr))
	return nil
}

// DBClearConnectionCmd removes the stored connection string
type DBClearConnectionCmd struct{}

func (cmd *DBClearConnectionCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	ctx.println("✓ Connection string deleted from OS keyring")
	return nil
}

// maskPassword hides the password in URL or key=value connection strings
func maskPassword(connStr string) string {
	if postgres.IsConnString(connStr) {
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
		for i, part := range parts {
			if strings.HasPrefix(part, "password=") {
				parts[i] = "password=****"
			}
		}
		return strings.Join(parts, " ")
	}

	return connStr
}
