package storage

import (
	"context"
	"database/sql"

	"github.com/peerprep/user-service/internal/resettokens"
	"github.com/peerprep/user-service/internal/users"
)

// Manager owns the database connection and hands out the repositories
// built on top of it.
type Manager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	ResetTokens() resettokens.Repository
	Close() error
}
