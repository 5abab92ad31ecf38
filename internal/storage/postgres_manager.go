package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/peerprep/user-service/internal/migrations"
	"github.com/peerprep/user-service/internal/resettokens"
	"github.com/peerprep/user-service/internal/users"
)

type PostgresManager struct {
	db          *sql.DB
	users       users.Repository
	resetTokens resettokens.Repository
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) ResetTokens() resettokens.Repository {
	return m.resetTokens
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresManager(ctx context.Context, dsn string) (Manager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:          db,
		users:       users.NewPostgresRepository(db),
		resetTokens: resettokens.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
