package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/peerprep/user-service/internal/common"
	"github.com/peerprep/user-service/internal/dbx"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) scanToken(row *sql.Row) (*Token, error) {
	token := &Token{}
	err := row.Scan(&token.ID, &token.UserID, &token.Token, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID, value string) (*Token, error) {
	query := `
		INSERT INTO reset_tokens (id, user_id, token)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, token, created_at
	`
	id := uuid.NewString()
	return r.scanToken(r.db.QueryRowContext(ctx, query, id, userID, value))
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*Token, error) {
	query := `
		SELECT id, user_id, token, created_at
		FROM reset_tokens
		WHERE user_id = $1
	`
	return r.scanToken(r.db.QueryRowContext(ctx, query, userID))
}

func (r *PostgresRepository) GetByUserIDAndValue(ctx context.Context, userID, value string) (*Token, error) {
	query := `
		SELECT id, user_id, token, created_at
		FROM reset_tokens
		WHERE user_id = $1 AND token = $2
	`
	return r.scanToken(r.db.QueryRowContext(ctx, query, userID, value))
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string) error {
	query := `
		DELETE FROM reset_tokens
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
