package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/peerprep/user-service/internal/common"
	"github.com/peerprep/user-service/internal/dbx"
)

const userColumns = `id, email, username, password_hash, is_email_verified, confirmation_code, created_at`

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.IsEmailVerified, &user.ConfirmationCode, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByConfirmationCode(ctx context.Context, code string) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE confirmation_code = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, code))
}

func (r *PostgresRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, email, username, passwordHash, confirmationCode string) (*User, error) {
	query := `
		INSERT INTO users (id, email, username, password_hash, is_email_verified, confirmation_code)
		VALUES ($1, $2, $3, $4, false, $5)
		RETURNING ` + userColumns + `
	`
	id := uuid.NewString()
	return r.scanUser(r.db.QueryRowContext(ctx, query, id, email, username, passwordHash, confirmationCode))
}

func (r *PostgresRepository) Update(ctx context.Context, id, email, username, passwordHash string) (*User, error) {
	query := `
		UPDATE users
		SET email = $2, username = $3, password_hash = $4
		WHERE id = $1
		RETURNING ` + userColumns + `
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id, email, username, passwordHash))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		// Keeps delete-of-nonexistent indistinguishable from a storage fault.
		return fmt.Errorf("db error: no rows deleted")
	}
	return nil
}

func (r *PostgresRepository) Confirm(ctx context.Context, confirmationCode string) (*User, error) {
	query := `
		UPDATE users
		SET is_email_verified = true
		WHERE confirmation_code = $1
		RETURNING ` + userColumns + `
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, confirmationCode))
}
