// Package users holds the User model and its storage contract. The in-core
// existence checks backed by this interface are advisory fast paths; the
// unique constraints on email and username in storage are the actual guard
// against concurrent registrations racing past those checks.
package users

import "context"

// Repository is the persistence boundary for users. Absence is reported as
// common.ErrNotFound; every other failure is a wrapped driver error.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByConfirmationCode(ctx context.Context, code string) (*User, error)

	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	Create(ctx context.Context, email, username, passwordHash, confirmationCode string) (*User, error)
	Update(ctx context.Context, id, email, username, passwordHash string) (*User, error)

	// Delete removes the user row. Deleting an id that does not exist is an
	// error, indistinguishable from a storage fault.
	Delete(ctx context.Context, id string) error

	// Confirm marks the user holding this confirmation code as verified and
	// returns the updated row.
	Confirm(ctx context.Context, confirmationCode string) (*User, error)
}
