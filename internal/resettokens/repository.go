// Package resettokens manages the storage-backed half of the token scheme:
// opaque, single-use password-reset tokens, at most one retrievable per user
// at a time. The unique constraint on user_id in storage backs that limit
// when issuances race.
package resettokens

import "context"

// Repository is the persistence boundary for reset tokens. Absence is
// reported as common.ErrNotFound; other failures are wrapped driver errors.
type Repository interface {
	// Create stores a new token row holding value for userID.
	Create(ctx context.Context, userID, value string) (*Token, error)

	GetByUserID(ctx context.Context, userID string) (*Token, error)
	GetByUserIDAndValue(ctx context.Context, userID, value string) (*Token, error)

	// Delete removes the user's token row, if any.
	Delete(ctx context.Context, userID string) error
}
