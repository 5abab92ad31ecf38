package resettokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/peerprep/user-service/internal/common"
)

// tokenValueBytes random bytes per token; the hex value is twice as long.
const tokenValueBytes = 32

// Manager implements the reset-token lifecycle over a Repository: issue
// (idempotent while a token is outstanding), find, and revoke. Storage
// faults are rewrapped as common.ErrRepository here, at the call site, so
// raw driver errors never travel further up.
type Manager struct {
	repo Repository
}

// NewManager constructs a Manager on top of the given repository.
func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo}
}

// Issue returns the user's outstanding token, or creates one if none exists.
// Calling it repeatedly before the token is consumed returns the same value.
func (m *Manager) Issue(ctx context.Context, userID string) (*Token, error) {
	token, err := m.repo.GetByUserID(ctx, userID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("looking up reset token: %w", common.ErrRepository)
	}

	value, err := common.MakeRandHexString(tokenValueBytes)
	if err != nil {
		return nil, fmt.Errorf("creating reset token: %w", common.ErrRepository)
	}

	token, err = m.repo.Create(ctx, userID, value)
	if err != nil {
		return nil, fmt.Errorf("creating reset token: %w", common.ErrRepository)
	}
	return token, nil
}

// FindByUser returns the user's outstanding token, or common.ErrNotFound.
func (m *Manager) FindByUser(ctx context.Context, userID string) (*Token, error) {
	token, err := m.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("reset token not found: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up reset token: %w", common.ErrRepository)
	}
	return token, nil
}

// FindByUserAndValue looks up the (userID, value) pair. A token that never
// existed and a wrong value collapse into the same common.ErrNotFound, so a
// caller probing values learns nothing about which case it hit.
func (m *Manager) FindByUserAndValue(ctx context.Context, userID, value string) (*Token, error) {
	token, err := m.repo.GetByUserIDAndValue(ctx, userID, value)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("reset token not found: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up reset token: %w", common.ErrRepository)
	}
	return token, nil
}

// Revoke deletes the user's token record.
func (m *Manager) Revoke(ctx context.Context, userID string) error {
	if err := m.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting reset token: %w", common.ErrRepository)
	}
	return nil
}
