// Package identity contains the account-lifecycle business logic:
// registration, email confirmation, authentication, password change, and
// token-based password reset. The service owns no durable state; the user
// and token repositories are the sole source of truth, and every collaborator
// failure is translated into one of the error kinds in internal/common
// before it reaches a caller.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/peerprep/user-service/internal/auth"
	"github.com/peerprep/user-service/internal/common"
	"github.com/peerprep/user-service/internal/config"
	"github.com/peerprep/user-service/internal/cryptox"
	"github.com/peerprep/user-service/internal/logging"
	"github.com/peerprep/user-service/internal/notify"
	"github.com/peerprep/user-service/internal/resettokens"
	"github.com/peerprep/user-service/internal/users"
	"github.com/peerprep/user-service/internal/validate"
)

// Service orchestrates the account workflows. It is stateless and safe for
// concurrent use: all fields are set at construction and never mutated.
type Service struct {
	users    users.Repository
	tokens   *resettokens.Manager
	notifier notify.Notifier
	logger   logging.Logger

	confirmationSecret []byte
	resetLinkBaseURI   string
	bcryptCost         int
}

// NewService constructs a Service from its collaborators and server config.
func NewService(repo users.Repository, tokens *resettokens.Manager, notifier notify.Notifier, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		users:              repo,
		tokens:             tokens,
		notifier:           notifier,
		logger:             logger.With("module", "identity"),
		confirmationSecret: []byte(cfg.ConfirmationSecret),
		resetLinkBaseURI:   cfg.ResetLinkBaseURI,
		bcryptCost:         cfg.BcryptCost,
	}
}

// GetUser loads a user by email.
func (s *Service) GetUser(ctx context.Context, email string) (*users.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		s.logger.Error(ctx, "user lookup by email failed", "err", err)
		return nil, fmt.Errorf("loading user by email: %w", common.ErrRepository)
	}
	return user, nil
}

// Register validates the three fields in order (email, username, password),
// checks both uniqueness constraints, then creates the user unverified and
// sends the confirmation email. The uniqueness checks are early rejection
// only; the unique indexes in storage settle concurrent registrations.
func (s *Service) Register(ctx context.Context, email, username, password string) (*users.User, error) {
	if err := validate.Email(email); err != nil {
		return nil, err
	}
	if err := validate.Username(username); err != nil {
		return nil, err
	}
	if err := validate.Password(password); err != nil {
		return nil, err
	}

	emailExists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		s.logger.Error(ctx, "email existence check failed", "err", err)
		return nil, fmt.Errorf("checking email availability: %w", common.ErrRepository)
	}

	usernameExists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		s.logger.Error(ctx, "username existence check failed", "err", err)
		return nil, fmt.Errorf("checking username availability: %w", common.ErrRepository)
	}

	if emailExists {
		return nil, fmt.Errorf("email already exists: %w", common.ErrAlreadyExists)
	}
	if usernameExists {
		return nil, fmt.Errorf("username already exists: %w", common.ErrAlreadyExists)
	}

	code, err := auth.GenerateConfirmationCode(email, s.confirmationSecret)
	if err != nil {
		s.logger.Error(ctx, "confirmation code signing failed", "err", err)
		return nil, fmt.Errorf("creating user: %w", common.ErrRepository)
	}

	passwordHash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "err", err)
		return nil, fmt.Errorf("creating user: %w", common.ErrRepository)
	}

	user, err := s.users.Create(ctx, email, username, passwordHash, code)
	if err != nil {
		s.logger.Error(ctx, "user insert failed", "err", err)
		return nil, fmt.Errorf("creating user: %w", common.ErrRepository)
	}

	// The row is already committed at this point. A failed send is reported
	// as the same generic creation failure, and the row stays: the account
	// remains unverified until a code reaches the address some other way.
	if err := s.notifier.SendConfirmationEmail(ctx, username, email, code); err != nil {
		s.logger.Error(ctx, "confirmation email send failed", "email", email, "err", err)
		return nil, fmt.Errorf("creating user: %w", common.ErrRepository)
	}

	s.logger.Debug(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// ConfirmEmail consumes a confirmation code: the bearing user transitions to
// verified exactly once. Confirming an already-verified account is an error
// distinct from an unknown code.
func (s *Service) ConfirmEmail(ctx context.Context, code string) (*users.User, error) {
	// The code is self-verifying; one that was never signed with our secret
	// gets the same answer as an unknown one.
	if _, err := auth.EmailFromConfirmationCode(code, s.confirmationSecret); err != nil {
		return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
	}

	user, err := s.users.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		s.logger.Error(ctx, "user lookup by confirmation code failed", "err", err)
		return nil, fmt.Errorf("loading user by confirmation code: %w", common.ErrRepository)
	}

	if user.IsEmailVerified {
		return nil, fmt.Errorf("email already verified: %w", common.ErrAlreadyVerified)
	}

	confirmed, err := s.users.Confirm(ctx, code)
	if err != nil {
		s.logger.Error(ctx, "user confirmation failed", "err", err)
		return nil, fmt.Errorf("confirming user: %w", common.ErrRepository)
	}
	return confirmed, nil
}

// Authenticate checks credentials for a verified account. A wrong password
// is a legitimate negative result, not an error. Credentials of unverified
// accounts are never checked, so a caller cannot learn whether a password is
// correct for an account that cannot log in anyway.
func (s *Service) Authenticate(ctx context.Context, email, password string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		s.logger.Error(ctx, "user lookup by email failed", "err", err)
		return false, fmt.Errorf("loading user by email: %w", common.ErrRepository)
	}

	if !user.IsEmailVerified {
		return false, fmt.Errorf("user email not verified: %w", common.ErrNotVerified)
	}

	match, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "stored password hash is unusable", "user_id", user.ID, "err", err)
		return false, fmt.Errorf("verifying password: %w", common.ErrRepository)
	}
	return match, nil
}

// ChangePassword replaces the password after verifying the old one. The
// identical-password rule fires before any storage or crypto work.
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (*users.User, error) {
	if oldPassword == newPassword {
		return nil, fmt.Errorf("new password is identical to the old one: %w", common.ErrIdenticalPassword)
	}

	if err := validate.Password(newPassword); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		s.logger.Error(ctx, "user lookup by id failed", "err", err)
		return nil, fmt.Errorf("loading user by id: %w", common.ErrRepository)
	}

	match, err := cryptox.VerifyPassword(oldPassword, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "stored password hash is unusable", "user_id", user.ID, "err", err)
		return nil, fmt.Errorf("verifying password: %w", common.ErrRepository)
	}
	if !match {
		return nil, fmt.Errorf("old password does not match: %w", common.ErrPasswordMismatch)
	}

	passwordHash, err := cryptox.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "err", err)
		return nil, fmt.Errorf("updating user: %w", common.ErrRepository)
	}

	updated, err := s.users.Update(ctx, userID, user.Email, user.Username, passwordHash)
	if err != nil {
		s.logger.Error(ctx, "user update failed", "err", err)
		return nil, fmt.Errorf("updating user: %w", common.ErrRepository)
	}
	return updated, nil
}

// DeleteAccount delegates deletion to storage. There is no existence
// pre-check: deleting an unknown id and a genuine storage fault surface the
// same way. Token cleanup is the storage layer's cascade, not ours.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		s.logger.Error(ctx, "user delete failed", "err", err)
		return fmt.Errorf("deleting user: %w", common.ErrRepository)
	}
	return nil
}

// RequestPasswordReset issues (or re-uses) the user's reset token, mails the
// reset link, and returns both user and token. The caller is responsible for
// keeping the token value off untrusted channels beyond the email itself.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (*users.User, *resettokens.Token, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		s.logger.Error(ctx, "user lookup by email failed", "err", err)
		return nil, nil, fmt.Errorf("loading user by email: %w", common.ErrRepository)
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	resetLink := fmt.Sprintf("%s/%s/%s", s.resetLinkBaseURI, user.ID, token.Token)
	if err := s.notifier.SendResetEmail(ctx, user.Username, email, resetLink); err != nil {
		s.logger.Error(ctx, "reset email send failed", "email", email, "err", err)
		return nil, nil, fmt.Errorf("sending reset email: %w", common.ErrRepository)
	}

	return user, token, nil
}

// ResetPassword consumes a reset token: the token must match the (user,
// value) pair, and it is deleted after the password write. The two writes
// are deliberately separate; if the revoke fails the password change has
// already taken effect and the failure is reported under its own message.
func (s *Service) ResetPassword(ctx context.Context, userID, tokenValue, newPassword string) (*users.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
		}
		s.logger.Error(ctx, "user lookup by id failed", "err", err)
		return nil, fmt.Errorf("loading user by id: %w", common.ErrRepository)
	}

	if _, err := s.tokens.FindByUserAndValue(ctx, userID, tokenValue); err != nil {
		return nil, err
	}

	if err := validate.Password(newPassword); err != nil {
		return nil, err
	}

	passwordHash, err := cryptox.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "err", err)
		return nil, fmt.Errorf("updating user: %w", common.ErrRepository)
	}

	updated, err := s.users.Update(ctx, userID, user.Email, user.Username, passwordHash)
	if err != nil {
		s.logger.Error(ctx, "user update failed", "err", err)
		return nil, fmt.Errorf("updating user: %w", common.ErrRepository)
	}

	if err := s.tokens.Revoke(ctx, userID); err != nil {
		return nil, err
	}

	return updated, nil
}
