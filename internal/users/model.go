package users

import "time"

// User is the identity record. Email and username are each globally unique;
// IsEmailVerified flips false→true exactly once and never back.
type User struct {
	ID               string
	Email            string
	Username         string
	PasswordHash     string
	IsEmailVerified  bool
	ConfirmationCode string
	CreatedAt        time.Time
}
