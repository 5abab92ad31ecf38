package resettokens

import "time"

// Token is a password-reset credential. The Token value is opaque: it has no
// embedded meaning and must be looked up in storage to authorize anything.
type Token struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
}
