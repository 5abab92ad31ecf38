// Package validate holds the field-shape checks applied to registration and
// password inputs. The predicates are pure and deterministic: for a given
// input they always return nil or the same fixed error, so failure messages
// are reproducible.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/peerprep/user-service/internal/common"
)

const (
	// bcrypt silently ignores input past 72 bytes, so longer passwords are
	// rejected up front.
	passwordMinLen = 8
	passwordMaxLen = 72
)

var (
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{2,31}$`)
	digitRe    = regexp.MustCompile(`[0-9]`)
	letterRe   = regexp.MustCompile(`[A-Za-z]`)
)

// The enumerable failure reasons. Each wraps common.ErrValidation so callers
// can match the kind with errors.Is.
var (
	ErrEmailFormat    = fmt.Errorf("%w: invalid email format", common.ErrValidation)
	ErrUsernameFormat = fmt.Errorf("%w: username must start with a letter and contain only letters, digits or underscores (3-32 characters)", common.ErrValidation)
	ErrPasswordFormat = fmt.Errorf("%w: password must be 8-72 characters and contain at least one letter and one digit", common.ErrValidation)
)

// Email reports whether s looks like a mail address with a top-level domain.
// "test@test" is rejected.
func Email(s string) error {
	if !emailRe.MatchString(s) || strings.Contains(s, "..") {
		return ErrEmailFormat
	}
	return nil
}

// Username accepts a leading letter followed by letters, digits or
// underscores, 3 to 32 characters total.
func Username(s string) error {
	if !usernameRe.MatchString(s) {
		return ErrUsernameFormat
	}
	return nil
}

// Password enforces the complexity floor: bounded length, at least one
// letter and at least one digit.
func Password(s string) error {
	if len(s) < passwordMinLen || len(s) > passwordMaxLen {
		return ErrPasswordFormat
	}
	if !letterRe.MatchString(s) || !digitRe.MatchString(s) {
		return ErrPasswordFormat
	}
	return nil
}
