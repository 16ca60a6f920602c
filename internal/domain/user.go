// Package domain contains entities without logic, just meta-data and validation
package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const MaxUsernameLen = 36

var (
	ErrUsernameTooLong = errors.New("username too long")
	ErrUsernameEmpty   = errors.New("username empty")
	ErrUsernameInvalid = errors.New("username contains whitespace or a trigger character")
)

type UserID string

type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
// An anonymous user has an ID but no username until it identifies itself.
func NewUser(username string) (*User, error) {
	u := &User{ID: UserID(uuid.NewString())}
	if username == "" {
		return u, nil
	}
	if err := u.SetUsername(username); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) SetUsername(username string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	u.Username = username
	return nil
}

// ValidateUsername rejects names that could not be addressed by an @mention
// or a mute command.
func ValidateUsername(username string) error {
	if len(username) == 0 {
		return ErrUsernameEmpty
	}
	if len(username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	if strings.ContainsAny(username, " \t\r\n"+CommandTrigger+MentionTrigger) {
		return ErrUsernameInvalid
	}
	return nil
}
