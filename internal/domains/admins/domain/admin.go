package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyUsername = errors.New("admin username is required")
	ErrEmptyPassword = errors.New("admin password hash is required")
	ErrInvalidEmail  = errors.New("admin email must contain '@'")
)

// Admin is the single merchant account allowed into the dashboard. Only the
// bcrypt hash of the password is ever stored.
type Admin struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
}

// NewAdmin builds an admin ensuring required invariants.
func NewAdmin(id, username, email, passwordHash string) (*Admin, error) {
	admin := &Admin{ID: id}
	if err := admin.SetUsername(username); err != nil {
		return nil, err
	}
	if err := admin.SetEmail(email); err != nil {
		return nil, err
	}
	if err := admin.SetPasswordHash(passwordHash); err != nil {
		return nil, err
	}
	return admin, nil
}

// SetUsername trims and validates the username.
func (a *Admin) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	a.Username = username
	return nil
}

// SetEmail validates the email shape when present.
func (a *Admin) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	a.Email = email
	return nil
}

// SetPasswordHash stores the bcrypt digest.
func (a *Admin) SetPasswordHash(hash string) error {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return ErrEmptyPassword
	}
	a.PasswordHash = hash
	return nil
}

// Validate re-applies invariants for persistence.
func (a *Admin) Validate() error {
	if err := a.SetUsername(a.Username); err != nil {
		return err
	}
	if err := a.SetEmail(a.Email); err != nil {
		return err
	}
	return a.SetPasswordHash(a.PasswordHash)
}
