package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("contact name is required")
	ErrEmptyEmail   = errors.New("contact email is required")
	ErrEmptyMessage = errors.New("contact message is required")
)

// Contact is one customer message submitted through the contact form. Phone
// is optional.
type Contact struct {
	ID      string
	Name    string
	Email   string
	Message string
	Phone   string
}

// NewContact validates and constructs a submission.
func NewContact(id, name, email, message, phone string) (*Contact, error) {
	c := &Contact{
		ID:      id,
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Message: strings.TrimSpace(message),
		Phone:   strings.TrimSpace(phone),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate enforces the submission invariants.
func (c *Contact) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.Email == "" {
		return ErrEmptyEmail
	}
	if c.Message == "" {
		return ErrEmptyMessage
	}
	return nil
}
