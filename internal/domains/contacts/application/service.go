package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aeshsummer/storefront-api/internal/domains/contacts/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/contacts/ports"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

// ErrInvalidInput signals a submission missing required fields.
var ErrInvalidInput = errors.New("invalid contact submission")

// SubmitInput carries the contact form payload.
type SubmitInput struct {
	Name    string
	Email   string
	Message string
	Phone   string
}

// Service handles contact form submissions.
type Service struct {
	repo ports.Repository
}

// NewService wires the contacts service with its repository.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Submit validates and stores a contact message.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*projection.Projection[*domain.Contact], error) {
	contact, err := domain.NewContact(uuid.NewString(), input.Name, input.Email, input.Message, input.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.Save(ctx, contact)
}

// List returns all submissions for the admin dashboard.
func (s *Service) List(ctx context.Context) ([]*projection.Projection[*domain.Contact], error) {
	return s.repo.List(ctx)
}
