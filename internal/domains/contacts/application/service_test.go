package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeshsummer/storefront-api/internal/domains/contacts/adapters/memory"
	"github.com/aeshsummer/storefront-api/internal/domains/contacts/domain"
)

func TestSubmit(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "June Carter",
		Email:   "june@example.com",
		Message: "Do you restock the linen shirts?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.Entity.ID)
	assert.Empty(t, saved.Entity.Phone)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "June Carter", list[0].Entity.Name)
}

func TestSubmit_RequiredFields(t *testing.T) {
	svc := NewService(memory.NewRepository())

	cases := []struct {
		name  string
		input SubmitInput
		want  error
	}{
		{"missing name", SubmitInput{Email: "a@b.c", Message: "hi"}, domain.ErrEmptyName},
		{"missing email", SubmitInput{Name: "June", Message: "hi"}, domain.ErrEmptyEmail},
		{"missing message", SubmitInput{Name: "June", Email: "a@b.c"}, domain.ErrEmptyMessage},
		{"whitespace only", SubmitInput{Name: "  ", Email: "a@b.c", Message: "hi"}, domain.ErrEmptyName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.input)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSubmit_PhoneIsOptional(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "June Carter",
		Email:   "june@example.com",
		Message: "Call me back please.",
		Phone:   " 555-0101 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0101", saved.Entity.Phone)
}
