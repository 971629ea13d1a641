package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aeshsummer/storefront-api/internal/domains/admins/adapters/memory"
	"github.com/aeshsummer/storefront-api/internal/domains/admins/ports"
)

func TestRegisterAdmin(t *testing.T) {
	svc := NewService(memory.NewRepository(), memory.NewSessionStore(0))

	admin, err := svc.RegisterAdmin(context.Background(), "june", "june@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.ID)
	assert.Equal(t, "june", admin.Username)

	// The stored hash verifies against the original password and is not the
	// password itself.
	assert.NotEqual(t, "s3cret", admin.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")))
}

func TestRegisterAdmin_InvalidInput(t *testing.T) {
	svc := NewService(memory.NewRepository(), memory.NewSessionStore(0))

	_, err := svc.RegisterAdmin(context.Background(), "june", "june@example.com", "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RegisterAdmin(context.Background(), "", "june@example.com", "s3cret")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RegisterAdmin(context.Background(), "june", "no-at-sign", "s3cret")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc := NewService(memory.NewRepository(), memory.NewSessionStore(0))
	_, err := svc.RegisterAdmin(context.Background(), "june", "june@example.com", "s3cret")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "june", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.VerifySession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "june", username)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewService(memory.NewRepository(), memory.NewSessionStore(0))
	_, err := svc.RegisterAdmin(context.Background(), "june", "june@example.com", "s3cret")
	require.NoError(t, err)

	// Wrong password and unknown account answer identically.
	_, err = svc.Login(context.Background(), "june", "wrong")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "s3cret")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "", "")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestVerifySession_UnknownToken(t *testing.T) {
	svc := NewService(memory.NewRepository(), memory.NewSessionStore(0))
	_, err := svc.VerifySession(context.Background(), "nope")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = svc.VerifySession(context.Background(), "  ")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestVerifySession_Expired(t *testing.T) {
	current := time.Now()
	sessions := memory.NewSessionStore(time.Hour).WithClock(func() time.Time { return current })
	svc := NewService(memory.NewRepository(), sessions)
	_, err := svc.RegisterAdmin(context.Background(), "june", "june@example.com", "s3cret")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "june", "s3cret")
	require.NoError(t, err)

	current = current.Add(2 * time.Hour)
	_, err = svc.VerifySession(context.Background(), token)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestLogout(t *testing.T) {
	svc := NewService(memory.NewRepository(), memory.NewSessionStore(0))
	_, err := svc.RegisterAdmin(context.Background(), "june", "june@example.com", "s3cret")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "june", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))
	_, err = svc.VerifySession(context.Background(), token)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	// Logging out an unknown token is a no-op.
	require.NoError(t, svc.Logout(context.Background(), "already-gone"))
}
