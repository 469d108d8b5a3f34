package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ShopKart/internal/identity"
	"ShopKart/internal/storage"
)

const (
	gateEmail    = "admin@example.com"
	gatePassword = "password123"
	gateSecret   = "test-secret"
)

func newGate(t *testing.T) (*identity.Gate, *identity.Store) {
	t.Helper()
	ids := identity.NewStore(storage.NewMemSlots(), zap.NewNop())
	gate, err := identity.NewGate(gateEmail, gatePassword, gateSecret, ids)
	require.NoError(t, err)
	return gate, ids
}

func TestLogin_Success(t *testing.T) {
	gate, ids := newGate(t)

	tok, err := gate.Login(gateEmail, gatePassword)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	// Login signs the canned administrator in.
	u, err := ids.Current()
	require.NoError(t, err)
	assert.Equal(t, gateEmail, u.Email)
	assert.Equal(t, identity.RoleAdmin, u.Role)

	claims, err := gate.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, gateEmail, claims.Email)
	assert.Equal(t, identity.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_NormalizesEmail(t *testing.T) {
	gate, _ := newGate(t)

	_, err := gate.Login(" Admin@Example.COM ", gatePassword)
	assert.NoError(t, err)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	gate, ids := newGate(t)

	_, err := gate.Login(gateEmail, "wrong")
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

	_, err = gate.Login("someone@else.com", gatePassword)
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)

	// Failed logins must not create a session.
	_, err = ids.Current()
	assert.ErrorIs(t, err, identity.ErrNoSession)
}

func TestLogin_DoesNotDuplicateSeededAdmin(t *testing.T) {
	gate, ids := newGate(t)

	_, err := gate.Login(gateEmail, gatePassword)
	require.NoError(t, err)

	// The seeded registry entry already carries this email; first write
	// wins, so the registry still has exactly one admin.
	assert.Len(t, ids.Users(), 1)
}

func TestVerify_RejectsGarbageAndForeignTokens(t *testing.T) {
	gate, _ := newGate(t)

	_, err := gate.Verify("not-a-token")
	assert.Error(t, err)

	ids := identity.NewStore(storage.NewMemSlots(), zap.NewNop())
	other, err := identity.NewGate(gateEmail, gatePassword, "different-secret", ids)
	require.NoError(t, err)

	tok, err := other.Login(gateEmail, gatePassword)
	require.NoError(t, err)

	_, err = gate.Verify(tok)
	assert.Error(t, err)
}
