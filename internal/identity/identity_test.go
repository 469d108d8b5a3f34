package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ShopKart/internal/identity"
	"ShopKart/internal/storage"
)

func newStore(t *testing.T) (*identity.Store, *storage.MemSlots) {
	t.Helper()
	slots := storage.NewMemSlots()
	return identity.NewStore(slots, zap.NewNop()), slots
}

func TestSeedsDefaultAdminOnFirstRun(t *testing.T) {
	s, slots := newStore(t)

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, identity.DefaultAdmin(), users[0])

	var persisted []identity.User
	found, err := slots.Load(storage.SlotRegistry, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, identity.DefaultAdmin(), persisted[0])
}

func TestExistingRegistryNotReseeded(t *testing.T) {
	slots := storage.NewMemSlots()
	require.NoError(t, slots.Save(storage.SlotRegistry, []identity.User{
		{Name: "Priya", Email: "priya@example.com", Role: identity.RoleUser},
	}))

	s := identity.NewStore(slots, zap.NewNop())
	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "Priya", users[0].Name)
}

func TestCurrent_NoSessionIsHardFailure(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Current()
	assert.ErrorIs(t, err, identity.ErrNoSession)
}

func TestSessionRoundTrip(t *testing.T) {
	s, slots := newStore(t)

	u := identity.User{Name: "Priya", Email: "priya@example.com", Role: identity.RoleUser}
	s.SetSession(u)

	got, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, u, got)

	// Session survives a reload via its own slot.
	reloaded := identity.NewStore(slots, zap.NewNop())
	got, err = reloaded.Current()
	require.NoError(t, err)
	assert.Equal(t, u, got)

	s.ClearSession()
	_, err = s.Current()
	assert.ErrorIs(t, err, identity.ErrNoSession)
}

func TestRegister_DuplicateEmailFirstWriteWins(t *testing.T) {
	s, _ := newStore(t)

	s.Register(identity.User{Name: "Priya", Email: "priya@example.com", Role: identity.RoleUser})
	s.Register(identity.User{Name: "Imposter", Email: "priya@example.com", Role: identity.RoleAdmin})

	users := s.Users()
	require.Len(t, users, 2) // seeded admin + priya
	assert.Equal(t, "Priya", users[1].Name)
	assert.Equal(t, identity.RoleUser, users[1].Role)
}

func TestRegister_EmailNormalized(t *testing.T) {
	s, _ := newStore(t)

	s.Register(identity.User{Name: "Priya", Email: " Priya@Example.com ", Role: identity.RoleUser})
	s.Register(identity.User{Name: "Again", Email: "priya@example.com", Role: identity.RoleUser})

	assert.Len(t, s.Users(), 2)
}

func TestRegister_NoEmailAlwaysAppends(t *testing.T) {
	s, _ := newStore(t)

	s.Register(identity.User{Name: "Ghost A", Role: identity.RoleUser})
	s.Register(identity.User{Name: "Ghost B", Role: identity.RoleUser})

	assert.Len(t, s.Users(), 3)
}

func TestDelete_RemovesAndClearsMatchingSession(t *testing.T) {
	s, _ := newStore(t)

	u := identity.User{Name: "Priya", Email: "priya@example.com", Role: identity.RoleUser}
	s.Register(u)
	s.SetSession(u)

	s.Delete("priya@example.com")

	// Registry entry gone.
	for _, got := range s.Users() {
		assert.NotEqual(t, "priya@example.com", got.Email)
	}

	// A deleted user cannot stay signed in.
	_, err := s.Current()
	assert.ErrorIs(t, err, identity.ErrNoSession)
}

func TestDelete_OtherSessionUntouched(t *testing.T) {
	s, _ := newStore(t)

	s.Register(identity.User{Name: "Priya", Email: "priya@example.com", Role: identity.RoleUser})
	admin := identity.DefaultAdmin()
	s.SetSession(admin)

	s.Delete("priya@example.com")

	got, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, admin.Email, got.Email)
}

func TestDelete_UnknownOrEmptyEmailIsNoOp(t *testing.T) {
	s, _ := newStore(t)

	before := s.Users()
	s.Delete("nobody@example.com")
	s.Delete("")
	assert.Equal(t, before, s.Users())
}

func TestCorruptSlotsDegradeToDefaults(t *testing.T) {
	slots := storage.NewMemSlots()
	slots.Put(storage.SlotSession, "??")
	slots.Put(storage.SlotRegistry, "{nope")

	s := identity.NewStore(slots, zap.NewNop())

	_, err := s.Current()
	assert.ErrorIs(t, err, identity.ErrNoSession)
	require.Len(t, s.Users(), 1)
	assert.Equal(t, identity.DefaultAdmin(), s.Users()[0])
}
