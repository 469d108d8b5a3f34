package identity

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"ShopKart/internal/storage"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ErrNoSession reports a session-scoped read with nobody signed in. Unlike
// the store's lenient mutation no-ops this is a hard failure: the caller
// asked for a user that does not exist.
var ErrNoSession = errors.New("no user is signed in")

// User is an identity record. Email is optional; when present it is the
// user's unique key in the registry. Records without an email cannot be
// targeted for deletion.
type User struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar"`
	Role   Role   `json:"role"`
}

// Store owns the current session and the registry of known users. The two
// live in separate slots so either can be absent independently.
type Store struct {
	log   *zap.Logger
	slots storage.Slots

	mu      sync.RWMutex
	session *User
	users   []User
}

// DefaultAdmin is the registry seed for first runs.
func DefaultAdmin() User {
	return User{
		Name:   "Admin",
		Email:  "admin@example.com",
		Avatar: "/avatars/admin.png",
		Role:   RoleAdmin,
	}
}

func NewStore(slots storage.Slots, log *zap.Logger) *Store {
	s := &Store{log: log, slots: slots}

	var sess User
	found, err := slots.Load(storage.SlotSession, &sess)
	if err != nil {
		log.Warn("session slot unreadable, signed out", zap.Error(err))
	}
	if found && err == nil {
		s.session = &sess
	}

	var users []User
	found, err = slots.Load(storage.SlotRegistry, &users)
	if err != nil {
		log.Warn("registry slot unreadable, reseeding", zap.Error(err))
	}
	if found && err == nil {
		s.users = users
		return s
	}

	s.users = []User{DefaultAdmin()}
	s.persistRegistry()
	return s
}

// SetSession signs the given user in, replacing any current session.
func (s *Store) SetSession(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &u
	s.persistSession()
}

// ClearSession signs out. Safe to call when nobody is signed in.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.persistSession()
}

// Current returns the signed-in user, or ErrNoSession.
func (s *Store) Current() (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return User{}, ErrNoSession
	}
	return *s.session, nil
}

// Register adds a user to the registry. A user whose email is already
// registered is a no-op: first write wins. Users without an email have no
// key to collide on and are always appended.
func (s *Store) Register(u User) {
	u.Email = normalizeEmail(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Email != "" {
		for _, known := range s.users {
			if known.Email == u.Email {
				return
			}
		}
	}

	s.users = append(s.users, u)
	s.persistRegistry()
}

// Delete removes the user with the given email from the registry. Unknown
// or empty emails are a no-op. When the deleted email matches the current
// session, the session is cleared too: a deleted user cannot stay signed
// in. That cross-store effect lives here, in one auditable place.
func (s *Store) Delete(email string) {
	email = normalizeEmail(email)
	if email == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	removed := false
	for _, u := range s.users {
		if u.Email == email {
			removed = true
			continue
		}
		kept = append(kept, u)
	}
	if !removed {
		return
	}

	s.users = kept
	s.persistRegistry()

	if s.session != nil && s.session.Email == email {
		s.session = nil
		s.persistSession()
	}
}

// Users returns the registry in registration order.
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) persistSession() {
	if s.session == nil {
		if err := s.slots.Clear(storage.SlotSession); err != nil {
			s.log.Error("clear session slot failed", zap.Error(err))
		}
		return
	}
	if err := s.slots.Save(storage.SlotSession, s.session); err != nil {
		s.log.Error("persist session failed", zap.Error(err))
	}
}

func (s *Store) persistRegistry() {
	if err := s.slots.Save(storage.SlotRegistry, s.users); err != nil {
		s.log.Error("persist registry failed", zap.Error(err))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
