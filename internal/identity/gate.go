package identity

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// The gate is a demo credential check, not a security boundary: one fixed
// admin login whose success signs the canned administrator in. It still
// hashes the configured password and issues real signed tokens, because the
// admin routes need something to verify.

var ErrInvalidCredentials = errors.New("invalid credentials")

const gateTokenTTL = 30 * time.Minute

type Gate struct {
	email    string
	hash     []byte
	tokens   *TokenMaker
	identity *Store
}

func NewGate(email, password, secret string, ids *Store) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Gate{
		email:    normalizeEmail(email),
		hash:     hash,
		tokens:   NewTokenMaker(secret),
		identity: ids,
	}, nil
}

// Login checks the demo credentials. On success it registers the canned
// administrator identity (a no-op when already known), signs it in and
// returns an access token for the admin routes.
func (g *Gate) Login(email, password string) (string, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)

	if email != g.email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	admin := User{
		Name:   "Admin User",
		Email:  g.email,
		Avatar: "/avatars/admin.png",
		Role:   RoleAdmin,
	}
	g.identity.Register(admin)
	g.identity.SetSession(admin)

	return g.tokens.New(admin.Email, admin.Role, gateTokenTTL)
}

// Verify parses a gate token and confirms it carries the admin role.
func (g *Gate) Verify(token string) (Claims, error) {
	claims, err := g.tokens.Parse(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.Role != RoleAdmin {
		return Claims{}, errors.New("not an admin token")
	}
	return claims, nil
}

type TokenMaker struct {
	secret []byte
	issuer string
}

func NewTokenMaker(secret string) *TokenMaker {
	return &TokenMaker{
		secret: []byte(secret),
		issuer: "shopkart-gate",
	}
}

type Claims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

func (t *TokenMaker) New(email string, role Role, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenMaker) Parse(tokenStr string) (Claims, error) {
	var c Claims

	token, err := jwt.ParseWithClaims(tokenStr, &c, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	if c.Issuer != "" && c.Issuer != t.issuer {
		return Claims{}, errors.New("invalid issuer")
	}

	return c, nil
}
