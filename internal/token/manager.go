package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"blog-service/internal/custom_errors"
	"blog-service/internal/model"
)

const DefaultTTL = 7 * 24 * time.Hour

type Claims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

//go:generate mockery --name Issuer --dir . --output ../../mocks/token --outpkg mocks --filename Issuer.go
type Issuer interface {
	Issue(identity model.Identity) (string, error)
	Verify(tokenString string) (model.Identity, error)
}

// Manager signs and verifies HS256 tokens carrying the caller identity.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock returns a copy of the manager that reads time from now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	c := *m
	c.now = now
	return &c
}

func (m *Manager) Issue(identity model.Identity) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:   identity.UserID.String(),
		Email:    identity.Email,
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", custom_errors.ErrTokenSign, err)
	}
	return signed, nil
}

// Verify returns ErrUnauthenticated for any token that is empty, malformed,
// signed with another key or algorithm, or expired.
func (m *Manager) Verify(tokenString string) (model.Identity, error) {
	if tokenString == "" {
		return model.Identity{}, custom_errors.ErrUnauthenticated
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Identity{}, fmt.Errorf("%w: token expired", custom_errors.ErrUnauthenticated)
		}
		return model.Identity{}, fmt.Errorf("%w: %v", custom_errors.ErrUnauthenticated, err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: bad user id claim", custom_errors.ErrUnauthenticated)
	}

	return model.Identity{
		UserID:   userID,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}
