// Package service provides the URL and account use cases on top of the
// in-memory stores, including generating and parsing JWT session tokens.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/atinyakov/tinyapp/internal/models"
)

//go:generate mockgen -source=auth.go -destination=../../mocks/mock_auth.go -package=mocks

// AuthIface defines the interface for JWT authentication used in middleware.
type AuthIface interface {
	BuildJWTString(userID string) (string, error)
	ParseClaims(c *http.Cookie) (*Claims, error)
}

// UserServiceIface is the set of account operations used by the HTTP handlers.
type UserServiceIface interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
}

// Claims represents the claims that are included in the JWT token.
type Claims struct {
	jwt.RegisteredClaims
	// UserID is the id of the logged in user.
	UserID string `json:"user_id"`
}

// TokenExp defines the expiration time of the JWT token (1 year).
const TokenExp = time.Hour * 24 * 365

// ErrInvalidToken is returned when a session token cannot be verified.
var ErrInvalidToken = errors.New("invalid token")

// Auth signs session tokens and manages accounts.
type Auth struct {
	users  Users
	secret []byte
}

// NewAuth creates a new Auth over users signing tokens with secret.
func NewAuth(users Users, secret string) *Auth {
	return &Auth{
		users:  users,
		secret: []byte(secret),
	}
}

// BuildJWTString returns a signed session token for userID.
func (a *Auth) BuildJWTString(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		UserID: userID,
	})

	return token.SignedString(a.secret)
}

// ParseClaims verifies the token carried by c and returns its claims.
func (a *Auth) ParseClaims(c *http.Cookie) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(c.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Register creates a new account.
func (a *Auth) Register(ctx context.Context, email, password string) (*models.User, error) {
	return a.users.Create(ctx, email, password)
}

// Login checks the credentials of an existing account.
func (a *Auth) Login(ctx context.Context, email, password string) (*models.User, error) {
	return a.users.Authenticate(ctx, email, password)
}

// UserByID returns the account with the given id.
func (a *Auth) UserByID(ctx context.Context, id string) (*models.User, error) {
	return a.users.FindByID(ctx, id)
}
