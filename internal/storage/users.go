package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/tinyapp/internal/models"
)

// PasswordCost is the bcrypt cost used for new accounts.
const PasswordCost = 10

// UserDirectory keeps registered users in memory.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewUserDirectory creates an empty directory.
func NewUserDirectory() *UserDirectory {
	return &UserDirectory{
		users: make(map[string]*models.User),
	}
}

// FindByID returns a copy of the user with the given id.
func (d *UserDirectory) FindByID(_ context.Context, id string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *u
	return &c, nil
}

// FindByEmail returns the id of the user registered with email.
func (d *UserDirectory) FindByEmail(_ context.Context, email string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u := d.findByEmail(email)
	if u == nil {
		return "", false
	}
	return u.ID, true
}

// findByEmail requires d.mu to be held.
func (d *UserDirectory) findByEmail(email string) *models.User {
	for _, u := range d.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// Create registers a new user with a bcrypt hash of password.
func (d *UserDirectory) Create(_ context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrEmptyField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.findByEmail(email) != nil {
		return nil, ErrDuplicateEmail
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	d.users[u.ID] = u

	c := *u
	return &c, nil
}

// Authenticate checks the credentials and returns the matching user.
func (d *UserDirectory) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrEmptyField
	}

	d.mu.RLock()
	u := d.findByEmail(email)
	var c models.User
	if u != nil {
		c = *u
	}
	d.mu.RUnlock()

	if u == nil {
		return nil, ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}
	return &c, nil
}

// Count returns the number of registered users.
func (d *UserDirectory) Count(_ context.Context) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
