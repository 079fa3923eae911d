package service

import (
	"context"

	"github.com/atinyakov/tinyapp/internal/models"
)

// Storage is the short code store the URL service works on.
type Storage interface {
	Exists(context.Context, string) bool
	Get(context.Context, string) (*models.URLRecord, error)
	IsOwnedBy(context.Context, string, string) (bool, error)
	ListByOwner(context.Context, string) []models.URLRecord
	Create(context.Context, string, string) (*models.URLRecord, error)
	Update(context.Context, string, string, string) error
	Delete(context.Context, string, string) error
	Count(context.Context) int
}

// Users is the account store the auth service works on.
type Users interface {
	FindByID(context.Context, string) (*models.User, error)
	FindByEmail(context.Context, string) (string, bool)
	Create(context.Context, string, string) (*models.User, error)
	Authenticate(context.Context, string, string) (*models.User, error)
	Count(context.Context) int
}
