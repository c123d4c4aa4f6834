package repository

import (
	"context"
	"database/sql"
	"errors"

	"contactbook/internal/models"
)

// Sentinel errors the service layer matches on; nothing below here leaks
// driver-specific detail upward.
var (
	// ErrDuplicate means a UNIQUE constraint (username or email) was hit.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound means no row matched both the id and the owner.
	ErrNotFound = errors.New("record not found")
)

type Authorization interface {
	Create(ctx context.Context, username, email, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Contacts interface {
	List(ctx context.Context, ownerID int) ([]models.Contact, error)
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
	Update(ctx context.Context, c models.Contact) (models.Contact, error)
	Delete(ctx context.Context, id, ownerID int) error
}

type Repository struct {
	Auth     Authorization
	Contacts Contacts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(db),
		Contacts: NewContactRepository(db),
	}
}
