package service

import (
	"context"
	"time"

	"contactbook/internal/models"
	"contactbook/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, email, password string) (models.User, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Contacts exposes owner-scoped CRUD over address-book entries. The owner
// id always comes from a verified token, never from the request body.
type Contacts interface {
	List(ctx context.Context, ownerID int) ([]models.Contact, error)
	Create(ctx context.Context, ownerID int, in ContactInput) (models.Contact, error)
	Update(ctx context.Context, id, ownerID int, in ContactInput) (models.Contact, error)
	Delete(ctx context.Context, id, ownerID int) error
}

// ContactInput carries the four mutable contact fields; create and update
// both take the full set (update is a full replace).
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// AuthConfig holds the knobs the auth service needs. The signing key is
// injected here at startup; it is never a package constant.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

type Service struct {
	Authorization
	Contacts
}

func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, authCfg),
		Contacts:      NewContactService(repos.Contacts),
	}
}
