package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contactbook/internal/models"
	"contactbook/internal/repository"
)

var (
	// ErrValidation means the client sent a missing or empty required field.
	ErrValidation = errors.New("validation failed")
	// ErrContactNotFound covers both "no such id" and "owned by someone
	// else"; callers must not be able to tell them apart.
	ErrContactNotFound = errors.New("contact not found")
)

type ContactService struct {
	contactRepo repository.Contacts
}

func NewContactService(repo repository.Contacts) *ContactService {
	return &ContactService{contactRepo: repo}
}

var _ Contacts = (*ContactService)(nil)

// validateInput rejects any empty required field; a contact is never
// stored with a blank name, email, phone or address.
func validateInput(in ContactInput) error {
	for _, f := range []struct {
		name, value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"address", in.Address},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}
	return nil
}

func (s *ContactService) List(ctx context.Context, ownerID int) ([]models.Contact, error) {
	return s.contactRepo.List(ctx, ownerID)
}

func (s *ContactService) Create(ctx context.Context, ownerID int, in ContactInput) (models.Contact, error) {
	if err := validateInput(in); err != nil {
		return models.Contact{}, err
	}
	return s.contactRepo.Create(ctx, models.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		OwnerID: ownerID,
	})
}

// Update fully replaces the four mutable fields of the caller's contact.
func (s *ContactService) Update(ctx context.Context, id, ownerID int, in ContactInput) (models.Contact, error) {
	if err := validateInput(in); err != nil {
		return models.Contact{}, err
	}
	c, err := s.contactRepo.Update(ctx, models.Contact{
		ID:      id,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		OwnerID: ownerID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Contact{}, ErrContactNotFound
		}
		return models.Contact{}, err
	}
	return c, nil
}

func (s *ContactService) Delete(ctx context.Context, id, ownerID int) error {
	err := s.contactRepo.Delete(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	return nil
}
