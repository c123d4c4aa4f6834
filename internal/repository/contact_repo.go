package repository

import (
	"context"
	"database/sql"
	"fmt"

	"contactbook/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ Contacts = (*ContactRepository)(nil)

// Every statement that touches an existing row matches on owner_id as well
// as id. A contact owned by someone else is indistinguishable from a
// contact that does not exist.
const (
	selectContactsByOwnerSQL = `
		SELECT id, name, email, phone, address, owner_id
		FROM contacts WHERE owner_id = ? ORDER BY id ASC`
	insertContactSQL = `
		INSERT INTO contacts (name, email, phone, address, owner_id)
		VALUES (?, ?, ?, ?, ?)`
	updateContactSQL = `
		UPDATE contacts SET name = ?, email = ?, phone = ?, address = ?
		WHERE id = ? AND owner_id = ?`
	deleteContactSQL = `DELETE FROM contacts WHERE id = ? AND owner_id = ?`
)

// List returns all contacts owned by ownerID in insertion order.
func (r *ContactRepository) List(ctx context.Context, ownerID int) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, selectContactsByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select contacts for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Contact, 0, 16)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.OwnerID); err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}
	return out, nil
}

// Create inserts a new contact and returns it with the assigned id.
func (r *ContactRepository) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	res, err := r.db.ExecContext(ctx, insertContactSQL, c.Name, c.Email, c.Phone, c.Address, c.OwnerID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("insert contact for owner %d: %w", c.OwnerID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Contact{}, fmt.Errorf("get last insert id for contact: %w", err)
	}
	c.ID = int(lastID)
	return c, nil
}

// Update replaces the four mutable fields of the contact matching
// (c.ID, c.OwnerID). Zero matched rows means ErrNotFound.
func (r *ContactRepository) Update(ctx context.Context, c models.Contact) (models.Contact, error) {
	res, err := r.db.ExecContext(ctx, updateContactSQL, c.Name, c.Email, c.Phone, c.Address, c.ID, c.OwnerID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact %d: %w", c.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Contact{}, fmt.Errorf("rows affected for contact %d: %w", c.ID, err)
	}
	if n == 0 {
		return models.Contact{}, ErrNotFound
	}
	return c, nil
}

// Delete removes the contact matching (id, ownerID).
func (r *ContactRepository) Delete(ctx context.Context, id, ownerID int) error {
	res, err := r.db.ExecContext(ctx, deleteContactSQL, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for contact %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
