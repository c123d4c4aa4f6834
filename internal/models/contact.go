package models

// Contact is a single address-book entry. Every contact belongs to exactly
// one user; OwnerID is always the verified caller, never client input.
type Contact struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	OwnerID int    `json:"owner_id"`
}
