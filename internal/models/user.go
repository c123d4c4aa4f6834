package models

// User is a registered account. The stored bcrypt hash never leaves the
// process; serialization of a user goes through PublicUser.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// PublicUser is the outward-facing view of a User: an explicit allowlist
// of fields rather than whatever happens to be stored.
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public converts a User into its serializable view.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}
