package models

// User is a registered account.
type User struct {
	// ID is the opaque identifier assigned at registration.
	ID string `json:"id"`

	// Email is unique across all users.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. It never leaves the process.
	PasswordHash string `json:"-"`
}
