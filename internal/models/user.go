// Package models defines the account-ledger domain types and their persisted shape.
package models

// User is one profile, keyed by email, owning its bank accounts in creation order.
// The password is stored in plaintext to stay readable and writable by the
// other tools that share the records file.
type User struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt string    `json:"created_at"`
	Accounts  []Account `json:"accounts"`
}

// Store is the full collection of user profiles, keyed by email.
type Store map[string]User
