// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the single identity record backing both regular users and
// administrators. The role decides which of the profile fields are required;
// ordinary users carry only username, email and credential.
type Account struct {
	ID           uuid.UUID // Storage-assigned unique identifier, immutable after creation.
	Username     string
	Email        string // Login identifier. Unique among accounts, enforced by the store.
	PasswordHash string // bcrypt output. Never serialized into any read response.
	Role         Role   // Immutable after creation; no promote/demote operation exists.
	Status       Status // Active or soft-deleted. Deletion is terminal.

	// Administrator profile fields. Required at creation for admin roles,
	// empty for self-registered users.
	FirstName string
	LastName  string
	PhoneNo   string
	Address   string
	ImagePath string // Storage path produced by the external upload collaborator.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDeleted reports whether the account has been soft-deleted.
func (a *Account) IsDeleted() bool {
	return a.Status == StatusDeleted
}
