package models

import "time"

// User is a stored account record. PasswordHash never leaves the server:
// it is excluded from JSON and must not be logged.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// UserPatch is an immutable set of field overrides for an account update.
// A nil field leaves the stored value untouched. PasswordHash must already
// be hashed by the caller.
type UserPatch struct {
	Email        *string
	PasswordHash *string
}

// Merge combines a stored user with a patch and returns the resulting
// record. Neither input is modified.
func Merge(u User, p UserPatch) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	return u
}
