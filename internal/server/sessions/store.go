// Package sessions tracks active logins in an external key-value store.
// A session maps an issued bearer token to a small payload referencing the
// user; expiry is enforced by the store itself via per-key TTLs.
package sessions

import (
	"context"
	"time"

	"github.com/akarpov87/accountd/internal/server/models"
)

// Store is the ephemeral session store keyed by token.
type Store interface {
	// Set writes the payload under token. A ttl of zero keeps the entry
	// until it is deleted explicitly.
	Set(ctx context.Context, token string, data models.SessionData, ttl time.Duration) error

	// Get returns the stored payload, or (nil, nil) when the token is
	// unknown or already expired.
	Get(ctx context.Context, token string) (*models.SessionData, error)

	// Delete removes the entry. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
