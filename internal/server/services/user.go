// Package services contains the server-side business logic. UserService
// orchestrates the user repository and the session store: it registers and
// authenticates accounts, applies updates, and issues and revokes the
// session tokens tracking active logins.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov87/accountd/internal/common"
	"github.com/akarpov87/accountd/internal/dbx"
	"github.com/akarpov87/accountd/internal/server/auth"
	"github.com/akarpov87/accountd/internal/server/config"
	"github.com/akarpov87/accountd/internal/server/models"
	"github.com/akarpov87/accountd/internal/server/repositories/repomanager"
	"github.com/akarpov87/accountd/internal/server/security"
	"github.com/akarpov87/accountd/internal/server/sessions"
)

// UpdatePatch is the immutable set of account changes accepted by Update.
// Password carries the plaintext candidate; it is hashed before anything
// touches the store.
type UpdatePatch struct {
	Email    *string
	Password *string
}

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	sessions                    sessions.Store
	hasher                      *security.Hasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	sessionTTL                  time.Duration
}

// NewUserService constructs a UserService from its explicit dependencies and
// server config. Nothing is resolved ambiently; both stores arrive as
// capabilities.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, store sessions.Store, hasher *security.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		sessions:                    store,
		hasher:                      hasher,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		sessionTTL:                  cfg.SessionTTL,
	}
}

// Register creates an account with a salted hash of the password and opens a
// session for it. A duplicate email surfaces as common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", err
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.openSession(ctx, user)
}

// Login verifies the credentials and opens a new session. A missing user and
// a wrong password both collapse to common.ErrorUnauthorized so callers
// cannot probe which emails exist. Earlier tokens stay valid.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	return s.openSession(ctx, user)
}

// Update applies the patch to the account inside one transaction: load,
// re-hash the password if patched, merge, persist. On success it opens a
// fresh session for the updated identity and returns the new token alongside
// the record. Tokens issued before the call are not invalidated.
func (s *UserService) Update(ctx context.Context, email string, patch UpdatePatch) (string, *models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}

		fields := models.UserPatch{Email: patch.Email}
		if patch.Password != nil {
			hash, err := s.hasher.Hash(*patch.Password)
			if err != nil {
				return common.ErrorInternal
			}
			fields.PasswordHash = &hash
		}

		merged := models.Merge(*user, fields)
		updated, err = repo.Update(ctx, &merged)
		return err
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.openSession(ctx, updated)
	if err != nil {
		return "", nil, err
	}

	return token, updated, nil
}

// Logout drops the session entry for token. Unknown tokens are not an
// error; calling Logout twice is a no-op the second time.
func (s *UserService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Delete removes the account. Session entries referencing it are left to
// their own TTLs.
func (s *UserService) Delete(ctx context.Context, email string) error {
	repo := s.repomanager.Users(s.db)
	return repo.DeleteByEmail(ctx, email)
}

// FindOne returns the account record for email, or common.ErrorNotFound.
func (s *UserService) FindOne(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByEmail(ctx, email)
}

// Session returns the payload stored for token, or nil when the token is
// unknown or expired.
func (s *UserService) Session(ctx context.Context, token string) (*models.SessionData, error) {
	return s.sessions.Get(ctx, token)
}

// openSession signs a bearer token for the user and stores the session entry
// under it. The token string doubles as the session key.
func (s *UserService) openSession(ctx context.Context, user *models.User) (string, error) {
	token, err := auth.GenerateToken(user.Email, user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	if err := s.sessions.Set(ctx, token, models.SessionData{UserID: user.ID}, s.sessionTTL); err != nil {
		return "", fmt.Errorf("error storing session: %w", err)
	}

	return token, nil
}
