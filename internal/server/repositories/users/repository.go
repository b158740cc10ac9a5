package users

import (
	"context"

	"github.com/akarpov87/accountd/internal/server/models"
)

// Repository is the durable store of account records. Lookups key on email;
// absence is reported as common.ErrorNotFound, duplicate emails on insert as
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	DeleteByEmail(ctx context.Context, email string) error
}
