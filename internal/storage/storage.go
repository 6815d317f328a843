// Package storage provides the durable document store for accounts and
// the append-only search log, backed by Postgres.
package storage

import (
	"context"
	"errors"

	"weather-dashboard/internal/models"
)

var (
	// ErrDuplicate is returned when a unique constraint (username or
	// normalized email) rejects a write.
	ErrDuplicate = errors.New("record already exists")
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
)

// UserRepository is the account collection.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// SearchLogRepository is the append-only search log collection.
type SearchLogRepository interface {
	Append(ctx context.Context, city string) error
	Recent(ctx context.Context, limit int) ([]models.SearchLogEntry, error)
}
