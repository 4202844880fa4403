package repository

import (
	"context"

	"records-api/internal/domain"
)

// UserRepository defines persistence operations for User entities within a session.
type UserRepository interface {
	Add(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, id int64) (*domain.User, error)
	Refresh(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, user *domain.User) error
}
