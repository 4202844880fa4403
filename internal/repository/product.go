package repository

import (
	"context"

	"records-api/internal/domain"
)

// ProductRepository defines persistence operations for Product entities within a session.
type ProductRepository interface {
	Add(ctx context.Context, product *domain.Product) error
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Refresh(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, product *domain.Product) error
}
