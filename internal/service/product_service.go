package service

import (
	"context"
	"errors"
	"fmt"

	"records-api/internal/domain"
	"records-api/internal/repository"
)

// ErrProductNotFound indicates that no product exists with the requested identity.
var ErrProductNotFound = errors.New("product not found")

// ProductService describes product lifecycle operations scoped to one session.
type ProductService interface {
	Create(ctx context.Context, sess repository.Session, product *domain.Product) (*domain.Product, error)
	Get(ctx context.Context, sess repository.Session, id int64) (*domain.Product, error)
	Delete(ctx context.Context, sess repository.Session, id int64) error
}

type productService struct{}

func NewProductService() ProductService {
	return &productService{}
}

func (s *productService) Create(ctx context.Context, sess repository.Session, product *domain.Product) (*domain.Product, error) {
	products := sess.Products()
	product.ID = 0
	if err := products.Add(ctx, product); err != nil {
		return nil, err
	}
	if err := sess.Commit(); err != nil {
		return nil, err
	}
	if err := products.Refresh(ctx, product); err != nil {
		return nil, fmt.Errorf("reload product: %w", err)
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, sess repository.Session, id int64) (*domain.Product, error) {
	product, err := sess.Products().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, sess repository.Session, id int64) error {
	products := sess.Products()
	product, err := products.Get(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := products.Delete(ctx, product); err != nil {
		return err
	}
	return sess.Commit()
}
