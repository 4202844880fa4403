package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"records-api/internal/domain"
	"records-api/internal/repository"
)

type ProductRepository struct {
	session *Session
}

func (r *ProductRepository) Add(ctx context.Context, product *domain.Product) error {
	tx, err := r.session.txn(ctx)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
INSERT INTO product (name, price, obs)
VALUES (?, ?, ?)`,
		product.Name,
		product.Price,
		nullString(product.Obs),
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("product last insert id: %w", err)
	}
	product.ID = id
	return nil
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	tx, err := r.session.txn(ctx)
	if err != nil {
		return nil, err
	}

	row := tx.QueryRowContext(ctx, `
SELECT id, name, price, obs
FROM product
WHERE id = ?`,
		id,
	)
	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return product, err
}

func (r *ProductRepository) Refresh(ctx context.Context, product *domain.Product) error {
	fresh, err := r.Get(ctx, product.ID)
	if err != nil {
		return err
	}
	if fresh == nil {
		return fmt.Errorf("refresh product %d: %w", product.ID, repository.ErrRowNotFound)
	}
	*product = *fresh
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	tx, err := r.session.txn(ctx)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM product WHERE id = ?`, product.ID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("product delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("delete product %d: %w", product.ID, repository.ErrRowNotFound)
	}
	return nil
}

func scanProduct(row interface {
	Scan(dest ...any) error
}) (*domain.Product, error) {
	var (
		product domain.Product
		obs     sql.NullString
	)
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&obs,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if obs.Valid {
		v := obs.String
		product.Obs = &v
	}
	return &product, nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
