package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"records-api/internal/domain"
	"records-api/internal/repository"
)

type UserRepository struct {
	session *Session
}

func (r *UserRepository) Add(ctx context.Context, user *domain.User) error {
	tx, err := r.session.txn(ctx)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
INSERT INTO user (name, age, password)
VALUES (?, ?, ?)`,
		user.Name,
		user.Age,
		user.Password,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("user last insert id: %w", err)
	}
	user.ID = id
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	tx, err := r.session.txn(ctx)
	if err != nil {
		return nil, err
	}

	row := tx.QueryRowContext(ctx, `
SELECT id, name, age, password
FROM user
WHERE id = ?`,
		id,
	)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) Refresh(ctx context.Context, user *domain.User) error {
	fresh, err := r.Get(ctx, user.ID)
	if err != nil {
		return err
	}
	if fresh == nil {
		return fmt.Errorf("refresh user %d: %w", user.ID, repository.ErrRowNotFound)
	}
	*user = *fresh
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, user *domain.User) error {
	tx, err := r.session.txn(ctx)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM user WHERE id = ?`, user.ID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("delete user %d: %w", user.ID, repository.ErrRowNotFound)
	}
	return nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Age,
		&user.Password,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
