package service

import (
	"context"
	"errors"
	"fmt"

	"records-api/internal/domain"
	"records-api/internal/repository"
)

// ErrUserNotFound indicates that no user exists with the requested identity.
var ErrUserNotFound = errors.New("user not found")

// UserService describes user lifecycle operations scoped to one session.
type UserService interface {
	Create(ctx context.Context, sess repository.Session, user *domain.User) (*domain.User, error)
	Get(ctx context.Context, sess repository.Session, id int64) (*domain.User, error)
	Delete(ctx context.Context, sess repository.Session, id int64) error
}

type userService struct{}

func NewUserService() UserService {
	return &userService{}
}

func (s *userService) Create(ctx context.Context, sess repository.Session, user *domain.User) (*domain.User, error) {
	users := sess.Users()
	user.ID = 0
	if err := users.Add(ctx, user); err != nil {
		return nil, err
	}
	if err := sess.Commit(); err != nil {
		return nil, err
	}
	if err := users.Refresh(ctx, user); err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, sess repository.Session, id int64) (*domain.User, error) {
	user, err := sess.Users().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, sess repository.Session, id int64) error {
	users := sess.Users()
	user, err := users.Get(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := users.Delete(ctx, user); err != nil {
		return err
	}
	return sess.Commit()
}
