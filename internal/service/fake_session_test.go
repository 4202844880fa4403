package service

import (
	"context"

	"records-api/internal/domain"
	"records-api/internal/repository"
)

type fakeSession struct {
	users     map[int64]domain.User
	products  map[int64]domain.Product
	nextID    int64
	commits   int
	commitErr error
	getErr    error
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		users:    map[int64]domain.User{},
		products: map[int64]domain.Product{},
	}
}

func (s *fakeSession) Users() repository.UserRepository       { return fakeUsers{s} }
func (s *fakeSession) Products() repository.ProductRepository { return fakeProducts{s} }
func (s *fakeSession) Close() error                           { return nil }

func (s *fakeSession) Commit() error {
	if s.commitErr != nil {
		return s.commitErr
	}
	s.commits++
	return nil
}

type fakeUsers struct{ s *fakeSession }

func (f fakeUsers) Add(_ context.Context, u *domain.User) error {
	f.s.nextID++
	u.ID = f.s.nextID
	f.s.users[u.ID] = *u
	return nil
}

func (f fakeUsers) Get(_ context.Context, id int64) (*domain.User, error) {
	if f.s.getErr != nil {
		return nil, f.s.getErr
	}
	u, ok := f.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f fakeUsers) Refresh(_ context.Context, u *domain.User) error {
	stored, ok := f.s.users[u.ID]
	if !ok {
		return repository.ErrRowNotFound
	}
	*u = stored
	return nil
}

func (f fakeUsers) Delete(_ context.Context, u *domain.User) error {
	delete(f.s.users, u.ID)
	return nil
}

type fakeProducts struct{ s *fakeSession }

func (f fakeProducts) Add(_ context.Context, p *domain.Product) error {
	f.s.nextID++
	p.ID = f.s.nextID
	f.s.products[p.ID] = *p
	return nil
}

func (f fakeProducts) Get(_ context.Context, id int64) (*domain.Product, error) {
	if f.s.getErr != nil {
		return nil, f.s.getErr
	}
	p, ok := f.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f fakeProducts) Refresh(_ context.Context, p *domain.Product) error {
	stored, ok := f.s.products[p.ID]
	if !ok {
		return repository.ErrRowNotFound
	}
	*p = stored
	return nil
}

func (f fakeProducts) Delete(_ context.Context, p *domain.Product) error {
	delete(f.s.products, p.ID)
	return nil
}
