package repository

import "context"

// Session is a unit of work bound to a single store connection. Changes
// staged through its repositories become durable only after Commit.
// Close discards anything uncommitted and releases the connection; it is
// safe to call more than once.
type Session interface {
	Users() UserRepository
	Products() ProductRepository
	Commit() error
	Close() error
}

// SessionFactory opens sessions against the store.
type SessionFactory interface {
	Begin(ctx context.Context) (Session, error)
}
