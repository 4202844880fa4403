package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"records-api/internal/repository"
)

// ErrSessionClosed is returned by any operation on a closed session.
var ErrSessionClosed = errors.New("session closed")

// Session implements repository.Session on top of one pooled connection.
// A transaction is opened lazily by the first repository call and ended by
// Commit or Close. Sessions are not safe for concurrent use.
type Session struct {
	conn   *sql.Conn
	tx     *sql.Tx
	closed bool
}

func newSession(conn *sql.Conn) *Session {
	return &Session{conn: conn}
}

func (s *Session) Users() repository.UserRepository {
	return &UserRepository{session: s}
}

func (s *Session) Products() repository.ProductRepository {
	return &ProductRepository{session: s}
}

func (s *Session) Commit() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var rbErr error
	if s.tx != nil {
		if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			rbErr = fmt.Errorf("rollback tx: %w", err)
		}
		s.tx = nil
	}
	if err := s.conn.Close(); err != nil {
		return errors.Join(rbErr, fmt.Errorf("release connection: %w", err))
	}
	return rbErr
}

func (s *Session) txn(ctx context.Context) (*sql.Tx, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.tx == nil {
		tx, err := s.conn.BeginTx(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("begin tx: %w", err)
		}
		s.tx = tx
	}
	return s.tx, nil
}
