package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ARPaule28/fynd-app/internal/dbx"
)

// SQLiteStore keeps the session in a two-row key/value table in the client's
// local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func getValue(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func setValue(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (Session, error) {
	token, err := getValue(ctx, s.db, keyAccessToken)
	if err != nil {
		return Session{}, err
	}
	id, err := getValue(ctx, s.db, keyStudentID)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: token, StudentID: id}, nil
}

// Save writes both keys in a single transaction so a crash can never leave a
// half-written session behind.
func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := setValue(ctx, tx, keyAccessToken, sess.AccessToken); err != nil {
			return err
		}
		return setValue(ctx, tx, keyStudentID, sess.StudentID)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
