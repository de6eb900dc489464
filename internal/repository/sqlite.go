package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type sqliteSlot struct {
	conn *sql.DB
}

func NewSQLiteSlot(conn *sql.DB) SlotRepository {
	return &sqliteSlot{
		conn: conn,
	}
}

func (that *sqliteSlot) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM kv WHERE key = ?`

	var value string

	err := that.conn.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSlotNotFound
	}
	if err != nil {
		return "", fmt.Errorf("can't get slot %s: %w", key, err)
	}

	return value, nil
}

func (that *sqliteSlot) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := that.conn.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("can't set slot %s: %w", key, err)
	}

	return nil
}
