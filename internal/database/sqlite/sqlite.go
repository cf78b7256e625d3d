package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/connorkuehl/valrank/internal/database"
	"github.com/connorkuehl/valrank/internal/valrank"
)

//go:embed migrations/000001_create_tables.up.sql
var up string

type Path string

type DB struct {
	db  *sql.DB
	now func() time.Time
}

func New(path Path) (*DB, func(), error) {
	return open(string(path))
}

func open(dsn string) (*DB, func(), error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, func() {}, err
	}

	// SQLite serializes writers, and each connection to ":memory:" is a
	// separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(up); err != nil {
		_ = db.Close()
		return nil, func() {}, fmt.Errorf("migrate: %w", err)
	}

	return &DB{db: db, now: time.Now}, func() { _ = db.Close() }, nil
}

// Link returns the player the member registered as.
func (d *DB) Link(ctx context.Context, guildID, userID string) (valrank.Link, error) {
	query := `SELECT guild_id, user_id, player_id, updated_at FROM links WHERE guild_id = $1 AND user_id = $2`
	args := []any{guildID, userID}
	r := d.db.QueryRowContext(ctx, query, args...)

	var (
		l         valrank.Link
		updatedAt int64
	)
	err := r.Scan(&l.GuildID, &l.UserID, &l.PlayerID, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		err = database.ErrNotFound
	}
	if err != nil {
		return valrank.Link{}, err
	}

	l.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return l, nil
}

// PutLink records or replaces the member's link. UpdatedAt is set by the
// store.
func (d *DB) PutLink(ctx context.Context, link valrank.Link) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := d.now().Unix()

	query := `UPDATE links SET player_id = $1, updated_at = $2 WHERE guild_id = $3 AND user_id = $4`
	args := []any{string(link.PlayerID), now, link.GuildID, link.UserID}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	if affected, _ := res.RowsAffected(); affected == 1 {
		return tx.Commit()
	}

	query = `INSERT INTO links (
		guild_id,
		user_id,
		player_id,
		created_at,
		updated_at
		) VALUES ($1, $2, $3, $4, $5)`
	args = []any{link.GuildID, link.UserID, string(link.PlayerID), now, now}
	_, err = tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return tx.Commit()
}
