package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connorkuehl/valrank/internal/database"
	"github.com/connorkuehl/valrank/internal/valrank"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, cleanup, err := NewInMemory()
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return db
}

func TestLinkNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Link(context.Background(), "g", "u")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestPutLink(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return clock }

	err := db.PutLink(ctx, valrank.Link{GuildID: "g", UserID: "u", PlayerID: "Mazey#EU"})
	require.NoError(t, err)

	got, err := db.Link(ctx, "g", "u")
	require.NoError(t, err)
	assert.Equal(t, valrank.Link{GuildID: "g", UserID: "u", PlayerID: "Mazey#EU", UpdatedAt: clock}, got)

	clock = clock.Add(time.Hour)
	err = db.PutLink(ctx, valrank.Link{GuildID: "g", UserID: "u", PlayerID: "Other#NA"})
	require.NoError(t, err)

	got, err = db.Link(ctx, "g", "u")
	require.NoError(t, err)
	assert.Equal(t, valrank.PlayerID("Other#NA"), got.PlayerID)
	assert.Equal(t, clock, got.UpdatedAt)

	_, err = db.Link(ctx, "other-guild", "u")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestNewAppliesMigrations(t *testing.T) {
	path := Path(filepath.Join(t.TempDir(), "valrank.sqlite"))
	ctx := context.Background()

	db, cleanup, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.PutLink(ctx, valrank.Link{GuildID: "g", UserID: "u", PlayerID: "a#b"}))
	cleanup()

	db, cleanup, err = New(path)
	require.NoError(t, err)
	defer cleanup()

	got, err := db.Link(ctx, "g", "u")
	require.NoError(t, err)
	assert.Equal(t, valrank.PlayerID("a#b"), got.PlayerID)
}

func TestPutLinkRollsBackOnInsertFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := &DB{db: mockDB, now: time.Now}
	boom := errors.New("disk I/O error")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE links").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO links").WillReturnError(boom)
	mock.ExpectRollback()

	err = db.PutLink(context.Background(), valrank.Link{GuildID: "g", UserID: "u", PlayerID: "a#b"})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPutLinkUpdateSkipsInsert(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := &DB{db: mockDB, now: time.Now}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE links").
		WithArgs("a#b", sqlmock.AnyArg(), "g", "u").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = db.PutLink(context.Background(), valrank.Link{GuildID: "g", UserID: "u", PlayerID: "a#b"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkQueryFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := &DB{db: mockDB, now: time.Now}
	boom := errors.New("database is locked")

	mock.ExpectQuery("SELECT guild_id, user_id, player_id, updated_at FROM links").
		WithArgs("g", "u").
		WillReturnError(boom)

	_, err = db.Link(context.Background(), "g", "u")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, database.ErrNotFound)
}
