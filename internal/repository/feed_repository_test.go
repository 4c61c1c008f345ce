package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitography/internal/models"
)

func newMockRepo(t *testing.T) (*FeedRepositoryImpl, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewFeedRepository(sqlxDB), mock
}

func TestFeedRepository_LoadPosts(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	posts := []models.Post{
		{ID: "seed_fit2", Src: "/assets/fits/fit-2.jpg", Tags: []string{"denim"}, User: "chicbabe03", CreatedAt: 100},
		{ID: "seed_fit3", Src: "/assets/fits/fit-3.jpg", Tags: []string{"green"}, User: "littlemsrager", CreatedAt: 200},
	}
	raw, err := json.Marshal(posts)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT value FROM slots WHERE key = ?`).
		WithArgs(feedSlotKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(string(raw)))

	got, err := repo.LoadPosts(ctx)

	assert.NoError(t, err)
	assert.Equal(t, posts, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedRepository_LoadPosts_EmptySlotIsNotAnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT value FROM slots WHERE key = ?`).
		WithArgs(feedSlotKey).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.LoadPosts(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedRepository_LoadPosts_MalformedSlot(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT value FROM slots WHERE key = ?`).
		WithArgs(feedSlotKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("{not json"))

	got, err := repo.LoadPosts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to decode feed slot")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedRepository_SavePosts(t *testing.T) {
	repo, mock := newMockRepo(t)

	posts := []models.Post{
		{ID: "new", Src: "data:image/png;base64,abc", Tags: []string{"black"}, User: "guest", CreatedAt: 300},
	}
	raw, err := json.Marshal(posts)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO slots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`).
		WithArgs(feedSlotKey, string(raw)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.SavePosts(context.Background(), posts))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedRepository_SavePosts_WriteFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO slots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`).
		WithArgs(feedSlotKey, sqlmock.AnyArg()).
		WillReturnError(sql.ErrConnDone)

	err := repo.SavePosts(context.Background(), []models.Post{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write feed slot")
	assert.NoError(t, mock.ExpectationsWereMet())
}
