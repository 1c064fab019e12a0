package db

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submissionColumns = []string{
	"id", "submitted_at", "rating", "review", "ai_response", "ai_summary", "ai_actions",
}

func TestPostgresStore_EnsureInitialized(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS submissions").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	store := NewPostgresStore(mock)
	require.NoError(t, store.EnsureInitialized(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := sampleReview("20261019120000000001", 5)
	mock.ExpectExec("INSERT INTO submissions").
		WithArgs(r.ID, r.Timestamp, r.Rating, r.Review, r.AIResponse, r.AISummary, r.AIActions).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewPostgresStore(mock)
	require.NoError(t, store.Append(context.Background(), r))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AppendError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO submissions").
		WillReturnError(errors.New("connection refused"))

	store := NewPostgresStore(mock)
	err = store.Append(context.Background(), sampleReview("1", 1))
	assert.ErrorContains(t, err, "insert submission")
}

func TestPostgresStore_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	first := sampleReview("1", 5)
	second := sampleReview("2", 1)
	rows := pgxmock.NewRows(submissionColumns).
		AddRow(first.ID, first.Timestamp, first.Rating, first.Review, first.AIResponse, first.AISummary, first.AIActions).
		AddRow(second.ID, second.Timestamp, second.Rating, second.Review, second.AIResponse, second.AISummary, second.AIActions)
	mock.ExpectQuery("SELECT id, submitted_at").WillReturnRows(rows)

	store := NewPostgresStore(mock)
	reviews, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, first, reviews[0])
	assert.Equal(t, second, reviews[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, submitted_at").WillReturnRows(pgxmock.NewRows(submissionColumns))

	store := NewPostgresStore(mock)
	reviews, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestPostgresStore_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectPing()
	store := NewPostgresStore(mock)
	assert.NoError(t, store.Ping(context.Background()))
}
