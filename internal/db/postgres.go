package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feedback_ai/backend/internal/models"
)

// DBTX is satisfied by *pgxpool.Pool and by pgxmock pools.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

const createSubmissionsTable = `
CREATE TABLE IF NOT EXISTS submissions (
	seq          BIGSERIAL PRIMARY KEY,
	id           TEXT NOT NULL UNIQUE,
	submitted_at TEXT NOT NULL,
	rating       INTEGER NOT NULL,
	review       TEXT NOT NULL,
	ai_response  TEXT NOT NULL,
	ai_summary   TEXT NOT NULL,
	ai_actions   TEXT[] NOT NULL
)`

// PostgresStore keeps reviews as rows; insertion order is the seq column.
type PostgresStore struct {
	db   DBTX
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{db: pool, pool: pool}, nil
}

func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) EnsureInitialized(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createSubmissionsTable); err != nil {
		return fmt.Errorf("create submissions table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) ([]models.Review, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, submitted_at, rating, review, ai_response, ai_summary, ai_actions
		FROM submissions
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Rating, &r.Review, &r.AIResponse, &r.AISummary, &r.AIActions); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return reviews, nil
}

func (s *PostgresStore) Append(ctx context.Context, r models.Review) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO submissions (id, submitted_at, rating, review, ai_response, ai_summary, ai_actions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.Timestamp, r.Rating, r.Review, r.AIResponse, r.AISummary, r.AIActions,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}
