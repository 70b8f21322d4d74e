package postgres

import (
	"context"
	"fmt"

	"go-ats-dashboard/internal/domain"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	email          TEXT NOT NULL,
	phone          TEXT NOT NULL DEFAULT '',
	skills         TEXT[] NOT NULL DEFAULT '{}',
	experience     TEXT NOT NULL DEFAULT '',
	education      TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL,
	applied_date   DATE,
	interview_date DATE,
	notes          TEXT,
	inserted_at    TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
);

CREATE TABLE IF NOT EXISTS jobs (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	department   TEXT NOT NULL,
	level        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	requirements TEXT[] NOT NULL DEFAULT '{}',
	location     TEXT NOT NULL DEFAULT '',
	type         TEXT NOT NULL,
	status       TEXT NOT NULL,
	salary_min   DOUBLE PRECISION NOT NULL DEFAULT 0,
	salary_max   DOUBLE PRECISION NOT NULL DEFAULT 0,
	currency     TEXT NOT NULL DEFAULT 'USD',
	applications INTEGER NOT NULL DEFAULT 0,
	created_date DATE,
	closed_date  DATE,
	inserted_at  TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Bootstrap creates the tables if they do not exist yet.
func Bootstrap(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts the given records into empty tables only.
func SeedIfEmpty(ctx context.Context, db *pgxpool.Pool, candidates []domain.Candidate, jobs []domain.Job) error {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM candidates`).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		repo := NewCandidateRepository(db)
		for i := range candidates {
			if err := repo.Create(ctx, &candidates[i]); err != nil {
				return fmt.Errorf("seed candidate %s: %w", candidates[i].ID, err)
			}
		}
	}

	if err := db.QueryRow(ctx, `SELECT count(*) FROM jobs`).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		repo := NewJobRepository(db)
		for i := range jobs {
			if err := repo.Create(ctx, &jobs[i]); err != nil {
				return fmt.Errorf("seed job %s: %w", jobs[i].ID, err)
			}
		}
	}
	return nil
}

func toPgDate(d domain.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func toPgDatePtr(d *domain.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return toPgDate(*d)
}

func fromPgDate(d pgtype.Date) domain.Date {
	if !d.Valid {
		return domain.Date{}
	}
	return domain.DateOf(d.Time)
}

func fromPgDatePtr(d pgtype.Date) *domain.Date {
	if !d.Valid {
		return nil
	}
	out := domain.DateOf(d.Time)
	return &out
}
