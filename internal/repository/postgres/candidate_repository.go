package postgres

import (
	"context"
	"errors"

	"go-ats-dashboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const candidateColumns = `id, name, email, phone, skills, experience, education, status, applied_date, interview_date, notes`

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var (
		c                  domain.Candidate
		skills             []string
		applied, interview pgtype.Date
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, pq.Array(&skills), &c.Experience, &c.Education,
		&c.Status, &applied, &interview, &c.Notes,
	)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []string{}
	}
	c.Skills = skills
	c.AppliedDate = fromPgDate(applied)
	c.InterviewDate = fromPgDatePtr(interview)
	return &c, nil
}

func (r *candidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY inserted_at, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	query := `INSERT INTO candidates (` + candidateColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, pq.Array(c.Skills), c.Experience, c.Education,
		string(c.Status), toPgDate(c.AppliedDate), toPgDatePtr(c.InterviewDate), c.Notes,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.ErrDuplicateID
	}
	return err
}

func (r *candidateRepository) Update(ctx context.Context, c *domain.Candidate) error {
	query := `UPDATE candidates SET
		name = $2,
		email = $3,
		phone = $4,
		skills = $5,
		experience = $6,
		education = $7,
		status = $8,
		applied_date = $9,
		interview_date = $10,
		notes = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, pq.Array(c.Skills), c.Experience, c.Education,
		string(c.Status), toPgDate(c.AppliedDate), toPgDatePtr(c.InterviewDate), c.Notes,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
