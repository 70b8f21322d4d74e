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

const jobColumns = `id, title, department, level, description, requirements, location, type, status,
	salary_min, salary_max, currency, applications, created_date, closed_date`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		job             domain.Job
		requirements    []string
		created, closed pgtype.Date
	)
	err := row.Scan(
		&job.ID, &job.Title, &job.Department, &job.Level, &job.Description, pq.Array(&requirements),
		&job.Location, &job.Type, &job.Status,
		&job.SalaryRange.Min, &job.SalaryRange.Max, &job.SalaryRange.Currency, &job.Applications,
		&created, &closed,
	)
	if err != nil {
		return nil, err
	}
	if requirements == nil {
		requirements = []string{}
	}
	job.Requirements = requirements
	job.CreatedDate = fromPgDate(created)
	job.ClosedDate = fromPgDatePtr(closed)
	return &job, nil
}

func (r *jobRepo) List(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY inserted_at, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return job, err
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (` + jobColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Department, string(job.Level), job.Description, pq.Array(job.Requirements),
		job.Location, string(job.Type), string(job.Status),
		job.SalaryRange.Min, job.SalaryRange.Max, job.SalaryRange.Currency, job.Applications,
		toPgDate(job.CreatedDate), toPgDatePtr(job.ClosedDate),
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.ErrDuplicateID
	}
	return err
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		department = $3,
		level = $4,
		description = $5,
		requirements = $6,
		location = $7,
		type = $8,
		status = $9,
		salary_min = $10,
		salary_max = $11,
		currency = $12,
		applications = $13,
		created_date = $14,
		closed_date = $15
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Department, string(job.Level), job.Description, pq.Array(job.Requirements),
		job.Location, string(job.Type), string(job.Status),
		job.SalaryRange.Min, job.SalaryRange.Max, job.SalaryRange.Currency, job.Applications,
		toPgDate(job.CreatedDate), toPgDatePtr(job.ClosedDate),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
