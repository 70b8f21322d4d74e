package postgres

import (
	"context"
	"errors"

	"go-ats-dashboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, creds *domain.UserCredentials) error {
	query := `INSERT INTO users (id, name, email, password_hash, created_at)
              VALUES ($1, $2, lower($3), $4, $5)`
	u := creds.User
	_, err := r.db.Exec(ctx, query, u.ID, u.Name, u.Email, creds.PasswordHash, u.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.ErrDuplicateID
	}
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email, created_at FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.UserCredentials, error) {
	query := `SELECT id, name, email, created_at, password_hash FROM users WHERE email = lower($1)`
	var c domain.UserCredentials
	err := r.db.QueryRow(ctx, query, email).Scan(
		&c.User.ID, &c.User.Name, &c.User.Email, &c.User.CreatedAt, &c.PasswordHash,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
