package memory

import (
	"context"
	"strings"
	"sync"

	"go-ats-dashboard/internal/domain"
)

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.UserCredentials
	byEmail map[string]string
}

// NewUserRepository keeps accounts for the lifetime of the process only.
func NewUserRepository() domain.UserRepository {
	return &userRepo{
		byID:    make(map[string]domain.UserCredentials),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, creds *domain.UserCredentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(creds.User.Email)
	if _, ok := r.byEmail[email]; ok {
		return domain.ErrDuplicateID
	}
	if _, ok := r.byID[creds.User.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.byID[creds.User.ID] = *creds
	r.byEmail[email] = creds.User.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := c.User
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.UserCredentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := r.byID[id]
	return &c, nil
}
