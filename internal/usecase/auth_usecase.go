package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/pkg/apperror"
	"go-ats-dashboard/pkg/audit"
	"go-ats-dashboard/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoAdminPassword is the demo admin's password when no hash is configured.
const DemoAdminPassword = "password"

const invalidCredentials = "Invalid email or password"

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
	opts     options
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager, opts ...Option) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		opts:     buildOptions(opts),
	}
}

// SeedAdmin creates the demo admin account unless the email is already taken.
// An empty passwordHash hashes DemoAdminPassword.
func SeedAdmin(ctx context.Context, repo domain.UserRepository, email, passwordHash string) error {
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if passwordHash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(DemoAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		passwordHash = string(h)
	}

	return repo.Create(ctx, &domain.UserCredentials{
		User: domain.User{
			ID:        uuid.NewString(),
			Name:      "Admin User",
			Email:     email,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: passwordHash,
	})
}

func (u *authUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	if !u.tokens.Enabled() {
		return nil, apperror.New(http.StatusServiceUnavailable, "Authentication is not configured", auth.ErrNoSecret)
	}

	creds, err := u.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, domain.ErrNotFound) {
		u.opts.audit.LoginFailed(ctx, req.Email, clientIP(ctx), "unknown_email")
		return nil, apperror.Unauthorized(invalidCredentials)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)); err != nil {
		u.opts.audit.LoginFailed(ctx, req.Email, clientIP(ctx), "invalid_password")
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	u.opts.audit.LoginSucceeded(ctx, req.Email, clientIP(ctx))
	return u.session(creds.User)
}

func (u *authUsecase) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Session, error) {
	if !u.tokens.Enabled() {
		return nil, apperror.New(http.StatusServiceUnavailable, "Authentication is not configured", auth.ErrNoSecret)
	}

	email := strings.TrimSpace(req.Email)
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		CreatedAt: u.opts.now().UTC(),
	}
	err = u.userRepo.Create(ctx, &domain.UserCredentials{User: user, PasswordHash: string(hash)})
	if errors.Is(err, domain.ErrDuplicateID) {
		return nil, apperror.Conflict("Email is already registered")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.opts.audit.Record(ctx, audit.EventUserRegistered, "user", user.ID)
	return u.session(user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "User")
	}
	return user, nil
}

func (u *authUsecase) session(user domain.User) (*domain.Session, error) {
	token, exp, err := u.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.Session{User: user, Token: token, ExpiresAt: exp}, nil
}

func clientIP(ctx context.Context) string {
	ip, _ := ctx.Value(domain.KeyClientIP).(string)
	return ip
}
