package domain

import (
	"context"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserCredentials pairs a user with its bcrypt password hash. The hash never leaves the repository layer.
type UserCredentials struct {
	User         User
	PasswordHash string
}

// Session is what a successful login or registration returns.
type Session struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UserRepository interface {
	Create(ctx context.Context, creds *UserCredentials) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*UserCredentials, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, req LoginRequest) (*Session, error)
	Register(ctx context.Context, req RegisterRequest) (*Session, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
