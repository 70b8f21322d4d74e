package controller

import (
	"context"
	"net/http"

	"go-ats-dashboard/internal/client"
	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/pkg/apperror"
	"go-ats-dashboard/pkg/logger"
)

// Authenticator exchanges credentials for a session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

type AuthController struct {
	state *AppState
	auth  Authenticator
}

func NewAuthController(state *AppState, auth Authenticator) *AuthController {
	return &AuthController{state: state, auth: auth}
}

// Login stores the session user on success. Rejected credentials and other
// failures produce different toasts.
func (a *AuthController) Login(ctx context.Context, email, password string) (*domain.Session, bool) {
	defer a.state.track()()

	s, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if unauthorized(err) {
			a.state.showError("Invalid email or password")
		} else {
			logger.Log.Warn("login failed", "error", err)
			a.state.showError("An error occurred during login")
		}
		return nil, false
	}
	a.state.SetUser(&s.User)
	a.state.showSuccess("Logged in successfully")
	return s, true
}

func (a *AuthController) Logout() {
	a.state.SetUser(nil)
}

// unauthorized matches a local 401 and a 401 relayed by the remote client.
func unauthorized(err error) bool {
	return apperror.HasCode(err, http.StatusUnauthorized) || client.StatusCode(err) == http.StatusUnauthorized
}
