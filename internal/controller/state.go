// Package controller holds the view state behind the dashboard screens: the
// shared AppState plus one controller per screen. Controllers never return
// façade errors; failures surface as error toasts on the AppState.
package controller

import (
	"sync"
	"time"

	"go-ats-dashboard/internal/domain"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AppState is the state shared by all controllers. It is safe for concurrent use.
type AppState struct {
	mu           sync.Mutex
	now          func() time.Time
	loading      bool
	toast        *domain.Notification
	toastExpires time.Time
	theme        Theme
	user         *domain.User
}

// NewAppState returns a light-themed state. A nil clock means time.Now.
func NewAppState(now func() time.Time) *AppState {
	if now == nil {
		now = time.Now
	}
	return &AppState{now: now, theme: ThemeLight}
}

func (s *AppState) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *AppState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ShowToast replaces the current toast. It expires after its effective duration.
func (s *AppState) ShowToast(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toast = &n
	s.toastExpires = s.now().Add(n.EffectiveDuration())
}

func (s *AppState) showError(msg string) {
	s.ShowToast(domain.Notification{Message: msg, Type: domain.NotifyError})
}

func (s *AppState) showSuccess(msg string) {
	s.ShowToast(domain.Notification{Message: msg, Type: domain.NotifySuccess})
}

// Toast returns the visible toast, if any. An expired toast is cleared.
func (s *AppState) Toast() (domain.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toast == nil {
		return domain.Notification{}, false
	}
	if !s.now().Before(s.toastExpires) {
		s.toast = nil
		return domain.Notification{}, false
	}
	return *s.toast, true
}

func (s *AppState) DismissToast() {
	s.mu.Lock()
	s.toast = nil
	s.mu.Unlock()
}

func (s *AppState) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *AppState) ToggleTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return s.theme
}

func (s *AppState) SetUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	cp := *u
	s.user = &cp
}

// User returns the signed-in user or nil.
func (s *AppState) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// Reset returns the state to its initial values.
func (s *AppState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.toast = nil
	s.toastExpires = time.Time{}
	s.theme = ThemeLight
	s.user = nil
}

// track sets loading for the duration of one façade call.
func (s *AppState) track() func() {
	s.SetLoading(true)
	return func() { s.SetLoading(false) }
}
