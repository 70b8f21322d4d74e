package domain

import "time"

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

// DefaultToastDuration applies when a notification does not set its own.
const DefaultToastDuration = 3 * time.Second

// Notification is a transient, user-visible message (a toast).
type Notification struct {
	Message  string           `json:"message"`
	Type     NotificationType `json:"type"`
	Duration time.Duration    `json:"duration,omitempty"`
}

func (n Notification) EffectiveDuration() time.Duration {
	if n.Duration <= 0 {
		return DefaultToastDuration
	}
	return n.Duration
}
