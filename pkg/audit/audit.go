// Package audit writes structured records of data changes and security
// relevant events, separate from the application log.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type EventType string

const (
	EventCandidateCreated   EventType = "candidate_created"
	EventCandidateUpdated   EventType = "candidate_updated"
	EventCandidateDeleted   EventType = "candidate_deleted"
	EventJobCreated         EventType = "job_created"
	EventJobUpdated         EventType = "job_updated"
	EventJobDeleted         EventType = "job_deleted"
	EventLoginSuccess       EventType = "login_success"
	EventLoginFailed        EventType = "login_failed"
	EventUserRegistered     EventType = "user_registered"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventExportGenerated    EventType = "export_generated"
)

// Event is one audit record.
type Event struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string // "candidate", "job", "email", "ip"
	SubjectValue string
	ActorID      string
	IP           string
	RequestID    string
	Details      map[string]any
}

type Logger struct {
	zap         *zap.Logger
	serviceName string
	environment string
}

// New builds a production zap logger writing JSON to stdout.
func New(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	z, err := config.Build(zap.AddCaller())
	if err != nil {
		z, _ = zap.NewProduction()
	}
	return NewWithZap(z, serviceName, environment)
}

func NewWithZap(z *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{zap: z, serviceName: serviceName, environment: environment}
}

// Nop discards every event.
func Nop() *Logger {
	return NewWithZap(zap.NewNop(), "", "")
}

func (l *Logger) Log(ctx context.Context, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.InfoLevel
	switch event.Event {
	case EventLoginFailed, EventRateLimitTriggered:
		level = zapcore.WarnLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("at", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields,
			zap.String("subject_type", event.SubjectType),
			zap.String("subject_value", maskValue(event.SubjectType, event.SubjectValue)),
		)
	}
	if event.ActorID != "" {
		fields = append(fields, zap.String("actor_id", event.ActorID))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	l.zap.Log(level, string(event.Event), fields...)
}

// Record logs a create/update/delete of an entity.
func (l *Logger) Record(ctx context.Context, event EventType, entity, id string) {
	l.Log(ctx, Event{
		Event:        event,
		SubjectType:  entity,
		SubjectValue: id,
		ActorID:      actorFrom(ctx),
	})
}

func (l *Logger) LoginSucceeded(ctx context.Context, email, ip string) {
	l.Log(ctx, Event{Event: EventLoginSuccess, SubjectType: "email", SubjectValue: email, IP: ip})
}

func (l *Logger) LoginFailed(ctx context.Context, email, ip, reason string) {
	l.Log(ctx, Event{
		Event:        EventLoginFailed,
		SubjectType:  "email",
		SubjectValue: email,
		IP:           ip,
		Details:      map[string]any{"reason": reason},
	})
}

func (l *Logger) RateLimitTriggered(ctx context.Context, ip, requestID, endpoint string) {
	l.Log(ctx, Event{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]any{"endpoint": endpoint},
	})
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zap.Sync()
}

type actorKey struct{}

// WithActor attaches the acting user id to ctx for later Record calls.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

func actorFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(actorKey{}).(string)
	return id
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if len(email) < 3 || at < 0 {
		return "***"
	}
	if at <= 1 {
		return "***" + email[at:]
	}
	return email[:1] + "***" + email[at:]
}

// HashValue returns a short SHA-256 fingerprint of value.
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func maskValue(subjectType, value string) string {
	switch subjectType {
	case "email":
		return MaskEmail(value)
	case "ip", "candidate", "job", "export":
		return value
	default:
		return HashValue(value)
	}
}
