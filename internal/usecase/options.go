package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/pkg/apperror"
	"go-ats-dashboard/pkg/audit"
	"go-ats-dashboard/pkg/logger"
	"go-ats-dashboard/pkg/redis"
	"go-ats-dashboard/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// StatsCache is the subset of the Redis cache the usecases use.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type options struct {
	now   func() time.Time
	audit *audit.Logger
	cache StatsCache
}

type Option func(*options)

// WithClock overrides time.Now, which decides "today" for new records and the dashboard.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithAudit(l *audit.Logger) Option {
	return func(o *options) { o.audit = l }
}

// WithStatsCache enables caching of dashboard stats (dashboard usecase) or
// invalidation after mutations (candidate and job usecases).
func WithStatsCache(c StatsCache) Option {
	return func(o *options) { o.cache = c }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) today() domain.Date {
	return domain.DateOf(o.now())
}

// invalidateStats drops cached dashboard stats. It runs even if the request was cancelled
// after the mutation landed.
func (o options) invalidateStats(ctx context.Context) {
	if o.cache == nil {
		return
	}
	if err := o.cache.Delete(context.WithoutCancel(ctx), redis.StatsKey); err != nil {
		logger.Log.Warn("failed to invalidate dashboard stats", "error", err)
	}
}

// validateInput turns validator failures into a single 400.
func validateInput(v *validator.Validate, input any) error {
	if err := v.Struct(input); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return apperror.Internal(err)
		}
		msg := strings.Join(validation.FormatValidationErrors(err), "; ")
		return apperror.New(http.StatusBadRequest, msg, err)
	}
	return nil
}

// translate maps repository errors onto the HTTP-facing taxonomy.
func translate(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return apperror.New(http.StatusNotFound, entity+" not found", err)
	case errors.Is(err, domain.ErrDuplicateID):
		return apperror.New(http.StatusConflict, entity+" already exists", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Internal(fmt.Errorf("%s store: %w", strings.ToLower(entity), err))
}
