package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-ats-dashboard/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	t.Run("NetworkFailure wraps its cause", func(t *testing.T) {
		err := apperror.NetworkFailure(cause)
		assert.Equal(t, http.StatusBadGateway, err.Code)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Should find AppError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("get candidate: %w", apperror.NotFound("Candidate not found"))
		assert.True(t, apperror.IsNotFound(wrapped))
		assert.False(t, apperror.IsNotFound(cause))

		ae, ok := apperror.As(wrapped)
		assert.True(t, ok)
		assert.Equal(t, "Candidate not found", ae.Message)
	})
}
