package middleware

import (
	"errors"
	"net/http"

	"go-ats-dashboard/internal/delivery/http/response"
	"go-ats-dashboard/pkg/apperror"
	"go-ats-dashboard/pkg/logger"
	"go-ats-dashboard/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &appErr):
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"request_id", c.GetString("RequestID"),
					"path", c.Request.URL.Path,
					"error", err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
		case errors.As(err, &verrs):
			response.Error(c, http.StatusBadRequest, "Validation failed", validation.FormatValidationErrors(err))
		default:
			// Internal details stay in the server log.
			logger.Log.Error("unexpected error",
				"request_id", c.GetString("RequestID"),
				"path", c.Request.URL.Path,
				"error", err,
			)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
