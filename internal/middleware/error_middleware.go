package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyasar/assist/internal/app/models/dto"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/logger"
)

// HandleAPIError maps an application error to an HTTP response. Validation
// failures become 400, duplicate unique keys 409, missing references 404,
// missing configuration 500, auth failures 401 or 403, everything else 500.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	switch {
	case apperrors.Is(err,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrCourseCodeExists,
		apperrors.ErrAllotmentExists,
		apperrors.ErrBookmarkAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeConflict, message))

	case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidation, message))

	case errors.Is(err, apperrors.ErrReferenceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeNotFound, message))

	case apperrors.Is(err,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrTokenExpired,
		apperrors.ErrTokenInvalid,
		apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message))

	case apperrors.Is(err, apperrors.ErrPermissionDenied, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(dto.ErrorCodeForbidden, message))

	case apperrors.Is(err, apperrors.ErrDepartmentHasRelations):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeConflict, message))

	case errors.Is(err, apperrors.ErrGroupNotConfigured):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Configuration error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeConfiguration, message))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternal, "internal server error"))
	}
}

// ErrorHandler converts errors attached to the gin context into API
// responses. Controllers that already wrote a response are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		HandleAPIError(c, c.Errors.Last().Err)
	}
}

// RequestLogger logs each request with its status and latency fields.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("clientIp", c.ClientIP()).
			Msg("Request handled")
	}
}
