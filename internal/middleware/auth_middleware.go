package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/app/models/dto"
	"github.com/oyasar/assist/internal/pkg/apperrors"
	"github.com/oyasar/assist/internal/pkg/auth"
)

// Context key under which the authenticated user is stored
const ContextUserKey = "currentUser"

// UserLoader resolves authenticated users from token claims.
type UserLoader interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// JWTAuth validates the bearer token and loads the authenticated user into
// the request context.
func JWTAuth(jwtService *auth.JWTService, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, "missing or malformed authorization header")
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, "account no longer exists")
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrorCodeForbidden, apperrors.ErrAccountDisabled.Error()))
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// PermissionChecker answers whether a user holds a permission. Satisfied by
// the authorizer built over the user's group memberships.
type PermissionChecker interface {
	HasPermission(ctx context.Context, user *models.User, permission string) (bool, error)
}

// PermissionRequired allows only users holding the permission past.
func PermissionRequired(checker PermissionChecker, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c, "authentication required")
			return
		}

		allowed, err := checker.HasPermission(c.Request.Context(), user, permission)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrorCodeForbidden, apperrors.ErrPermissionDenied.Error()))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user from the gin context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil
	}

	return user
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message))
}
