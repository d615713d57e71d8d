package middleware

import (
	"net/http"
	"slices"
	"strings"

	deliverycontext "conectone/internal/delivery/context"
	"conectone/internal/delivery/http/response"
	"conectone/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Failure(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Failure(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Failure(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(string(deliverycontext.KeyUserID), claims.UserID)
		c.Set(string(deliverycontext.KeyRoles), claims.Roles)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller carries a role. It must
// be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(string(deliverycontext.KeyRoles)).([]string)
			if !ok {
				return response.Failure(c, http.StatusForbidden, "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Failure(c, http.StatusForbidden, "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// CallerID returns the authenticated user ID stored by Authenticate.
func CallerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(deliverycontext.KeyUserID)).(uuid.UUID)

	return id, ok
}
