// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"notaspro/internal/domain/entity"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KeyCurrentUser is the echo.Context key holding the authenticated credential.
const KeyCurrentUser = "currentUser"

// AuthMiddleware resolves bearer tokens to live credentials and gates
// routes by role.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the Authorization header and stores the resolved
// credential on the context. Role and active status come from the store,
// so revocation takes effect on the next request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is not a bearer token")
		}

		user, err := m.authUC.CurrentUser(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(KeyCurrentUser, user)

		return next(c)
	}
}

// RequireRole is a middleware factory gating a route to the allowed role
// set. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(allowed entity.RoleNames) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(KeyCurrentUser).(*entity.User)
			if !ok {
				return domainerrors.ErrRoleForbidden.WrapMessage("credential missing from context")
			}

			if !user.HasRole(allowed) {
				return domainerrors.ErrRoleForbidden.WrapMessage("role not in allowed set")
			}

			return next(c)
		}
	}
}

// CurrentUser returns the credential stored by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(KeyCurrentUser).(*entity.User)

	return user
}
