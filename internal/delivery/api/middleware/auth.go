package middleware

import (
	"strings"

	"saferoute/config"
	"saferoute/internal/delivery/api/response"
	deliverycontext "saferoute/internal/delivery/context"
	"saferoute/internal/domain/constants"
	domainerrors "saferoute/internal/domain/errors"
	"saferoute/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware verifies bearer tokens issued by the hosted auth provider.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	enabled  bool
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Config   *config.Config
	Verifier service.TokenVerifier `optional:"true"`
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	enabled := params.Config.Auth != nil && params.Config.Auth.Enabled && params.Verifier != nil

	return &AuthMiddleware{verifier: params.Verifier, enabled: enabled}
}

// Authenticate validates the access token and stores its subject as the session owner.
// It passes every request through when auth is disabled.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get(constants.HeaderAuthorization)
		if authHeader == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.verifier.ValidateToken(tokenString)
		if err != nil {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		deliverycontext.SetUserID(c, claims.Subject)

		return next(c)
	}
}
