package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/piresc/fleettrack/internal/pkg/jwt"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/piresc/fleettrack/internal/utils"
)

const scopeKey = "scope"

// ScopeMiddleware verifies the bearer token and stores the operator scope on
// the echo context. Requests without a company or sector scope get 401.
func ScopeMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return scopeMiddleware(config, false)
}

// WebSocketScopeMiddleware also accepts the token in the "token" query
// parameter, since browsers cannot set headers on websocket upgrades
func WebSocketScopeMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return scopeMiddleware(config, true)
}

func scopeMiddleware(config models.JWTConfig, allowQuery bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok && allowQuery {
				tokenString = c.QueryParam("token")
				ok = tokenString != ""
			}
			if !ok {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid session")
			}

			scope := claims.Scope()
			c.Set(scopeKey, scope)
			c.Set("user_id", scope.UserID)
			SetUserID(c, scope.UserID)

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetScope returns the scope stored by ScopeMiddleware
func GetScope(c echo.Context) (models.Scope, bool) {
	scope, ok := c.Get(scopeKey).(models.Scope)
	return scope, ok
}

// SetScope stores scope on the context. Handlers tests use it to skip token verification.
func SetScope(c echo.Context, scope models.Scope) {
	c.Set(scopeKey, scope)
	c.Set("user_id", scope.UserID)
}
