package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"auth-graph/app/identity"
	"auth-graph/app/port"
)

// bearerPrefix is the only accepted Authorization scheme.
const bearerPrefix = "Bearer "

// IdentityMiddleware resolves the per-request identity context from the
// Authorization header. It runs before operation dispatch and never fails
// the request: an absent, malformed, expired or tampered token simply
// leaves the request anonymous.
type IdentityMiddleware struct {
	tokens port.TokenCodec
	logger *slog.Logger
}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware(tokens port.TokenCodec, logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		tokens: tokens,
		logger: logger.With("component", "identity_middleware"),
	}
}

// Resolve returns the middleware function. On successful verification the
// user id is attached to the request context; every verification failure
// is swallowed into the anonymous state.
func (m *IdentityMiddleware) Resolve() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return next(c)
			}

			userID, err := m.tokens.Verify(token)
			if err != nil {
				// Fail open to anonymous, not fail the request.
				m.logger.Debug("token verification failed", "error", err)
				return next(c)
			}

			req := c.Request()
			ctx := identity.WithUserID(req.Context(), userID)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

// extractBearerToken returns the candidate token from the Authorization
// header, or "" when the header is absent or uses another scheme.
func extractBearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(auth, bearerPrefix)
}
