package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// ClaimsKey is where the middleware stores the parsed token claims.
	ClaimsKey = "auth_claims"
	// UserIDKey is where the middleware stores the authenticated uid.
	UserIDKey = "user_id"
	// UserRoleKey is where the middleware stores the authenticated role.
	UserRoleKey = "user_role"
)

// Middleware validates bearer tokens and populates the request context.
type Middleware struct {
	tokens  *TokenIssuer
	revoked *RevocationStore
	// Skipper reports whether the request bypasses authentication.
	Skipper func(c echo.Context) bool
}

func NewMiddleware(tokens *TokenIssuer, revoked *RevocationStore) *Middleware {
	return &Middleware{tokens: tokens, revoked: revoked}
}

// Authenticate is the echo middleware enforcing a valid, unrevoked token.
func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.Skipper != nil && m.Skipper(c) {
			return next(c)
		}

		token := extractToken(c.Request())
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization token")
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}
		if m.revoked.IsRevoked(claims.JTI) {
			return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		return next(c)
	}
}

// RequireRole restricts a route to the listed roles. Admins pass any check.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(UserRoleKey).(string)
			if role == RoleAdmin {
				return next(c)
			}
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
		}
	}
}

// UserIDFromContext returns the authenticated uid, if any.
func UserIDFromContext(c echo.Context) (string, bool) {
	uid, ok := c.Get(UserIDKey).(string)
	return uid, ok && uid != ""
}

// ClaimsFromContext returns the parsed token claims, if any.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ClaimsKey).(*Claims)
	return claims, ok
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
