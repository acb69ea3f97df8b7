package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AdminMiddleware guards the cache-management endpoints with an
// HMAC-signed bearer token carrying role=admin.
type AdminMiddleware struct {
	secret string
	logger *logrus.Logger
}

func NewAdminMiddleware(secret string, logger *logrus.Logger) *AdminMiddleware {
	return &AdminMiddleware{secret: secret, logger: logger}
}

func (m *AdminMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(m.secret), nil
			})
			if err != nil || !token.Valid {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path}).Warn("admin token validation failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || claims["role"] != "admin" {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}

			return next(c)
		}
	}
}
