package http

import (
	"errors"
	"net/http"
	"strings"

	"courier/internal/core/domain/model/actor"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey holds the authenticated actor on the echo context.
const actorContextKey = "auth.actor"

// authClaims is the expected JWT payload: the platform user id and role.
type authClaims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token and stores the authenticated
// actor on the request context. Tokens are HMAC-signed; any parse or
// validation failure yields 401 without detail about which check failed.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return unauthorized(c)
			}

			claims := &authClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				return unauthorized(c)
			}

			act, err := actor.New(claims.UserID, actor.Role(claims.Role))
			if err != nil {
				return unauthorized(c)
			}

			c.Set(actorContextKey, act)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{
		Error:   "unauthorized",
		Message: "a valid bearer token is required",
	})
}

// actorFromContext retrieves the actor placed by AuthMiddleware.
func actorFromContext(c echo.Context) (actor.Actor, bool) {
	act, ok := c.Get(actorContextKey).(actor.Actor)
	return act, ok
}
