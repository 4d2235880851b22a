package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// sessionClaims is the authenticated identity injected by the Auth
// middleware.
type sessionClaims struct {
	UserID string
	Email  string
	Role   string
}

// ctxClaims extracts the auth claims and performs a fast-fail check before
// any service call: a missing user id or role means the middleware did not
// run or the token carried no identity.
func ctxClaims(c echo.Context) (sessionClaims, error) {
	claims := sessionClaims{}
	claims.UserID, _ = c.Get("user_id").(string)
	claims.Email, _ = c.Get("email").(string)
	claims.Role, _ = c.Get("role").(string)

	if claims.UserID == "" || claims.Role == "" {
		return sessionClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
