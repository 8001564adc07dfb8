package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petessence/clinic-api/internal/core/domain"
)

// ctxActor extracts the identity claims injected by the Auth middleware
// and fast-fails before any service call: a missing role means the
// middleware never ran or the token carried no usable identity.
func ctxActor(c echo.Context) (userID string, role domain.Role, err error) {
	roleStr, _ := c.Get("role").(string)
	if roleStr == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(string)
	return userID, domain.Role(roleStr), nil
}
