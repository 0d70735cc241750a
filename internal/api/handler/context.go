package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero user id means
// the middleware did not run or the token carried no usable identity.
func ctxIdentity(c echo.Context) (userID int, email string, err error) {
	userID, _ = c.Get("user_id").(int)
	if userID == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "token inválido")
	}

	email, _ = c.Get("email").(string)
	return userID, email, nil
}
