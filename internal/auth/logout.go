package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ===== Logout =====
// POST /logout. Idempotent: clearing an absent session is still a success.
func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Logged out successfully"})
}
