package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/sudo-init-do/jobhub/internal/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ===== Login =====
// POST /login
func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request"})
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "All fields are required"})
	}

	// Unknown email and wrong password answer identically so callers
	// can't probe which addresses have accounts.
	u, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Incorrect credentials"})
		}
		log.Printf("login: email lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server error"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Incorrect credentials"})
	}

	if req.Role != u.Role {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Account doesn't exist with the current role!"})
	}

	signed, err := SignSession(h.Secret, u.ID, u.Role, h.TokenTTL)
	if err != nil {
		log.Printf("login: token generation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server error"})
	}

	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    signed,
		Path:     "/",
		MaxAge:   int(h.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Welcome " + u.Fullname,
		"user":    u,
	})
}
