package auth

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/sudo-init-do/jobhub/internal/storage"
	"github.com/sudo-init-do/jobhub/internal/user"
)

// Notifier schedules fire-and-forget notifications. Failures are logged,
// never surfaced to the client.
type Notifier interface {
	WelcomeEmail(userID, email, name string) error
}

type Handler struct {
	Users    user.Repository
	Storage  storage.Uploader
	Notify   Notifier
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(users user.Repository, uploader storage.Uploader, notify Notifier, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		Users:    users,
		Storage:  uploader,
		Notify:   notify,
		Secret:   secret,
		TokenTTL: tokenTTL,
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ===== Register =====
// POST /register (multipart: fullname, email, phoneNumber, password, role, file?)
func (h *Handler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	fullname := strings.TrimSpace(c.FormValue("fullname"))
	email := strings.TrimSpace(c.FormValue("email"))
	phoneNumber := strings.TrimSpace(c.FormValue("phoneNumber"))
	password := c.FormValue("password")
	role := strings.TrimSpace(c.FormValue("role"))

	if fullname == "" || email == "" || phoneNumber == "" || password == "" || role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "All fields are required"})
	}
	if !emailPattern.MatchString(email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid email format"})
	}
	if !user.ValidRole(role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Role must be either student or recruiter"})
	}

	if _, err := h.Users.FindByEmail(ctx, email); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User already exists with this email"})
	} else if !errors.Is(err, user.ErrNotFound) {
		log.Printf("register: email lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server error"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register: hash failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server error"})
	}

	// Upload must succeed before the record exists, so a storage outage
	// never leaves a user pointing at a photo that was never stored.
	var photoURL string
	if fh, ferr := c.FormFile("file"); ferr == nil && fh != nil {
		url, uerr := storage.UploadMultipart(ctx, h.Storage, fh)
		if uerr != nil {
			log.Printf("register: photo upload failed: %v", uerr)
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server error"})
		}
		photoURL = url
	}

	u := &user.User{
		ID:          uuid.New().String(),
		Fullname:    fullname,
		Email:       email,
		PhoneNumber: phoneNumber,
		Password:    string(hashed),
		Role:        role,
		Profile: user.Profile{
			Skills:       []string{},
			ProfilePhoto: photoURL,
		},
		CreatedAt: time.Now(),
	}

	if err := h.Users.Create(ctx, u); err != nil {
		// Two registrations can race past the lookup above; the unique
		// constraint settles it.
		if errors.Is(err, user.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User already exists with this email"})
		}
		log.Printf("register: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server error"})
	}

	if h.Notify != nil {
		if err := h.Notify.WelcomeEmail(u.ID, u.Email, u.Fullname); err != nil {
			log.Printf("register: welcome email enqueue failed: %v", err)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": "Account registered successfully"})
}
