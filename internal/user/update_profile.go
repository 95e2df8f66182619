package user

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/jobhub/internal/storage"
)

type ProfileHandler struct {
	Users   Repository
	Storage storage.Uploader
}

func NewProfileHandler(users Repository, uploader storage.Uploader) *ProfileHandler {
	return &ProfileHandler{Users: users, Storage: uploader}
}

// POST /profile/update (multipart: fullname, email, phoneNumber, bio,
// skills, profilePhoto?, resume?)
//
// Merge semantics: a scalar field is replaced only when a non-empty value
// arrives; omission keeps the stored value. Skills overwrite only when the
// parsed list is non-empty, so an empty skills field cannot clear stored
// skills. Uploads run sequentially; a failed upload aborts with a message
// naming the asset, without rolling back fields merged before it.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Unauthorized: no user identity"})
	}

	u, err := h.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User not found"})
		}
		log.Printf("update profile: lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Internal Server Error"})
	}

	if v := strings.TrimSpace(c.FormValue("fullname")); v != "" {
		u.Fullname = v
	}
	if v := strings.TrimSpace(c.FormValue("email")); v != "" {
		u.Email = v
	}
	if v := strings.TrimSpace(c.FormValue("phoneNumber")); v != "" {
		u.PhoneNumber = v
	}
	if v := strings.TrimSpace(c.FormValue("bio")); v != "" {
		u.Profile.Bio = v
	}
	if skills := SplitSkills(c.FormValue("skills")); len(skills) > 0 {
		u.Profile.Skills = skills
	}

	if fh, ferr := c.FormFile("profilePhoto"); ferr == nil && fh != nil {
		url, uerr := storage.UploadMultipart(ctx, h.Storage, fh)
		if uerr != nil {
			log.Printf("update profile: photo upload failed: %v", uerr)
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Profile photo upload failed"})
		}
		u.Profile.ProfilePhoto = url
	}
	if fh, ferr := c.FormFile("resume"); ferr == nil && fh != nil {
		url, uerr := storage.UploadMultipart(ctx, h.Storage, fh)
		if uerr != nil {
			log.Printf("update profile: resume upload failed: %v", uerr)
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Resume upload failed"})
		}
		u.Profile.Resume = url
	}

	if err := h.Users.Update(ctx, u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User already exists with this email"})
		}
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User not found"})
		}
		log.Printf("update profile: save failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Profile updated successfully",
		"user":    u,
	})
}

// SplitSkills parses the comma-delimited skills field into an ordered,
// trimmed list. Empty input yields nil; entries are not deduplicated.
func SplitSkills(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
