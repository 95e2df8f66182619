package jobs

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	Jobs Repository
}

func NewHandler(jobs Repository) *Handler {
	return &Handler{Jobs: jobs}
}

// CreateJob lets a recruiter post a new listing.
// POST /jobs
func (h *Handler) CreateJob(c echo.Context) error {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Unauthorized"})
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Industry    string `json:"industry"`
		Location    string `json:"location"`
		Salary      string `json:"salary"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request"})
	}
	if req.Title == "" || req.Industry == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Title and industry are required"})
	}

	job := &Job{
		ID:          uuid.New().String(),
		RecruiterID: uid,
		Title:       req.Title,
		Description: req.Description,
		Industry:    req.Industry,
		Location:    req.Location,
		Salary:      req.Salary,
		CreatedAt:   time.Now(),
	}
	if err := h.Jobs.Create(c.Request().Context(), job); err != nil {
		log.Printf("create job failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not create job"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Job posted successfully",
		"job":     job,
	})
}

// ListJobs returns all listings, newest first, optionally filtered by a
// keyword over title and description.
// GET /jobs?keyword=
func (h *Handler) ListJobs(c echo.Context) error {
	keyword := c.QueryParam("keyword")

	jobs, err := h.Jobs.List(c.Request().Context(), keyword)
	if err != nil {
		log.Printf("list jobs failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not load jobs"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "jobs": jobs})
}

// GetJob returns a single listing by id.
// GET /jobs/:id
func (h *Handler) GetJob(c echo.Context) error {
	id := c.Param("id")

	job, err := h.Jobs.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Job not found"})
		}
		log.Printf("get job failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not load job"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "job": job})
}
