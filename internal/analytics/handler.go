// Package analytics aggregates reporting facts across the whole user set.
// It is O(total records) with no pagination or windowing and is not meant
// for large datasets.
package analytics

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/jobhub/internal/user"
)

type Handler struct {
	Users user.Repository
}

func NewHandler(users user.Repository) *Handler {
	return &Handler{Users: users}
}

// GET /analytics
func (h *Handler) Analytics(c echo.Context) error {
	users, err := h.Users.ListAll(c.Request().Context())
	if err != nil {
		log.Printf("analytics: listing users failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Server error"})
	}

	applications := []json.RawMessage{}
	industryCount := map[string]int{}
	var totalSkills, matchedSkills, totalInterviews int

	for _, u := range users {
		applications = append(applications, u.Applications...)
		totalSkills += len(u.Profile.Skills)
		matchedSkills += len(u.MatchedSkills)
		totalInterviews += len(u.InterviewCalls)
		for _, listing := range u.JobListings {
			industryCount[listing.Industry]++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"applicationTrends": applications,
		"skillRelevance":    percent(matchedSkills, totalSkills),
		"industryDemand":    industryCount,
		"successRate":       percent(totalInterviews, len(applications)),
	})
}

// percent formats part/total as a two-decimal percentage string. Division
// by zero is passed through, so 0/0 reports the literal "NaN".
func percent(part, total int) string {
	return strconv.FormatFloat(float64(part)/float64(total)*100, 'f', 2, 64)
}
