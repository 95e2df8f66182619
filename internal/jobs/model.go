package jobs

import "time"

type Job struct {
	ID          string    `json:"id"`
	RecruiterID string    `json:"recruiterId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
