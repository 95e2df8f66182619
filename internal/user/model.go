package user

import (
	"encoding/json"
	"time"
)

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

// ValidRole reports whether role is one of the portal's account types.
// Role is fixed at registration and never changes afterwards.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleRecruiter
}

// Profile is the canonical home of all profile fields. Reads and writes
// both go through it; there are no top-level duplicates.
type Profile struct {
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	ProfilePhoto string   `json:"profilePhoto,omitempty"`
	Resume       string   `json:"resume,omitempty"`
}

// JobListing is a reporting fact attached to a user by out-of-band
// matching processes. Only analytics reads it.
type JobListing struct {
	Title    string `json:"title,omitempty"`
	Industry string `json:"industry"`
}

type User struct {
	ID          string  `json:"id"`
	Fullname    string  `json:"fullname"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Password    string  `json:"-"` // never return
	Role        string  `json:"role"`
	Profile     Profile `json:"profile"`

	// Reporting facts populated by out-of-scope processes; the record
	// service never mutates them.
	Applications   []json.RawMessage `json:"-"`
	JobListings    []JobListing      `json:"-"`
	InterviewCalls []json.RawMessage `json:"-"`
	MatchedSkills  []string          `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
