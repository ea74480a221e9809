// Package application defines the core domain type for tracked job applications.
package application

import "time"

// Conventional status values. The status column is free text with no
// enforced transition graph; these are the values the CLI suggests.
const (
	StatusApplied   = "applied"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusRejected  = "rejected"
	StatusGhosted   = "ghosted"
	StatusWithdrawn = "withdrawn"
)

// Application represents a single tracked job application.
type Application struct {
	ID      int64  `json:"id"` // Assigned by the store, never reused
	Company string `json:"company"`
	Role    string `json:"role"`
	Source  string `json:"source,omitempty"` // Where the job was found (LinkedIn, referral, ...)
	Status  string `json:"status"`
	Notes   string `json:"notes,omitempty"`

	// Timestamps (UTC). CreatedAt is set once at creation; UpdatedAt is
	// refreshed on every mutation, so CreatedAt <= UpdatedAt always.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
