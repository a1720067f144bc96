package queries

import (
	"time"

	"github.com/google/uuid"
)

// SectionView represents read-optimized section data
type SectionView struct {
	ID            uuid.UUID `json:"id"`
	Label         string    `json:"label"`
	MaxCapacity   int32     `json:"max_capacity"`
	EnrolledCount int32     `json:"enrolled_count"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EnrollmentView represents read-optimized enrollment data
type EnrollmentView struct {
	ID                uuid.UUID `json:"id"`
	SectionID         uuid.UUID `json:"section_id"`
	Email             *string   `json:"email,omitempty"`
	Plan              string    `json:"plan"`
	PaymentStatus     string    `json:"payment_status"`
	ExternalSessionID string    `json:"external_session_id"`
	WaitlistPosition  *int32    `json:"waitlist_position,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// WaitlistEntryView is one row of a section's waitlist, in promotion order
type WaitlistEntryView struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	SectionID    uuid.UUID `json:"section_id"`
	Email        *string   `json:"email,omitempty"`
	Plan         string    `json:"plan"`
	Position     int32     `json:"position"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
