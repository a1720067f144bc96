package shared

import (
	"time"

	"github.com/google/uuid"
)

type SectionSnapshot struct {
	ID            uuid.UUID
	Label         string
	MaxCapacity   int32
	EnrolledCount int32
	Status        string
}

type EnrollmentSnapshot struct {
	ID                uuid.UUID
	SectionID         uuid.UUID
	Plan              string
	PaymentStatus     string
	ExternalSessionID string
	WaitlistPosition  *int32
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}
