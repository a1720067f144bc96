package section

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel       = errors.New("section label cannot be empty")
	ErrLabelTooLong     = errors.New("section label is too long (max 255 characters)")
	ErrNegativeCapacity = errors.New("max capacity cannot be negative")
	ErrCountOutOfRange  = errors.New("enrolled count must be between 0 and max capacity")
	ErrAtCapacity       = errors.New("section is at capacity")
)

const MaxLabelLength = 255

// Section is a single scheduled offering with a fixed seat capacity.
// enrolledCount only ever moves up; freeing a seat is a manual operation
// outside this domain.
type Section struct {
	id            uuid.UUID
	label         string
	maxCapacity   int32
	enrolledCount int32
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewSection(label string, maxCapacity int32) (*Section, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if len(label) > MaxLabelLength {
		return nil, ErrLabelTooLong
	}
	if maxCapacity < 0 {
		return nil, ErrNegativeCapacity
	}

	return &Section{
		id:            uuid.New(),
		label:         label,
		maxCapacity:   maxCapacity,
		enrolledCount: 0,
		status:        StatusFor(0, maxCapacity),
	}, nil
}

func ReconstructSection(
	id uuid.UUID,
	label string,
	maxCapacity, enrolledCount int32,
	status Status,
	createdAt, updatedAt time.Time,
) (*Section, error) {
	if enrolledCount < 0 || enrolledCount > maxCapacity {
		return nil, ErrCountOutOfRange
	}
	return &Section{
		id:            id,
		label:         label,
		maxCapacity:   maxCapacity,
		enrolledCount: enrolledCount,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// HasCapacity reports whether one more confirmed seat fits.
func (s *Section) HasCapacity() bool {
	return s.enrolledCount < s.maxCapacity
}

// TakeSeat increments the occupancy and flips the status to FULL the
// instant the last seat is taken. The caller must hold the section row lock.
func (s *Section) TakeSeat() error {
	if !s.HasCapacity() {
		return ErrAtCapacity
	}
	s.enrolledCount++
	s.status = StatusFor(s.enrolledCount, s.maxCapacity)
	return nil
}

func (s *Section) SeatsLeft() int32 {
	return s.maxCapacity - s.enrolledCount
}

func (s *Section) ID() uuid.UUID        { return s.id }
func (s *Section) Label() string        { return s.label }
func (s *Section) MaxCapacity() int32   { return s.maxCapacity }
func (s *Section) EnrolledCount() int32 { return s.enrolledCount }
func (s *Section) Status() Status       { return s.status }
func (s *Section) CreatedAt() time.Time { return s.createdAt }
func (s *Section) UpdatedAt() time.Time { return s.updatedAt }
