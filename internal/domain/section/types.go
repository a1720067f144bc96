package section

type Status string

const (
	StatusOpen Status = "OPEN"
	StatusFull Status = "FULL"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusFull:
		return true
	default:
		return false
	}
}

// StatusFor keeps the status/count invariant in one place:
// FULL iff enrolledCount >= maxCapacity.
func StatusFor(enrolledCount, maxCapacity int32) Status {
	if enrolledCount >= maxCapacity {
		return StatusFull
	}
	return StatusOpen
}
