package response

import (
	"time"

	"enroll-ledger/internal/usecase/commands"
	"enroll-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	SessionID    string `json:"sessionId"`
	RedirectURL  string `json:"redirectUrl"`
	Deduplicated bool   `json:"deduplicated"`
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID:    result.SessionID,
		RedirectURL:  result.RedirectURL,
		Deduplicated: result.Deduplicated,
	}
}

type ReconcileResponse struct {
	Outcome          string    `json:"outcome"`
	EnrollmentID     uuid.UUID `json:"enrollmentId"`
	SectionID        uuid.UUID `json:"sectionId"`
	WaitlistPosition *int32    `json:"waitlistPosition,omitempty"`
}

func FromReconcileResult(result *commands.ReconcileResult) *ReconcileResponse {
	return &ReconcileResponse{
		Outcome:          string(result.Outcome),
		EnrollmentID:     result.EnrollmentID,
		SectionID:        result.SectionID,
		WaitlistPosition: result.WaitlistPosition,
	}
}

type PromoteResponse struct {
	EnrollmentID     uuid.UUID `json:"enrollmentId"`
	SectionID        uuid.UUID `json:"sectionId"`
	PromotedEmail    *string   `json:"promotedEmail,omitempty"`
	NewEnrolledCount int32     `json:"newEnrolledCount"`
}

func FromPromoteResult(result *commands.PromoteResult) *PromoteResponse {
	return &PromoteResponse{
		EnrollmentID:     result.EnrollmentID,
		SectionID:        result.SectionID,
		PromotedEmail:    result.PromotedEmail,
		NewEnrolledCount: result.NewEnrolledCount,
	}
}

type WaitlistEntryResponse struct {
	EnrollmentID uuid.UUID `json:"enrollmentId"`
	SectionID    uuid.UUID `json:"sectionId"`
	Email        *string   `json:"email,omitempty"`
	Plan         string    `json:"plan"`
	Position     int32     `json:"position"`
	EnrolledAt   time.Time `json:"enrolledAt"`
}

type WaitlistResponse struct {
	Entries []*WaitlistEntryResponse `json:"entries"`
}

func FromWaitlistEntries(entries []*queries.WaitlistEntryView) *WaitlistResponse {
	out := make([]*WaitlistEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &WaitlistEntryResponse{
			EnrollmentID: e.EnrollmentID,
			SectionID:    e.SectionID,
			Email:        e.Email,
			Plan:         e.Plan,
			Position:     e.Position,
			EnrolledAt:   e.EnrolledAt,
		})
	}
	return &WaitlistResponse{Entries: out}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
