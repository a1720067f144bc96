package request

import (
	"strings"

	"enroll-ledger/internal/domain/enrollment"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	SectionID uuid.UUID `json:"section_id" binding:"required"`
	Plan      string    `json:"plan" binding:"required,oneof=FULL DEPOSIT"`
	Email     *string   `json:"email,omitempty" binding:"omitempty,email"`
}

func (r CheckoutRequest) ToDomain() (uuid.UUID, enrollment.Plan, error) {
	plan, err := enrollment.NewPlan(r.Plan)
	if err != nil {
		return uuid.Nil, "", err
	}
	return r.SectionID, plan, nil
}

type PaymentWebhookRequest struct {
	ExternalSessionID string    `json:"external_session_id" binding:"required"`
	SectionID         uuid.UUID `json:"section_id" binding:"required"`
	Plan              string    `json:"plan" binding:"required,oneof=FULL DEPOSIT"`
	Email             *string   `json:"email,omitempty" binding:"omitempty,email"`
}

func (r PaymentWebhookRequest) ToDomain() (string, uuid.UUID, enrollment.Plan, *string, error) {
	plan, err := enrollment.NewPlan(r.Plan)
	if err != nil {
		return "", uuid.Nil, "", nil, err
	}

	sessionID := strings.TrimSpace(r.ExternalSessionID)
	return sessionID, r.SectionID, plan, r.Email, nil
}
