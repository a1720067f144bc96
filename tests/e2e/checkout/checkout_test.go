//go:build e2e

package checkout_test

import (
	"net/http"
	"strings"
	"testing"

	reqdto "enroll-ledger/internal/handler/dto/request"
	resdto "enroll-ledger/internal/handler/dto/response"
	"enroll-ledger/tests/common/dbtest"
	"enroll-ledger/tests/common/httptest"
	"enroll-ledger/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CheckoutE2ETestSuite struct {
	e2e.SharedSuite
}

func TestCheckoutE2ESuite(t *testing.T) {
	suite.Run(t, new(CheckoutE2ETestSuite))
}

func (s *CheckoutE2ETestSuite) initiate(sectionID uuid.UUID, plan string) *resdto.CheckoutResponse {
	s.T().Helper()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/checkout",
		reqdto.CheckoutRequest{SectionID: sectionID, Plan: plan}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp resdto.CheckoutResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &resp)
	return &resp
}

func (s *CheckoutE2ETestSuite) TestInitiateCheckout() {
	url := "/api/checkout"

	s.Run("success: returns a provider redirect with the plan price", func() {
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS101 Autumn Morning", 3)

		resp := s.initiate(sectionID, "FULL")
		s.False(resp.Deduplicated)
		s.NotEmpty(resp.SessionID)
		s.True(strings.HasPrefix(resp.RedirectURL, s.Config.Checkout.ProviderBaseURL+"/checkout/"), resp.RedirectURL)
		s.Contains(resp.RedirectURL, "amount=120000")
	})

	s.Run("success: repeat submissions inside the window share one session", func() {
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS101 Autumn Morning", 3)

		first := s.initiate(sectionID, "DEPOSIT")
		second := s.initiate(sectionID, "DEPOSIT")
		if !second.Deduplicated {
			// The two calls straddled a dedup-window boundary; the next one
			// lands in the same window as the second.
			first = second
			second = s.initiate(sectionID, "DEPOSIT")
		}

		s.True(second.Deduplicated)
		s.Equal(first.SessionID, second.SessionID)
		s.Equal(first.RedirectURL, second.RedirectURL)
	})

	s.Run("error: 409 Conflict once the section is full", func() {
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS301 Winter Lab", 1)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/payment",
			reqdto.PaymentWebhookRequest{ExternalSessionID: "sess_fills_lab", SectionID: sectionID, Plan: "FULL"}, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			reqdto.CheckoutRequest{SectionID: sectionID, Plan: "FULL"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Section is at capacity")
	})

	s.Run("error: 404 Not Found on unknown section", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			reqdto.CheckoutRequest{SectionID: uuid.New(), Plan: "FULL"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Section not found")
	})

	s.Run("error: 400 Bad Request on unknown plan", func() {
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS101 Autumn Morning", 3)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			map[string]any{"section_id": sectionID, "plan": "INSTALLMENT"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
