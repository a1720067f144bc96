//go:build e2e

package enrollment_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	reqdto "enroll-ledger/internal/handler/dto/request"
	resdto "enroll-ledger/internal/handler/dto/response"
	"enroll-ledger/tests/common/authtest"
	"enroll-ledger/tests/common/dbtest"
	"enroll-ledger/tests/common/httptest"
	"enroll-ledger/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type EnrollmentE2ETestSuite struct {
	e2e.SharedSuite
}

func TestEnrollmentE2ESuite(t *testing.T) {
	suite.Run(t, new(EnrollmentE2ETestSuite))
}

func (s *EnrollmentE2ETestSuite) webhook(sessionID string, sectionID uuid.UUID, plan string) *resdto.ReconcileResponse {
	s.T().Helper()

	body := reqdto.PaymentWebhookRequest{
		ExternalSessionID: sessionID,
		SectionID:         sectionID,
		Plan:              plan,
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/payment", body, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp resdto.ReconcileResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &resp)
	return &resp
}

func (s *EnrollmentE2ETestSuite) sectionCounts(sectionID uuid.UUID) (enrolled int32, max int32, status string) {
	s.T().Helper()

	err := s.DB.QueryRow(context.Background(),
		"SELECT enrolled_count, max_capacity, status FROM sections WHERE id = $1", sectionID).
		Scan(&enrolled, &max, &status)
	s.Require().NoError(err)
	return enrolled, max, status
}

func (s *EnrollmentE2ETestSuite) queuedJobCount(topic string) int {
	s.T().Helper()

	var n int
	err := s.DB.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1 AND status = 'queued'", topic).Scan(&n)
	s.Require().NoError(err)
	return n
}

func (s *EnrollmentE2ETestSuite) TestPaymentWebhook() {
	s.Run("success: fills seats up to capacity then waitlists in order", func() {
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS101 Autumn Morning", 2)

		first := s.webhook("sess_seat_1", sectionID, "FULL")
		s.Equal("CONFIRMED", first.Outcome)
		s.Nil(first.WaitlistPosition)

		second := s.webhook("sess_seat_2", sectionID, "DEPOSIT")
		s.Equal("CONFIRMED", second.Outcome)

		third := s.webhook("sess_seat_3", sectionID, "FULL")
		s.Equal("WAITLISTED", third.Outcome)
		s.Require().NotNil(third.WaitlistPosition)
		s.Equal(int32(1), *third.WaitlistPosition)

		fourth := s.webhook("sess_seat_4", sectionID, "FULL")
		s.Equal("WAITLISTED", fourth.Outcome)
		s.Require().NotNil(fourth.WaitlistPosition)
		s.Equal(int32(2), *fourth.WaitlistPosition)

		enrolled, max, status := s.sectionCounts(sectionID)
		s.Equal(int32(2), enrolled)
		s.LessOrEqual(enrolled, max)
		s.Equal("FULL", status)

		s.Equal(2, s.queuedJobCount("enrollment.confirmed"))
		s.Equal(2, s.queuedJobCount("enrollment.waitlisted"))
	})

	s.Run("success: redelivered webhook reports the recorded outcome once", func() {
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS101 Autumn Morning", 3)

		first := s.webhook("sess_redelivered", sectionID, "FULL")
		s.Equal("CONFIRMED", first.Outcome)

		replay := s.webhook("sess_redelivered", sectionID, "FULL")
		s.Equal("ALREADY_PROCESSED", replay.Outcome)
		s.Equal(first.EnrollmentID, replay.EnrollmentID)

		var rows int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM enrollments WHERE external_session_id = $1", "sess_redelivered").Scan(&rows)
		s.Require().NoError(err)
		s.Equal(1, rows)

		enrolled, _, _ := s.sectionCounts(sectionID)
		s.Equal(int32(1), enrolled)
		s.Equal(1, s.queuedJobCount("enrollment.confirmed"))
	})

	s.Run("success: concurrent webhooks never overfill a seat", func() {
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS102 Autumn Afternoon", 1)

		outcomes := make([]string, 2)
		var wg sync.WaitGroup
		for i := range outcomes {
			wg.Add(1)
			go func() {
				defer wg.Done()
				body := reqdto.PaymentWebhookRequest{
					ExternalSessionID: fmt.Sprintf("sess_race_%d", i),
					SectionID:         sectionID,
					Plan:              "FULL",
				}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/payment", body, "")
				if w.Code != http.StatusOK {
					return
				}
				var resp resdto.ReconcileResponse
				httptest.DecodeResponseBody(s.T(), w.Body, &resp)
				outcomes[i] = resp.Outcome
			}()
		}
		wg.Wait()

		s.ElementsMatch([]string{"CONFIRMED", "WAITLISTED"}, outcomes)

		enrolled, max, _ := s.sectionCounts(sectionID)
		s.Equal(int32(1), enrolled)
		s.LessOrEqual(enrolled, max)

		var pos int32
		err := s.DB.QueryRow(context.Background(),
			"SELECT waitlist_position FROM enrollments WHERE section_id = $1 AND payment_status = 'WAITLISTED'", sectionID).Scan(&pos)
		s.Require().NoError(err)
		s.Equal(int32(1), pos)
	})

	s.Run("error: 404 Not Found on unknown section", func() {
		body := reqdto.PaymentWebhookRequest{
			ExternalSessionID: "sess_no_section",
			SectionID:         uuid.New(),
			Plan:              "FULL",
		}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/payment", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Section not found")
	})
}

func (s *EnrollmentE2ETestSuite) TestPromoteEnrollment() {
	s.Run("success: promotes the head of the waitlist and renumbers the rest", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", "operator")
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS201 Spring Evening", 2)

		s.webhook("sess_promo_1", sectionID, "FULL")
		head := s.webhook("sess_promo_2", sectionID, "FULL")
		tail := s.webhook("sess_promo_3", sectionID, "DEPOSIT")
		s.Equal("WAITLISTED", head.Outcome)
		s.Equal("WAITLISTED", tail.Outcome)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/enrollments/%s/promote", head.EnrollmentID), nil, token)

		var promoted resdto.PromoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &promoted)
		s.Equal(head.EnrollmentID, promoted.EnrollmentID)
		s.Equal(sectionID, promoted.SectionID)
		s.Equal(int32(2), promoted.NewEnrolledCount)

		enrolled, _, status := s.sectionCounts(sectionID)
		s.Equal(int32(2), enrolled)
		s.Equal("FULL", status)

		listRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/admin/sections/%s/waitlist", sectionID), nil, token)

		var waitlist resdto.WaitlistResponse
		httptest.AssertSuccessResponse(s.T(), listRec, http.StatusOK, &waitlist)
		s.Require().Len(waitlist.Entries, 1)
		s.Equal(tail.EnrollmentID, waitlist.Entries[0].EnrollmentID)
		s.Equal(int32(1), waitlist.Entries[0].Position)

		s.Equal(1, s.queuedJobCount("enrollment.promoted"))
	})
}

func (s *EnrollmentE2ETestSuite) TestWaitlistRepair() {
	s.Run("success: listing renumbers gapped positions back to 1..N", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", "operator")
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS501 Autumn Lab", 1)

		s.webhook("sess_gap_0", sectionID, "FULL")
		head := s.webhook("sess_gap_1", sectionID, "FULL")
		tail := s.webhook("sess_gap_2", sectionID, "DEPOSIT")
		s.Equal("WAITLISTED", head.Outcome)
		s.Equal("WAITLISTED", tail.Outcome)

		_, err := s.DB.Exec(context.Background(),
			"UPDATE enrollments SET waitlist_position = 9 WHERE id = $1", tail.EnrollmentID)
		s.Require().NoError(err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/admin/sections/%s/waitlist", sectionID), nil, token)

		var waitlist resdto.WaitlistResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &waitlist)
		s.Require().Len(waitlist.Entries, 2)
		s.Equal(head.EnrollmentID, waitlist.Entries[0].EnrollmentID)
		s.Equal(int32(1), waitlist.Entries[0].Position)
		s.Equal(tail.EnrollmentID, waitlist.Entries[1].EnrollmentID)
		s.Equal(int32(2), waitlist.Entries[1].Position)

		var stored int32
		err = s.DB.QueryRow(context.Background(),
			"SELECT waitlist_position FROM enrollments WHERE id = $1", tail.EnrollmentID).Scan(&stored)
		s.Require().NoError(err)
		s.Equal(int32(2), stored)
	})

	s.Run("success: a row that lost its position rejoins at the back", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", "operator")
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS502 Winter Lab", 1)

		s.webhook("sess_null_0", sectionID, "FULL")
		head := s.webhook("sess_null_1", sectionID, "FULL")
		tail := s.webhook("sess_null_2", sectionID, "FULL")

		_, err := s.DB.Exec(context.Background(),
			"UPDATE enrollments SET waitlist_position = NULL WHERE id = $1", head.EnrollmentID)
		s.Require().NoError(err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/admin/sections/%s/waitlist", sectionID), nil, token)

		var waitlist resdto.WaitlistResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &waitlist)
		s.Require().Len(waitlist.Entries, 2)
		s.Equal(tail.EnrollmentID, waitlist.Entries[0].EnrollmentID)
		s.Equal(int32(1), waitlist.Entries[0].Position)
		s.Equal(head.EnrollmentID, waitlist.Entries[1].EnrollmentID)
		s.Equal(int32(2), waitlist.Entries[1].Position)
	})
}

func (s *EnrollmentE2ETestSuite) TestPromoteConflicts() {
	s.Run("error: 409 Conflict when the section has no free seat", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", "operator")
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS301 Winter Lab", 1)

		s.webhook("sess_full_1", sectionID, "FULL")
		head := s.webhook("sess_full_2", sectionID, "FULL")
		s.Equal("WAITLISTED", head.Outcome)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/enrollments/%s/promote", head.EnrollmentID), nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Section is at capacity")

		enrolled, max, _ := s.sectionCounts(sectionID)
		s.Equal(int32(1), enrolled)
		s.LessOrEqual(enrolled, max)
	})

	s.Run("error: 409 Conflict when the enrollment already holds a seat", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", "operator")
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS301 Winter Lab", 2)

		confirmed := s.webhook("sess_confirmed", sectionID, "FULL")
		s.Equal("CONFIRMED", confirmed.Outcome)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/enrollments/%s/promote", confirmed.EnrollmentID), nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Enrollment is not waitlisted")
	})

	s.Run("error: 404 Not Found on unknown enrollment", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", "operator")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/enrollments/%s/promote", uuid.New()), nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Enrollment not found")
	})
}

func (s *EnrollmentE2ETestSuite) TestAdminSectionManagement() {
	s.Run("success: admin creates a section and it appears in the catalog", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		body := reqdto.CreateSectionRequest{Label: "CS401 Summer Seminar", MaxCapacity: 5}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/sections", body, token)

		var created resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.NotEqual(uuid.Nil, created.ID)

		getRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/sections/"+created.ID.String(), nil, "")

		var section resdto.SectionResponse
		httptest.AssertSuccessResponse(s.T(), getRec, http.StatusOK, &section)
		s.Equal("CS401 Summer Seminar", section.Label)
		s.Equal(int32(5), section.SeatsLeft)
		s.Equal("OPEN", section.Status)
	})

	s.Run("error: 409 Conflict on duplicate label", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
		dbtest.CreateTestSection(s.T(), s.DB, "CS401 Summer Seminar", 5)

		body := reqdto.CreateSectionRequest{Label: "CS401 Summer Seminar", MaxCapacity: 5}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/sections", body, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Section already exists")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		body := reqdto.CreateSectionRequest{Label: "CS401 Summer Seminar", MaxCapacity: 5}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/sections", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 403 Forbidden for operators on admin-only routes", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "operator@example.com", "operator")

		body := reqdto.CreateSectionRequest{Label: "CS401 Summer Seminar", MaxCapacity: 5}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/sections", body, token)
		s.Equal(http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("error: 403 Forbidden for viewers on operator routes", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer@example.com", "viewer")
		sectionID := dbtest.CreateTestSection(s.T(), s.DB, "CS101 Autumn Morning", 2)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/admin/sections/%s/waitlist", sectionID), nil, token)
		s.Equal(http.StatusForbidden, w.Code, w.Body.String())
	})
}
