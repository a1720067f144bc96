//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"enroll-ledger/internal/handler/api"
	reqdto "enroll-ledger/internal/handler/dto/request"
	resdto "enroll-ledger/internal/handler/dto/response"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/commands"
	"enroll-ledger/internal/usecase/queries"
	"enroll-ledger/tests/common/httptest"
	"enroll-ledger/tests/common/testutil"
	commandsmock "enroll-ledger/tests/mock/commands"
	queriesmock "enroll-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockCtrl             *gomock.Controller
	mockSectionCommands  *commandsmock.MockSectionCommands
	mockWaitlistCommands *commandsmock.MockWaitlistCommands
	mockWaitlistQueries  *queriesmock.MockWaitlistQueries
	handler              *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSectionCommands = commandsmock.NewMockSectionCommands(s.mockCtrl)
	s.mockWaitlistCommands = commandsmock.NewMockWaitlistCommands(s.mockCtrl)
	s.mockWaitlistQueries = queriesmock.NewMockWaitlistQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockSectionCommands, s.mockWaitlistCommands, s.mockWaitlistQueries)

	s.router.POST("/admin/sections", s.handler.CreateSection)
	s.router.GET("/admin/sections/:id/waitlist", s.handler.ListWaitlist)
	s.router.POST("/admin/enrollments/:id/promote", s.handler.PromoteEnrollment)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestCreateSection() {
	url := "/admin/sections"
	reqBody := reqdto.CreateSectionRequest{Label: "CS101 Autumn Morning", MaxCapacity: 30}

	s.Run("success: returns 201 Created with the new ID", func() {
		id := uuid.New()
		s.mockSectionCommands.EXPECT().CreateSection(gomock.Any(), reqBody).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: label (required)", mutate: testutil.Field("label", nil)},
			{name: "empty label", mutate: testutil.Field("label", "")},
			{name: "negative capacity", mutate: testutil.Field("max_capacity", -1)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name        string
			returnErr   error
			expectCode  int
			expectError string
		}{
			{name: "invalid definition", returnErr: commands.ErrSectionValidation, expectCode: http.StatusBadRequest, expectError: "Invalid section definition"},
			{name: "duplicate label", returnErr: commands.ErrDuplicateSection, expectCode: http.StatusConflict, expectError: "Section already exists"},
			{name: "unexpected failure", returnErr: errs.New("database error"), expectCode: http.StatusInternalServerError, expectError: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockSectionCommands.EXPECT().CreateSection(gomock.Any(), reqBody).
					Return(uuid.Nil, tc.returnErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectError)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestListWaitlist() {
	s.Run("success: returns entries in promotion order", func() {
		sectionID := uuid.New()
		entries := []*queries.WaitlistEntryView{
			{EnrollmentID: uuid.New(), SectionID: sectionID, Plan: "FULL", Position: 1, EnrolledAt: time.Now()},
			{EnrollmentID: uuid.New(), SectionID: sectionID, Plan: "DEPOSIT", Position: 2, EnrolledAt: time.Now()},
		}
		s.mockWaitlistQueries.EXPECT().ListBySection(gomock.Any(), sectionID).Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/admin/sections/%s/waitlist", sectionID), nil, "")

		var response resdto.WaitlistResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Entries, 2)
		s.Equal(int32(1), response.Entries[0].Position)
		s.Equal(int32(2), response.Entries[1].Position)
	})

	s.Run("error: 400 on malformed section ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/sections/not-a-uuid/waitlist", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid section ID format")
	})

	s.Run("error: 404 on unknown section", func() {
		sectionID := uuid.New()
		s.mockWaitlistQueries.EXPECT().ListBySection(gomock.Any(), sectionID).
			Return(nil, queries.ErrSectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/admin/sections/%s/waitlist", sectionID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Section not found")
	})
}

func (s *AdminHandlerTestSuite) TestPromoteEnrollment() {
	s.Run("success: returns the promoted enrollment", func() {
		enrollmentID := uuid.New()
		sectionID := uuid.New()
		email := "student@example.com"
		s.mockWaitlistCommands.EXPECT().Promote(gomock.Any(), enrollmentID).
			Return(&commands.PromoteResult{
				EnrollmentID:     enrollmentID,
				SectionID:        sectionID,
				PromotedEmail:    &email,
				NewEnrolledCount: 2,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			fmt.Sprintf("/admin/enrollments/%s/promote", enrollmentID), nil, "")

		var response resdto.PromoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(enrollmentID, response.EnrollmentID)
		s.Equal(sectionID, response.SectionID)
		s.Require().NotNil(response.PromotedEmail)
		s.Equal(email, *response.PromotedEmail)
		s.Equal(int32(2), response.NewEnrolledCount)
	})

	s.Run("error: 400 on malformed enrollment ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/enrollments/not-a-uuid/promote", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid enrollment ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name        string
			returnErr   error
			expectCode  int
			expectError string
		}{
			{name: "unknown enrollment", returnErr: commands.ErrEnrollmentNotFound, expectCode: http.StatusNotFound, expectError: "Enrollment not found"},
			{name: "not waitlisted", returnErr: commands.ErrNotWaitlisted, expectCode: http.StatusConflict, expectError: "Enrollment is not waitlisted"},
			{name: "section full", returnErr: commands.ErrSectionFull, expectCode: http.StatusConflict, expectError: "Section is at capacity"},
			{name: "unexpected failure", returnErr: errs.New("database error"), expectCode: http.StatusInternalServerError, expectError: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				enrollmentID := uuid.New()
				s.mockWaitlistCommands.EXPECT().Promote(gomock.Any(), enrollmentID).
					Return(nil, tc.returnErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
					fmt.Sprintf("/admin/enrollments/%s/promote", enrollmentID), nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectError)
			})
		}
	})
}
