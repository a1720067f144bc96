//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"enroll-ledger/internal/handler/api"
	reqdto "enroll-ledger/internal/handler/dto/request"
	resdto "enroll-ledger/internal/handler/dto/response"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/commands"
	"enroll-ledger/tests/common/httptest"
	"enroll-ledger/tests/common/testutil"
	commandsmock "enroll-ledger/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)

	s.router.POST("/checkout", s.handler.InitiateCheckout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestInitiateCheckout() {
	url := "/checkout"
	reqBody := reqdto.CheckoutRequest{SectionID: uuid.New(), Plan: "FULL"}

	s.Run("success: returns the provider session", func() {
		result := &commands.CheckoutResult{
			SessionID:   "tok_abc123",
			RedirectURL: "https://pay.example.com/checkout/tok_abc123",
		}
		s.mockCommands.EXPECT().InitiateCheckout(gomock.Any(), reqBody).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("tok_abc123", response.SessionID)
		s.Equal(result.RedirectURL, response.RedirectURL)
		s.False(response.Deduplicated)
	})

	s.Run("success: flags a deduplicated session", func() {
		result := &commands.CheckoutResult{
			SessionID:    "tok_abc123",
			RedirectURL:  "https://pay.example.com/checkout/tok_abc123",
			Deduplicated: true,
		}
		s.mockCommands.EXPECT().InitiateCheckout(gomock.Any(), reqBody).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Deduplicated)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: section_id (required)", mutate: testutil.Field("section_id", nil)},
			{name: "missing field: plan (required)", mutate: testutil.Field("plan", nil)},
			{name: "unknown plan", mutate: testutil.Field("plan", "INSTALLMENT")},
			{name: "lowercase plan", mutate: testutil.Field("plan", "full")},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
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
			{name: "unknown section", returnErr: commands.ErrSectionNotFound, expectCode: http.StatusNotFound, expectError: "Section not found"},
			{name: "section full", returnErr: commands.ErrSectionFull, expectCode: http.StatusConflict, expectError: "Section is at capacity"},
			{name: "invalid plan", returnErr: commands.ErrInvalidPlan, expectCode: http.StatusBadRequest, expectError: "Invalid enrollment plan"},
			{name: "checkout unavailable", returnErr: commands.ErrCheckoutNotConfigured, expectCode: http.StatusServiceUnavailable, expectError: "Checkout is not available"},
			{name: "unexpected failure", returnErr: errs.New("redis down"), expectCode: http.StatusInternalServerError, expectError: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().InitiateCheckout(gomock.Any(), reqBody).
					Return(nil, tc.returnErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectError)
			})
		}
	})
}
