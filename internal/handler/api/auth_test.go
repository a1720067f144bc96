//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"enroll-ledger/internal/handler/api"
	reqdto "enroll-ledger/internal/handler/dto/request"
	resdto "enroll-ledger/internal/handler/dto/response"
	"enroll-ledger/internal/pkg/config"
	"enroll-ledger/internal/pkg/errs"
	"enroll-ledger/internal/usecase/commands"
	"enroll-ledger/tests/common/builder"
	"enroll-ledger/tests/common/httptest"
	"enroll-ledger/tests/common/testutil"
	commandsmock "enroll-ledger/tests/mock/commands"
	queriesmock "enroll-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := reqdto.LoginRequest{Email: "test@example.com", Password: "password123"}
	returnUser := builder.NewUserBuilder().BuildReadModel()
	tokenPair := &commands.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"}

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{UserID: returnUser.ID, TokenPair: tokenPair}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)
		s.Equal("test-jwt-token", response.AccessToken)

		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Equal("test-jwt-token", access.Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "email boundary invalid (invalid email)", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
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
			{name: "invalid credentials", returnErr: commands.ErrInvalidCredentials, expectCode: http.StatusUnauthorized, expectError: "Invalid email or password"},
			{name: "unknown user", returnErr: commands.ErrUserNotFound, expectCode: http.StatusUnauthorized, expectError: "Invalid email or password"},
			{name: "inactive account", returnErr: commands.ErrUserInactive, expectCode: http.StatusForbidden, expectError: "Account is inactive"},
			{name: "unexpected failure", returnErr: errs.New("database error"), expectCode: http.StatusInternalServerError, expectError: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, tc.returnErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectError)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: rotates the token pair from the cookie", func() {
		pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").Return(pair, nil).Times(1)

		cookies := []*http.Cookie{{Name: "refresh_token", Value: "old-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Equal("new-access", access.Value)
	})

	s.Run("success: accepts the refresh token in the body", func() {
		pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "body-refresh").Return(pair, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.RefreshRequest{RefreshToken: "body-refresh"}, "")
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	})

	s.Run("error: 401 Unauthorized without a refresh token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: 401 Unauthorized on invalid token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "expired").
			Return(nil, commands.ErrTokenValidation).Times(1)

		cookies := []*http.Cookie{{Name: "refresh_token", Value: "expired"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears the token cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		access := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(access)
		s.Empty(access.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current user", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 401 Unauthorized without auth context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}
