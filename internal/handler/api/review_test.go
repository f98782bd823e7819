//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"pitch-booking/internal/domain/review"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/handler/api"
	reqdto "pitch-booking/internal/handler/dto/request"
	resdto "pitch-booking/internal/handler/dto/response"
	"pitch-booking/internal/usecase/commands"
	"pitch-booking/internal/usecase/queries"
	"pitch-booking/tests/common/builder"
	"pitch-booking/tests/common/httptest"
	"pitch-booking/tests/common/testutil"
	commandsmock "pitch-booking/tests/mock/commands"
	queriesmock "pitch-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actor        user.Actor
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actor = builder.NewUserBuilder().BuildActor()

	auth := fakeAuth(s.actor)
	s.router.POST("/reviews", auth, s.handler.Create)
	s.router.GET("/clubs/:id/reviews", auth, s.handler.ListByClub)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	rb := builder.NewReviewBuilder()
	reqBody := rb.BuildCreateRequestDTO()
	expectedResult := &commands.CreateReviewResult{ReviewID: rb.ID}

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReview{
		{name: "missing field: booking_id (required)", mutate: testutil.Field("booking_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment (optional)", mutate: testutil.Field("comment", nil), expectCode: http.StatusCreated},
	}

	malformed := []testCaseReview{
		{name: "booking_id is not a uuid", mutate: testutil.Field("booking_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "rating is a string", mutate: testutil.Field("rating", "five"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReview{bound, missing, malformed}

	s.Run("success: returns 201 Created with the review id", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), s.actor, rb.BuildCommand()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rb.ID, body.ID)
	})

	s.Run("success: comment is trimmed before reaching the use case", func() {
		padded := testutil.DtoMap(s.T(), reqBody, testutil.Field("comment", "  nice pitch  "))
		want := rb.BuildCommand()
		want.Comment = "nice pitch"
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), s.actor, want).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, padded, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(expectedResult, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bearer)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking already reviewed",
				commandsError:  review.ErrReviewExists,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already been reviewed",
			},
			{
				name:           "booking not completed",
				commandsError:  review.ErrBookingNotEligible,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "only completed bookings",
			},
			{
				name:           "another player's booking",
				commandsError:  review.ErrNotBookingPlayer,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "only the booking's player",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "booking not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), s.actor, rb.BuildCommand()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListByClub
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByClub() {
	clubID := uuid.New()
	url := "/clubs/" + clubID.String() + "/reviews"

	items := []*queries.ReviewListItem{
		builder.NewReviewBuilder().BuildListItem(),
		builder.NewReviewBuilder().AsPoorRating().BuildListItem(),
	}

	s.Run("success: returns the first page with a next cursor", func() {
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListByClub(gomock.Any(), clubID, (*queries.Cursor)(nil), 20).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)

		var page resdto.Page[resdto.ReviewResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Results, 2)
		s.Equal(items[0].ID, page.Results[0].ID)
		s.Equal(1, page.Results[1].Rating)
		s.Require().NotNil(page.NextCursor)
		s.Equal("next-page", *page.NextCursor)
	})

	s.Run("success: passes cursor and limit through", func() {
		s.mockQueries.EXPECT().ListByClub(gomock.Any(), clubID, &queries.Cursor{After: "abc"}, 5).
			Return(items[:1], nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc&limit=5", nil, bearer)

		var page resdto.Page[resdto.ReviewResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Results, 1)
		s.Nil(page.NextCursor)
	})

	s.Run("success: limit above the maximum is clamped", func() {
		s.mockQueries.EXPECT().ListByClub(gomock.Any(), clubID, gomock.Any(), queries.MaxListLimit).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5000", nil, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/clubs/invalid-uuid/reviews", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 400 Bad Request for a broken cursor", func() {
		s.mockQueries.EXPECT().ListByClub(gomock.Any(), clubID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}
