//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/handler/api"
	reqdto "pitch-booking/internal/handler/dto/request"
	resdto "pitch-booking/internal/handler/dto/response"
	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/usecase/commands"
	"pitch-booking/internal/usecase/queries"
	"pitch-booking/tests/common/builder"
	"pitch-booking/tests/common/httptest"
	"pitch-booking/tests/common/testutil"
	commandsmock "pitch-booking/tests/mock/commands"
	queriesmock "pitch-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OwnerBookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOwnerBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.OwnerBookingHandler
	clubID       uuid.UUID
	actor        user.Actor
}

func (s *OwnerBookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOwnerBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewOwnerBookingHandler(s.mockCommands, s.mockQueries)
	s.clubID = uuid.New()
	s.actor = builder.NewUserBuilder().AsManager(s.clubID).BuildActor()

	g := s.router.Group("/dashboard", fakeAuth(s.actor))
	g.GET("/bookings", s.handler.List)
	g.POST("/bookings", s.handler.Create)
	g.GET("/bookings/:id", s.handler.Get)
	g.POST("/bookings/:id/reschedule", s.handler.Reschedule)
	for _, a := range booking.OwnerActions() {
		g.POST("/bookings/:id/"+string(a), s.handler.Action(a))
	}
}

func (s *OwnerBookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOwnerBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(OwnerBookingHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *OwnerBookingHandlerTestSuite) TestList() {
	url := "/dashboard/bookings"
	item := builder.NewBookingBuilder().AsOwnerBooking().BuildListItem()

	s.Run("success: returns bookings with labels and fixed-point money", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.actor, queries.OwnerBookingFilter{}).
			Return([]*queries.BookingListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(item.ID, body[0].ID)
		s.Equal("2026-05-12", body[0].Date)
		s.Equal("150.00", body[0].Price)
		s.Require().NotNil(body[0].Deposit)
		s.Equal("50.00", *body[0].Deposit)
		s.Equal("PENDING_PAY", body[0].StatusLabel)
		s.Equal("DEPOSIT", body[0].PaymentLabel)
	})

	s.Run("success: query parameters become the filter", func() {
		pitchID := uuid.New()
		date := daytime.MustParseDate("2026-05-12")
		from := daytime.MustParse("10:00")
		to := daytime.MustParse("14:00")
		want := queries.OwnerBookingFilter{PitchID: &pitchID, Date: &date, TimeFrom: &from, TimeTo: &to}

		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.actor, want).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?pitch="+pitchID.String()+"&date=2026-05-12&time_from=10:00&time_to=14:00", nil, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on malformed filters", func() {
		for _, q := range []string{"?pitch=nope", "?date=12-05-2026", "?time_from=25:00", "?time_to=7pm"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+q, nil, bearer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 403 Forbidden when the actor manages no club", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, user.ErrNoClubForKey).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "no club")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OwnerBookingHandlerTestSuite) TestCreate() {
	url := "/dashboard/bookings"
	bb := builder.NewBookingBuilder().AsOwnerBooking()
	reqBody := bb.BuildOwnerCreateRequestDTO()
	result := bb.BuildResult()

	validation := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "status PENDING_PAY accepted", mutate: testutil.Field("status", int(booking.StatusPendingPay)), expectCode: http.StatusCreated},
		{name: "status COMPLETED accepted", mutate: testutil.Field("status", int(booking.StatusCompleted)), expectCode: http.StatusCreated},
		{name: "status PENDING_MANAGER rejected", mutate: testutil.Field("status", int(booking.StatusPendingManager)), expectCode: http.StatusBadRequest},
		{name: "payment status out of range", mutate: testutil.Field("payment_status", 4), expectCode: http.StatusBadRequest},
		{name: "missing pitch_id", mutate: testutil.Field("pitch_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "date in wrong format", mutate: testutil.Field("date", "12/05/2026"), expectCode: http.StatusBadRequest},
		{name: "start time in wrong format", mutate: testutil.Field("start_time", "6pm"), expectCode: http.StatusBadRequest},
		{name: "price is not a number", mutate: testutil.Field("price", "cheap"), expectCode: http.StatusBadRequest},
		{name: "username omitted for walk-in", mutate: testutil.Field("username", nil), expectCode: http.StatusCreated},
		{name: "seconds in time accepted", mutate: testutil.Field("end_time", "19:30:00"), expectCode: http.StatusCreated},
	}

	s.Run("success: returns 201 Created with the booking state", func() {
		want, err := reqBody.ToCommand()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, want).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.ID, body.ID)
		s.Equal("PENDING_PAY", body.StatusLabel)
		s.Equal("2026-05-12", body.Date)
		s.Equal("18:00:00", body.StartTime.String())
	})

	s.Run("success: DTO converts amounts and slot", func() {
		cmd, err := reqBody.ToCommand()
		s.Require().NoError(err)
		s.True(decimal.RequireFromString("150").Equal(*cmd.Price))
		s.True(decimal.RequireFromString("50").Equal(*cmd.Deposit))
		s.Equal(booking.PaymentDeposit, cmd.PaymentStatus)
		s.Equal(daytime.MustParse("19:30"), cmd.EndTime)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bearer)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "slot overlaps", commandsError: booking.ErrOverlap, expectedStatus: http.StatusBadRequest, expectedMsg: "already booked"},
			{name: "deposit above price", commandsError: booking.ErrDepositExceedsPrice, expectedStatus: http.StatusBadRequest, expectedMsg: "deposit cannot exceed"},
			{name: "pitch of another club", commandsError: commands.ErrPitchNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "pitch not found"},
			{name: "unknown username", commandsError: commands.ErrPlayerNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "player not found"},
			{name: "internal error", commandsError: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OwnerBookingHandlerTestSuite) TestGet() {
	bb := builder.NewBookingBuilder()
	detail := bb.BuildDetail()
	url := "/dashboard/bookings/" + bb.ID.String()

	s.Run("success: returns the booking with its history", func() {
		s.mockQueries.EXPECT().GetForOwner(gomock.Any(), s.actor, bb.ID).Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)

		var body resdto.BookingDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bb.ID, body.ID)
		s.Require().Len(body.History, 1)
		s.Equal("PENDING_MANAGER", body.History[0].StatusLabel)
		s.Nil(body.Proposal)
	})

	s.Run("error: 404 Not Found for a booking of another club", func() {
		s.mockQueries.EXPECT().GetForOwner(gomock.Any(), s.actor, bb.ID).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/bookings/abc", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestAction
// ================================================================================

func (s *OwnerBookingHandlerTestSuite) TestAction() {
	bb := builder.NewBookingBuilder()
	base := "/dashboard/bookings/" + bb.ID.String() + "/"

	s.Run("success: each owner action reaches the use case", func() {
		for _, a := range booking.OwnerActions() {
			s.Run(string(a), func() {
				result := builder.NewBookingBuilder().WithStatus(a.Target()).BuildResult()
				s.mockCommands.EXPECT().ApplyAction(gomock.Any(), s.actor, bb.ID, a).Return(result, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+string(a), nil, bearer)

				var body resdto.BookingStateResponse
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
				s.Equal(a.Target(), body.Status)
			})
		}
	})

	s.Run("error: unknown action is not routed", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"teleport", nil, bearer)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 Bad Request for an invalid transition", func() {
		s.mockCommands.EXPECT().ApplyAction(gomock.Any(), s.actor, bb.ID, booking.ActionComplete).
			Return(nil, booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+string(booking.ActionComplete), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking status transition")
	})

	s.Run("error: 404 Not Found for a missing booking", func() {
		s.mockCommands.EXPECT().ApplyAction(gomock.Any(), s.actor, bb.ID, booking.ActionReject).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+string(booking.ActionReject), nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

// ================================================================================
// TestReschedule
// ================================================================================

func (s *OwnerBookingHandlerTestSuite) TestReschedule() {
	bb := builder.NewBookingBuilder()
	url := "/dashboard/bookings/" + bb.ID.String() + "/reschedule"
	reqBody := bb.BuildRescheduleRequestDTO("2026-05-13", "20:00", "21:30")

	s.Run("success: proposal moves the booking to PENDING_PLAYER", func() {
		want, err := reqBody.ToCommand()
		s.Require().NoError(err)
		result := bb.WithStatus(booking.StatusPendingPlayer).BuildResult()
		s.mockCommands.EXPECT().ProposeReschedule(gomock.Any(), s.actor, bb.ID, want).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PENDING_PLAYER", body.StatusLabel)
	})

	s.Run("error: 400 Bad Request when the slot is unchanged", func() {
		s.mockCommands.EXPECT().ProposeReschedule(gomock.Any(), s.actor, bb.ID, gomock.Any()).
			Return(nil, booking.ErrSameSlot).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "same as the current time")
	})

	s.Run("error: 400 Bad Request on missing end_time", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("end_time", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
