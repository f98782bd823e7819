//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pitch-booking/internal/domain/booking"
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

type PlayerBookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPlayerBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.PlayerBookingHandler
	actor        user.Actor
}

func (s *PlayerBookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPlayerBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewPlayerBookingHandler(s.mockCommands, s.mockQueries)
	s.actor = builder.NewUserBuilder().BuildActor()

	auth := fakeAuth(s.actor)
	s.router.GET("/bookings", auth, s.handler.List)
	s.router.POST("/bookings", auth, s.handler.Create)
	s.router.POST("/bookings/:id/cancel", auth, s.handler.Cancel)
	s.router.POST("/bookings/:id/reschedule/accept", auth, s.handler.AcceptReschedule)
	s.router.POST("/bookings/:id/reschedule/reject", auth, s.handler.DeclineReschedule)
}

func (s *PlayerBookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlayerBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlayerBookingHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *PlayerBookingHandlerTestSuite) TestList() {
	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItem(),
		builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildListItem(),
	}

	s.Run("success: returns a page of the player's bookings", func() {
		s.mockQueries.EXPECT().ListForPlayer(gomock.Any(), s.actor, (*queries.Cursor)(nil), 20).
			Return(items, &queries.Cursor{After: "c2"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, bearer)

		var page resdto.Page[resdto.BookingResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Results, 2)
		s.Equal("COMPLETED", page.Results[1].StatusLabel)
		s.Require().NotNil(page.NextCursor)
		s.Equal("c2", *page.NextCursor)
	})

	s.Run("error: 400 Bad Request for a negative limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=-1", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PlayerBookingHandlerTestSuite) TestCreate() {
	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildPlayerCreateRequestDTO()
	result := bb.BuildResult()

	s.Run("success: returns 201 Created in PENDING_MANAGER", func() {
		want, err := reqBody.ToCommand()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, want).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, bearer)

		var body resdto.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bb.ID, body.ID)
		s.Equal("PENDING_MANAGER", body.StatusLabel)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := map[string]func(map[string]any){
			"missing pitch_id":   testutil.Field("pitch_id", nil),
			"missing start_time": testutil.Field("start_time", nil),
			"bad end_time":       testutil.Field("end_time", "19:3"),
			"bad date":           testutil.Field("date", "2026-13-01"),
			"phone too long":     testutil.Field("phone", "0123456789012345678901"),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
					testutil.DtoMap(s.T(), reqBody, mutate), bearer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps booking rule violations to 400", func() {
		for _, err := range []error{
			commands.ErrPastDate,
			commands.ErrOutsideWindow,
			commands.ErrClubClosed,
			commands.ErrOutsideHours,
			booking.ErrOverlap,
			booking.ErrInvalidSlot,
		} {
			s.Run(err.Error(), func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(nil, err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, bearer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, err.Error())
			})
		}
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *PlayerBookingHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("success: cancel returns the canceled booking", func() {
		result := builder.NewBookingBuilder().WithStatus(booking.StatusCanceled).BuildResult()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, id).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, bearer)

		var body resdto.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(booking.StatusCanceled, body.Status)
	})

	s.Run("success: accepting a reschedule returns the new slot", func() {
		result := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusPendingPay
		}).BuildResult()
		s.mockCommands.EXPECT().AcceptReschedule(gomock.Any(), s.actor, id).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/reschedule/accept", nil, bearer)

		var body resdto.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PENDING_PAY", body.StatusLabel)
	})

	s.Run("success: declining a reschedule rejects the booking", func() {
		result := builder.NewBookingBuilder().WithStatus(booking.StatusReject).BuildResult()
		s.mockCommands.EXPECT().DeclineReschedule(gomock.Any(), s.actor, id).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/reschedule/reject", nil, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden on another player's booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, id).Return(nil, booking.ErrNotBookingPlayer).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another player")
	})

	s.Run("error: 404 Not Found without a pending proposal", func() {
		s.mockCommands.EXPECT().AcceptReschedule(gomock.Any(), s.actor, id).Return(nil, commands.ErrProposalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/reschedule/accept", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no pending reschedule")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/xyz/cancel", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
