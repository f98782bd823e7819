//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"pitch-booking/internal/domain/booking"
	"pitch-booking/internal/domain/user"
	"pitch-booking/internal/handler/dto/response"
	"pitch-booking/tests/common/authtest"
	"pitch-booking/tests/common/dbtest"
	"pitch-booking/tests/common/httptest"
	"pitch-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	playerBookingsURL = "/api/bookings"
	ownerBookingsURL  = "/api/dashboard/bookings"
	reviewsURL        = "/api/reviews"
	clubReviewsURL    = "/api/clubs/%s/reviews"
	clubsURL          = "/api/clubs"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// world is one club with one pitch, its manager and two players.
type world struct {
	clubID       uuid.UUID
	pitchID      uuid.UUID
	managerToken string
	playerID     uuid.UUID
	playerToken  string
	otherToken   string
}

func (s *BookingSuite) seed() world {
	t := s.T()
	jwt := authtest.NewJWTHelper(s.Config.JWT)

	managerID := dbtest.CreateTestUser(t, s.DB, "manager_one", string(user.RoleManager))
	clubID := dbtest.CreateTestClub(t, s.DB, managerID, dbtest.DefaultClub())
	pitchID := dbtest.CreateTestPitch(t, s.DB, clubID, "Pitch A")
	playerID := dbtest.CreateTestUser(t, s.DB, "player_one", string(user.RolePlayer))
	otherID := dbtest.CreateTestUser(t, s.DB, "player_two", string(user.RolePlayer))

	return world{
		clubID:       clubID,
		pitchID:      pitchID,
		managerToken: jwt.ManagerToken(t, managerID, clubID),
		playerID:     playerID,
		playerToken:  jwt.PlayerToken(t, playerID),
		otherToken:   jwt.PlayerToken(t, otherID),
	}
}

func tomorrow() string {
	return time.Now().UTC().AddDate(0, 0, 1).Format(time.DateOnly)
}

func (s *BookingSuite) playerBook(w world, token, date, start, end string) response.BookingStateResponse {
	t := s.T()
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, playerBookingsURL, map[string]any{
		"pitch_id":   w.pitchID,
		"date":       date,
		"start_time": start,
		"end_time":   end,
	}, token)

	var res response.BookingStateResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &res)
	return res
}

func (s *BookingSuite) ownerAction(w world, id uuid.UUID, action booking.Action) response.BookingStateResponse {
	t := s.T()
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
		fmt.Sprintf("%s/%s/%s", ownerBookingsURL, id, action), nil, w.managerToken)

	var res response.BookingStateResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
	return res
}

func (s *BookingSuite) TestPlayerBooking() {
	s.Run("success: request is pending until the manager confirms", func() {
		w := s.seed()

		created := s.playerBook(w, w.playerToken, tomorrow(), "18:00", "19:30")
		require.Equal(s.T(), "PENDING_MANAGER", created.StatusLabel)

		confirmed := s.ownerAction(w, created.ID, booking.ActionConfirmPayment)
		require.Equal(s.T(), "PENDING_PAY", confirmed.StatusLabel)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, playerBookingsURL, nil, w.playerToken)
		var page response.Page[response.BookingResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		require.Len(s.T(), page.Results, 1)
		// Entirely after the 17:00 cutoff: 1.5h at 150.
		require.Equal(s.T(), "225.00", page.Results[0].Price)
	})

	s.Run("success: unconfirmed requests do not hold the slot", func() {
		w := s.seed()
		s.playerBook(w, w.playerToken, tomorrow(), "18:00", "19:30")

		second := s.playerBook(w, w.otherToken, tomorrow(), "19:00", "20:00")
		require.Equal(s.T(), "PENDING_MANAGER", second.StatusLabel)
	})

	s.Run("error: overlapping a confirmed booking is rejected", func() {
		w := s.seed()
		first := s.playerBook(w, w.playerToken, tomorrow(), "18:00", "19:30")
		s.ownerAction(w, first.ID, booking.ActionConfirmPayment)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, playerBookingsURL, map[string]any{
			"pitch_id":   w.pitchID,
			"date":       tomorrow(),
			"start_time": "19:00",
			"end_time":   "20:00",
		}, w.otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already booked")
	})

	s.Run("success: adjacent slot is free", func() {
		w := s.seed()
		first := s.playerBook(w, w.playerToken, tomorrow(), "18:00", "19:30")
		s.ownerAction(w, first.ID, booking.ActionConfirmPayment)

		next := s.playerBook(w, w.otherToken, tomorrow(), "19:30", "21:00")
		require.Equal(s.T(), "PENDING_MANAGER", next.StatusLabel)
	})

	s.Run("error: past date", func() {
		w := s.seed()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, playerBookingsURL, map[string]any{
			"pitch_id":   w.pitchID,
			"date":       time.Now().UTC().AddDate(0, 0, -1).Format(time.DateOnly),
			"start_time": "18:00",
			"end_time":   "19:00",
		}, w.playerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("success: player cancels after confirmation", func() {
		w := s.seed()
		created := s.playerBook(w, w.playerToken, tomorrow(), "10:00", "11:00")
		s.ownerAction(w, created.ID, booking.ActionConfirmPayment)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", playerBookingsURL, created.ID), nil, w.playerToken)
		var res response.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		require.Equal(s.T(), "CANCELED", res.StatusLabel)
		require.Equal(s.T(), int16(booking.StatusCanceled), dbtest.BookingStatus(s.T(), s.DB, created.ID))
	})

	s.Run("error: another player cannot cancel", func() {
		w := s.seed()
		created := s.playerBook(w, w.playerToken, tomorrow(), "10:00", "11:00")
		s.ownerAction(w, created.ID, booking.ActionConfirmPayment)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", playerBookingsURL, created.ID), nil, w.otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *BookingSuite) ownerPendingPay(w world, start, end string) uuid.UUID {
	return dbtest.CreateTestBooking(s.T(), s.DB, dbtest.BookingFixture{
		PitchID: w.pitchID,
		ClubID:  w.clubID,
		Date:    mustDate(s.T(), tomorrow()),
		Start:   start,
		End:     end,
		Price:   "150.00",
		Status:  int16(booking.StatusPendingPay),
		ByOwner: true,
	})
}

func (s *BookingSuite) TestOwnerComplete() {
	s.Run("error: an overlapping completed booking blocks completion", func() {
		w := s.seed()
		first := s.ownerPendingPay(w, "18:00", "19:00")
		second := s.ownerPendingPay(w, "18:30", "19:30")

		completed := s.ownerAction(w, first, booking.ActionComplete)
		require.Equal(s.T(), "COMPLETED", completed.StatusLabel)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/%s", ownerBookingsURL, second, booking.ActionComplete), nil, w.managerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already booked")
		require.Equal(s.T(), int16(booking.StatusPendingPay), dbtest.BookingStatus(s.T(), s.DB, second))
	})

	s.Run("success: a touching booking completes", func() {
		w := s.seed()
		first := s.ownerPendingPay(w, "18:00", "19:00")
		second := s.ownerPendingPay(w, "19:00", "20:00")

		s.ownerAction(w, first, booking.ActionComplete)
		completed := s.ownerAction(w, second, booking.ActionComplete)

		require.Equal(s.T(), "COMPLETED", completed.StatusLabel)
	})

	s.Run("error: source state is checked before the overlap", func() {
		w := s.seed()
		first := s.ownerPendingPay(w, "18:00", "19:00")
		s.ownerAction(w, first, booking.ActionComplete)
		playerBooking := dbtest.CreateTestBooking(s.T(), s.DB, dbtest.BookingFixture{
			PitchID:  w.pitchID,
			ClubID:   w.clubID,
			PlayerID: &w.playerID,
			Date:     mustDate(s.T(), tomorrow()),
			Start:    "18:30",
			End:      "19:30",
			Price:    "150.00",
			Status:   int16(booking.StatusPendingPay),
		})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/%s", ownerBookingsURL, playerBooking, booking.ActionComplete), nil, w.managerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking status transition")
	})
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}

func (s *BookingSuite) TestReschedule() {
	s.Run("success: accepted proposal moves the booking", func() {
		w := s.seed()
		created := s.playerBook(w, w.playerToken, tomorrow(), "18:00", "19:00")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/reschedule", ownerBookingsURL, created.ID), map[string]any{
				"date":       tomorrow(),
				"start_time": "20:00",
				"end_time":   "21:00",
			}, w.managerToken)
		var proposed response.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &proposed)
		require.Equal(s.T(), "PENDING_PLAYER", proposed.StatusLabel)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/reschedule/accept", playerBookingsURL, created.ID), nil, w.playerToken)
		var accepted response.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &accepted)
		require.Equal(s.T(), "PENDING_PAY", accepted.StatusLabel)
		require.Equal(s.T(), "20:00", accepted.StartTime.HHMM())
	})

	s.Run("error: proposing a slot that overlaps a held booking", func() {
		w := s.seed()
		created := s.playerBook(w, w.playerToken, tomorrow(), "18:00", "19:00")
		s.ownerPendingPay(w, "20:00", "21:00")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/reschedule", ownerBookingsURL, created.ID), map[string]any{
				"date":       tomorrow(),
				"start_time": "20:30",
				"end_time":   "21:30",
			}, w.managerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already booked")
		require.Equal(s.T(), int16(booking.StatusPendingManager), dbtest.BookingStatus(s.T(), s.DB, created.ID))
	})

	s.Run("success: declined proposal rejects the booking", func() {
		w := s.seed()
		created := s.playerBook(w, w.playerToken, tomorrow(), "18:00", "19:00")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/reschedule", ownerBookingsURL, created.ID), map[string]any{
				"date":       tomorrow(),
				"start_time": "20:00",
				"end_time":   "21:00",
			}, w.managerToken)
		require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/reschedule/reject", playerBookingsURL, created.ID), nil, w.playerToken)
		var res response.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		require.Equal(s.T(), "REJECT", res.StatusLabel)
	})

	s.Run("error: accepting without a proposal", func() {
		w := s.seed()
		created := s.playerBook(w, w.playerToken, tomorrow(), "18:00", "19:00")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/reschedule/accept", playerBookingsURL, created.ID), nil, w.playerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no pending reschedule proposal")
	})
}

func (s *BookingSuite) TestReviewFlow() {
	completedBooking := func(w world) uuid.UUID {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ownerBookingsURL, map[string]any{
			"pitch_id":       w.pitchID,
			"username":       "player_one",
			"date":           tomorrow(),
			"start_time":     "12:00",
			"end_time":       "13:00",
			"status":         int(booking.StatusCompleted),
			"payment_status": int(booking.PaymentPaid),
		}, w.managerToken)
		var res response.BookingStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		return res.ID
	}

	s.Run("success: review updates the club rating", func() {
		w := s.seed()
		bookingID := completedBooking(w)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, map[string]any{
			"booking_id": bookingID,
			"rating":     4,
			"comment":    "Good surface",
		}, w.playerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(clubReviewsURL, w.clubID), nil, w.otherToken)
		var page response.Page[response.ReviewResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		want := []response.ReviewResponse{{Player: "player_one", Rating: 4, Comment: "Good surface"}}
		if diff := cmp.Diff(want, page.Results, cmpopts.IgnoreFields(response.ReviewResponse{}, "ID", "CreatedAt")); diff != "" {
			s.T().Errorf("reviews mismatch (-want +got):\n%s", diff)
		}
		require.Nil(s.T(), page.NextCursor)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, clubsURL, nil, w.otherToken)
		var clubs []response.ClubResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &clubs)
		require.Len(s.T(), clubs, 1)
		require.Equal(s.T(), "4.00", clubs[0].RatingAvg)
		require.Equal(s.T(), 1, clubs[0].RatingCount)
	})

	s.Run("error: second review of the same booking", func() {
		w := s.seed()
		bookingID := completedBooking(w)
		body := map[string]any{"booking_id": bookingID, "rating": 5}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, body, w.playerToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, body, w.playerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already been reviewed")
	})

	s.Run("error: only the booking's player may review", func() {
		w := s.seed()
		bookingID := completedBooking(w)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, map[string]any{
			"booking_id": bookingID,
			"rating":     1,
		}, w.otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: pending booking cannot be reviewed", func() {
		w := s.seed()
		created := s.playerBook(w, w.playerToken, tomorrow(), "18:00", "19:00")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, map[string]any{
			"booking_id": created.ID,
			"rating":     3,
		}, w.playerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingSuite) TestDashboardAccess() {
	s.Run("error: players cannot reach the dashboard", func() {
		w := s.seed()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ownerBookingsURL, nil, w.playerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: expired token", func() {
		w := s.seed()
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), w.playerID, user.RolePlayer)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, playerBookingsURL, nil, expired)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}
