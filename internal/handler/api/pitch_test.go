//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pitch-booking/internal/domain/pitch"
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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PitchHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPitchCommands
	mockQueries  *queriesmock.MockClubQueries
	handler      *api.PitchHandler
	actor        user.Actor
}

func (s *PitchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPitchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockClubQueries(s.mockCtrl)
	s.handler = api.NewPitchHandler(s.mockCommands, s.mockQueries)
	s.actor = builder.NewUserBuilder().AsManager(uuid.New()).BuildActor()

	g := s.router.Group("/dashboard", fakeAuth(s.actor))
	g.GET("/pitches", s.handler.List)
	g.POST("/pitches", s.handler.Create)
	g.PATCH("/pitches/:id", s.handler.Update)
	g.PATCH("/pitches/:id/active", s.handler.SetActive)
}

func (s *PitchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPitchHandlerSuite(t *testing.T) {
	suite.Run(t, new(PitchHandlerTestSuite))
}

func (s *PitchHandlerTestSuite) TestList() {
	view := builder.NewPitchBuilder().BuildView()

	s.Run("success: returns pitches with string prices", func() {
		s.mockQueries.EXPECT().ListPitches(gomock.Any(), s.actor).Return([]*queries.PitchView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/pitches", nil, bearer)

		var body []resdto.PitchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("100.00", body[0].PriceFirst)
		s.Equal("150.00", body[0].PriceSecond)
		s.Equal("17:00:00", body[0].TimeInterval.String())
		s.Equal(view.ImageURL, body[0].ImageURL)
	})

	s.Run("error: 403 Forbidden for a player token", func() {
		s.mockQueries.EXPECT().ListPitches(gomock.Any(), s.actor).Return(nil, user.ErrNotManager).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/pitches", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only club managers")
	})
}

func (s *PitchHandlerTestSuite) TestCreate() {
	pb := builder.NewPitchBuilder()
	reqBody := pb.BuildCreateRequestDTO()
	newID := uuid.New()

	s.Run("success: returns 201 Created and defaults is_active to true", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Cond(func(x any) bool {
			p := x.(pitch.Params)
			return p.Name == pb.Name && p.IsActive &&
				p.Rates.PriceFirst.Equal(pb.PriceFirst) &&
				p.Rates.PriceSecond.Equal(pb.PriceSecond) &&
				p.Rates.Cutoff == daytime.MustParse("17:00")
		})).Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/dashboard/pitches", reqBody, bearer)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(newID, body.ID)
	})

	s.Run("success: explicit is_active false is kept", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Cond(func(x any) bool {
			return !x.(pitch.Params).IsActive
		})).Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/dashboard/pitches",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("is_active", false)), bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := map[string]func(map[string]any){
			"missing name":          testutil.Field("name", nil),
			"zero size_high":        testutil.Field("size_high", 0),
			"price is not a number": testutil.Field("price_first", "free"),
			"bad time_interval":     testutil.Field("time_interval", "5pm"),
			"missing type":          testutil.Field("type", nil),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/dashboard/pitches",
					testutil.DtoMap(s.T(), reqBody, mutate), bearer)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: domain validation is reported as 400", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(uuid.Nil, pitch.ErrEmptyName).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/dashboard/pitches",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("name", "   ")), bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "pitch name cannot be empty")
	})
}

func (s *PitchHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/dashboard/pitches/" + id.String()

	s.Run("success: partial update returns 204", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, id, gomock.Cond(func(x any) bool {
			u := x.(pitch.Update)
			return u.Name != nil && *u.Name == "Pitch B" && u.PriceFirst == nil && u.Cutoff == nil
		})).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Pitch B"}, bearer)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for a pitch of another club", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, id, gomock.Any()).Return(commands.ErrPitchNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"size_width": 40}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "pitch not found")
	})
}

func (s *PitchHandlerTestSuite) TestSetActive() {
	id := uuid.New()
	url := "/dashboard/pitches/" + id.String() + "/active"

	s.Run("success: deactivates the pitch", func() {
		s.mockCommands.EXPECT().SetActive(gomock.Any(), s.actor, id, false).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"is_active": false}, bearer)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when is_active is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
