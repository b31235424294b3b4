//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	domslot "kayak-console/internal/domain/slot"
	"kayak-console/internal/handler/api"
	resdto "kayak-console/internal/handler/dto/response"
	"kayak-console/internal/pkg/clock"
	"kayak-console/internal/usecase/commands"
	"kayak-console/internal/usecase/queries"
	"kayak-console/tests/common/httptest"
	commandsmock "kayak-console/tests/mock/commands"
	queriesmock "kayak-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockSlotQueries
	mockCommands *commandsmock.MockSlotCommands
	clock        *clock.MockClock
	handler      *api.SlotHandler
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 14, 13, 45, 0, 0, time.UTC))
	s.handler = api.NewSlotHandler(s.mockQueries, s.mockCommands, s.clock, time.UTC)

	s.router.GET("/slots/week", s.handler.Week)
	s.router.GET("/slots/day", s.handler.Day)
	s.router.POST("/slots/:id/toggle", s.handler.Toggle)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestWeek() {
	s.Run("success: anchors on today when no anchor given", func() {
		s.mockQueries.EXPECT().Week(gomock.Any(), s.clock.Now()).
			Return([]queries.SlotDayGroup{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/week", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: anchors on the requested day", func() {
		anchor := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Week(gomock.Any(), anchor).
			Return([]queries.SlotDayGroup{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/week?anchor=2026-04-01", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed anchor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/week?anchor=next-tuesday", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})
}

func (s *SlotHandlerTestSuite) TestDay() {
	s.Run("success: lists the requested day", func() {
		day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Day(gomock.Any(), day).
			Return([]queries.SlotView{{ID: uuid.New(), TourName: "Sunset Paddle"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/day?date=2026-03-20", nil, "")

		var response []queries.SlotView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Sunset Paddle", response[0].TourName)
	})
}

func (s *SlotHandlerTestSuite) TestToggle() {
	slotID := uuid.New()
	url := "/slots/" + slotID.String() + "/toggle"

	s.Run("success: reports the new status", func() {
		s.mockCommands.EXPECT().Toggle(gomock.Any(), slotID).
			Return(domslot.StatusClosed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.SlotToggledResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(slotID, response.ID)
		s.Equal(domslot.StatusClosed.String(), response.Status)
	})

	s.Run("error: 404 Not Found for an unknown slot", func() {
		s.mockCommands.EXPECT().Toggle(gomock.Any(), slotID).
			Return(domslot.Status(""), commands.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})

	s.Run("error: 400 Bad Request for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/bogus/toggle", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})
}
