//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"kayak-console/internal/handler/api"
	resdto "kayak-console/internal/handler/dto/response"
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

type BroadcastHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockBroadcastQueries
	mockCommands *commandsmock.MockBroadcastCommands
	handler      *api.BroadcastHandler
}

func (s *BroadcastHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBroadcastQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBroadcastCommands(s.mockCtrl)
	s.handler = api.NewBroadcastHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/broadcasts/calendar", s.handler.Calendar)
	s.router.GET("/broadcasts/targets", s.handler.Targets)
	s.router.GET("/broadcasts/history", s.handler.History)
	s.router.POST("/broadcasts/send", s.handler.Send)
	s.router.POST("/broadcasts/weather-cancel", s.handler.WeatherCancel)
}

func (s *BroadcastHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBroadcastHandlerSuite(t *testing.T) {
	suite.Run(t, new(BroadcastHandlerTestSuite))
}

func (s *BroadcastHandlerTestSuite) TestCalendar() {
	s.Run("success: returns day groups of open future slots", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any()).
			Return([]queries.SlotDayGroup{{DayKey: "2026-03-20"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/broadcasts/calendar", nil, "")

		var response []queries.SlotDayGroup
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}

func (s *BroadcastHandlerTestSuite) TestTargets() {
	s.Run("success: resolves targets for the given slots", func() {
		slotA := uuid.New()
		slotB := uuid.New()
		s.mockQueries.EXPECT().Targets(gomock.Any(), []uuid.UUID{slotA, slotB}).
			Return([]queries.BroadcastTarget{{BookingID: uuid.New(), Qty: 2}}, nil).Times(1)

		url := "/broadcasts/targets?slot_ids=" + slotA.String() + "," + slotB.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []queries.BroadcastTarget
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 Bad Request without slot_ids", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/broadcasts/targets", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "slot_ids is required")
	})

	s.Run("error: 400 Bad Request for a malformed slot ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/broadcasts/targets?slot_ids=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid slot ID")
	})
}

func (s *BroadcastHandlerTestSuite) TestSend() {
	url := "/broadcasts/send"
	slotID := uuid.New()

	s.Run("success: reports recipient and slot counts", func() {
		message := "High winds expected tomorrow morning, dress warmly."
		s.mockCommands.EXPECT().Send(gomock.Any(), message, []uuid.UUID{slotID}).
			Return(&commands.BroadcastResult{Recipients: 14, SlotCount: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"message": message, "slot_ids": []string{slotID.String()}}, "")

		var response resdto.BroadcastResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(14, response.Recipients)
		s.Equal(1, response.SlotCount)
	})

	s.Run("error: 400 Bad Request for a blank message", func() {
		s.mockCommands.EXPECT().Send(gomock.Any(), "   ", []uuid.UUID{slotID}).
			Return(nil, commands.ErrEmptyMessage).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"message": "   ", "slot_ids": []string{slotID.String()}}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request without any slots", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"message": "hello", "slot_ids": []string{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 502 Bad Gateway when delivery fails outright", func() {
		s.mockCommands.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBroadcastFatal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"message": "hello", "slot_ids": []string{slotID.String()}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Broadcast delivery failed")
	})
}

func (s *BroadcastHandlerTestSuite) TestWeatherCancel() {
	url := "/broadcasts/weather-cancel"
	slotID := uuid.New()

	s.Run("success: cancels the slots and reports counts", func() {
		reason := "Gale warning issued for the bay"
		s.mockCommands.EXPECT().WeatherCancel(gomock.Any(), []uuid.UUID{slotID}, reason).
			Return(&commands.BroadcastResult{Recipients: 6, SlotCount: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"slot_ids": []string{slotID.String()}, "reason": reason}, "")

		var response resdto.BroadcastResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(6, response.Recipients)
	})

	s.Run("error: 400 Bad Request without a reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"slot_ids": []string{slotID.String()}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BroadcastHandlerTestSuite) TestHistory() {
	s.Run("success: returns past broadcasts newest first", func() {
		items := []queries.BroadcastHistoryItem{
			{ID: uuid.New(), Action: "weather_cancel", Message: "Gale warning", RecipientCount: 6, CreatedAt: time.Now()},
			{ID: uuid.New(), Action: "broadcast_targeted", Message: strings.Repeat("x", 40), RecipientCount: 14},
		}
		s.mockQueries.EXPECT().History(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/broadcasts/history", nil, "")

		var response []queries.BroadcastHistoryItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("weather_cancel", response[0].Action)
	})
}
