//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"kayak-console/internal/handler/api"
	"kayak-console/internal/pkg/errs"
	"kayak-console/internal/usecase/queries"
	"kayak-console/tests/common/httptest"
	queriesmock "kayak-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockVoucherQueries
	handler     *api.VoucherHandler
}

func (s *VoucherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.handler = api.NewVoucherHandler(s.mockQueries)

	s.router.GET("/vouchers", s.handler.List)
}

func (s *VoucherHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoucherHandlerSuite(t *testing.T) {
	suite.Run(t, new(VoucherHandlerTestSuite))
}

func (s *VoucherHandlerTestSuite) TestList() {
	s.Run("success: lists all vouchers grouped by purchase day", func() {
		groups := []queries.VoucherDayGroup{
			{
				DayKey:   "2026-03-14",
				DayLabel: "Saturday, 14 Mar 2026",
				Vouchers: []queries.VoucherView{{ID: uuid.New(), Code: "GIFT-7F3K", Status: "ACTIVE"}},
			},
		}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.VoucherFilters{}).
			Return(groups, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers", nil, "")

		var response []queries.VoucherDayGroup
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("2026-03-14", response[0].DayKey)
		s.Equal("GIFT-7F3K", response[0].Vouchers[0].Code)
	})

	s.Run("success: forwards the day and search filters", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.VoucherFilters{ExactDay: "2026-03-14", Search: "nkosi"}).
			Return([]queries.VoucherDayGroup{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers?day=2026-03-14&search=nkosi", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 500 Internal Server Error when the query fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("pool exhausted")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
