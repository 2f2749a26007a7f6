//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/handler/api"
	resdto "petsitter-booking/internal/handler/dto/response"
	"petsitter-booking/internal/pkg/errs"
	"petsitter-booking/internal/usecase/queries"
	"petsitter-booking/tests/common/builder"
	"petsitter-booking/tests/common/httptest"
	commandsmock "petsitter-booking/tests/mock/commands"
	queriesmock "petsitter-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockAdminQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/requests", s.handler.List)
	s.router.GET("/admin/requests/:id", s.handler.Get)
	s.router.PATCH("/admin/requests/:id/slots/:slotId", s.handler.UpdateSlotStatus)
	s.router.PATCH("/admin/requests/:id/slots", s.handler.UpdateAllSlotStatuses)
	s.router.GET("/admin/badge", s.handler.Badge)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestList() {
	s.Run("success: keeps the query order", func() {
		first, second := uuid.New(), uuid.New()
		s.mockQueries.EXPECT().ListRequests(gomock.Any()).
			Return([]*queries.RequestView{builder.NewRequestView(first), builder.NewRequestView(second)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests", nil)

		var body struct {
			Requests []resdto.RequestResponse `json:"requests"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Requests, 2)
		s.Equal(first.String(), body.Requests[0].ID)
		s.Equal(second.String(), body.Requests[1].ID)
		s.True(body.Requests[0].AllPending)
		s.Equal("Springfield", body.Requests[0].CustomerAddress.City)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListRequests(gomock.Any()).Return([]*queries.RequestView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"requests":[]}`, rec.Body.String())
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().ListRequests(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

func (s *AdminHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetRequest(gomock.Any(), id).Return(builder.NewRequestView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests/"+id.String(), nil)

		var body resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id.String(), body.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request id")
	})

	s.Run("error: 404 Not Found for unknown request", func() {
		s.mockQueries.EXPECT().GetRequest(gomock.Any(), id).Return(nil, errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/requests/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateSlotStatus() {
	id, slotID := uuid.New(), uuid.New()
	url := "/admin/requests/" + id.String() + "/slots/" + slotID.String()

	s.Run("success: returns the updated request", func() {
		view := builder.NewRequestView(id)
		view.Slots[0].Status = "accepted"
		view.AllPending, view.HasPending = false, false

		s.mockCommands.EXPECT().SetSlotStatus(gomock.Any(), id, slotID, "accepted").Return(nil).Times(1)
		s.mockQueries.EXPECT().GetRequest(gomock.Any(), id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "accepted"})

		var body resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("accepted", body.Slots[0].Status)
		s.False(body.AllPending)
	})

	s.Run("error: 400 for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "maybe"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"unknown request", errs.Mark(errors.New("missing"), errs.ErrRequestNotFound), http.StatusNotFound, "Request not found"},
			{"unknown slot", errs.Mark(errors.New("missing"), errs.ErrSlotNotFound), http.StatusNotFound, "Slot not found"},
			{"invalid status", appointment.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
			{"store failure", errors.New("boom"), http.StatusInternalServerError, "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetSlotStatus(gomock.Any(), id, slotID, "denied").Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "denied"})
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestUpdateAllSlotStatuses() {
	id := uuid.New()
	url := "/admin/requests/" + id.String() + "/slots"

	s.Run("success: bulk update", func() {
		s.mockCommands.EXPECT().SetAllSlotStatuses(gomock.Any(), id, "denied").Return(nil).Times(1)
		s.mockQueries.EXPECT().GetRequest(gomock.Any(), id).Return(builder.NewRequestView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "denied"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for unknown request", func() {
		s.mockCommands.EXPECT().SetAllSlotStatuses(gomock.Any(), id, "accepted").
			Return(errs.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "accepted"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})
}

func (s *AdminHandlerTestSuite) TestBadge() {
	for _, unread := range []bool{true, false} {
		s.mockQueries.EXPECT().Badge(gomock.Any()).Return(&queries.BadgeView{Unread: unread}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/badge", nil)

		var body resdto.BadgeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(unread, body.Unread)
	}
}
