//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/booking"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/api"
	resdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/response"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/tests/common/httptest"
	commandsmock "github.com/GoncaloFernandes8/BarbershopBackoffice/tests/mock/commands"
	queriesmock "github.com/GoncaloFernandes8/BarbershopBackoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAgendaQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAgendaQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/appointments", s.handler.List)
	s.router.POST("/appointments", s.handler.Create)
	s.router.GET("/appointments/:id", s.handler.Get)
	s.router.POST("/appointments/:id/confirm", s.handler.Confirm)
	s.router.POST("/appointments/:id/cancel", s.handler.Cancel)
	s.router.POST("/appointments/:id/complete", s.handler.Complete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func appointmentView(id uuid.UUID, status string) *queries.AppointmentView {
	start := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)
	return &queries.AppointmentView{
		ID:       id,
		BarberID: uuid.New(),
		StartsAt: start,
		EndsAt:   start.Add(30 * time.Minute),
		Status:   status,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"

	barberID := uuid.New()
	serviceID := uuid.New()
	clientID := uuid.New()
	startsAt := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)

	reqBody := map[string]any{
		"barber_id":  barberID.String(),
		"service_id": serviceID.String(),
		"client_id":  clientID.String(),
		"starts_at":  startsAt.Format(time.RFC3339),
		"notes":      "walk-in",
	}
	expectedParams := commands.CreateAppointmentParams{
		BarberID:  barberID,
		ServiceID: serviceID,
		ClientID:  clientID,
		StartsAt:  startsAt,
		Notes:     "walk-in",
	}
	returnView := appointmentView(uuid.New(), "PENDING")

	s.Run("success: returns 201 Created with the booked appointment", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), expectedParams).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response queries.AppointmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("PENDING", response.Status)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		for _, field := range []string{"barber_id", "service_id", "client_id", "starts_at"} {
			s.Run("missing "+field, func() {
				broken := map[string]any{}
				for k, v := range reqBody {
					broken[k] = v
				}
				delete(broken, field)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, broken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: booking rejections map to 409 with a stable reason", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedReason string
		}{
			{
				name:           "outside working hours",
				commandsError:  errs.Mark(errs.New("start is outside working hours"), errs.ErrOutsideWorkingHours),
				expectedReason: booking.ReasonOutsideWorkingHours.String(),
			},
			{
				name:           "time off conflict",
				commandsError:  errs.Mark(errs.New("barber is off"), errs.ErrTimeOffConflict),
				expectedReason: booking.ReasonTimeOffConflict.String(),
			},
			{
				name:           "slot conflict",
				commandsError:  errs.Mark(errs.New("slot already taken"), errs.ErrSlotConflict),
				expectedReason: booking.ReasonSlotConflict.String(),
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), expectedParams).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertRejectionResponse(s.T(), rec, http.StatusConflict, tc.expectedReason)
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
			{
				name:           "barber not found",
				commandsError:  errs.Mark(errs.New("no rows"), errs.ErrBarberNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Barber not found",
			},
			{
				name:           "client not found",
				commandsError:  errs.Mark(errs.New("no rows"), errs.ErrClientNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Client not found",
			},
			{
				name:           "service inactive",
				commandsError:  errs.ErrServiceInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Service is inactive",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), expectedParams).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestList() {
	s.Run("success: lists one barber's agenda", func() {
		barberID := uuid.New()
		result := &queries.AgendaResult{
			Appointments: []*queries.AppointmentView{appointmentView(uuid.New(), "CONFIRMED")},
		}
		s.mockQueries.EXPECT().
			ListRange(gomock.Any(), &barberID, gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?barber_id="+barberID.String(), nil)

		var response resdto.AgendaResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Appointments, 1)
		s.False(response.Partial)
		s.Empty(response.FailedBarbers)
	})

	s.Run("success: partial agenda flags the failed barbers", func() {
		failedID := uuid.New()
		result := &queries.AgendaResult{
			Appointments: []*queries.AppointmentView{appointmentView(uuid.New(), "CONFIRMED")},
			Failed:       map[uuid.UUID]error{failedID: errors.New("connection reset")},
		}
		s.mockQueries.EXPECT().
			ListRange(gomock.Any(), (*uuid.UUID)(nil), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil)

		var response resdto.AgendaResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Appointments, 1)
		s.True(response.Partial)
		s.Equal([]uuid.UUID{failedID}, response.FailedBarbers)
	})

	s.Run("error: 400 Bad Request for invalid barber_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?barber_id=invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid barber_id")
	})

	s.Run("error: 400 Bad Request for malformed range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments?from=yesterday", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().
			ListRange(gomock.Any(), (*uuid.UUID)(nil), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGet() {
	appointmentID := uuid.New()
	url := "/appointments/" + appointmentID.String()

	s.Run("success: returns 200 OK with AppointmentView", func() {
		returnView := appointmentView(appointmentID, "CONFIRMED")
		s.mockQueries.EXPECT().GetAppointment(gomock.Any(), appointmentID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response queries.AppointmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(appointmentID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID")
	})

	s.Run("error: 404 Not Found for missing appointment", func() {
		s.mockQueries.EXPECT().GetAppointment(gomock.Any(), appointmentID).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrAppointmentNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

// ================================================================================
// TestStatusTransitions
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestStatusTransitions() {
	appointmentID := uuid.New()

	s.Run("success: confirm, cancel and complete return the updated view", func() {
		testCases := []struct {
			action string
			expect func() *gomock.Call
			status string
		}{
			{
				action: "confirm",
				expect: func() *gomock.Call {
					return s.mockCommands.EXPECT().Confirm(gomock.Any(), appointmentID)
				},
				status: "CONFIRMED",
			},
			{
				action: "cancel",
				expect: func() *gomock.Call {
					return s.mockCommands.EXPECT().Cancel(gomock.Any(), appointmentID)
				},
				status: "CANCELLED",
			},
			{
				action: "complete",
				expect: func() *gomock.Call {
					return s.mockCommands.EXPECT().Complete(gomock.Any(), appointmentID)
				},
				status: "COMPLETED",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.action, func() {
				tc.expect().Return(appointmentView(appointmentID, tc.status), nil).Times(1)

				url := "/appointments/" + appointmentID.String() + "/" + tc.action
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

				var response queries.AppointmentView
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
				s.Equal(tc.status, response.Status)
			})
		}
	})

	s.Run("error: 409 Conflict when the appointment is already terminal", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), appointmentID).
			Return(nil, errs.Mark(errs.New("already cancelled"), errs.ErrInvalidStatusChange)).Times(1)

		url := "/appointments/" + appointmentID.String() + "/confirm"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled or completed")
	})

	s.Run("error: 404 Not Found for missing appointment", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), appointmentID).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrAppointmentNotFound)).Times(1)

		url := "/appointments/" + appointmentID.String() + "/cancel"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/invalid-uuid/confirm", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID")
	})
}
