//go:build e2e

package booking_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/booking"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/response"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/tests/common/dbtest"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/tests/common/httptest"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/api/appointments"
	availabilityURL = "/api/availability"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type seed struct {
	barberID  uuid.UUID
	serviceID uuid.UUID
	clientID  uuid.UUID
}

// seedSchedule sets up one barber working Mondays 09:00-18:00 with a
// 30-minute service and a walk-in client.
func (s *BookingSuite) seedSchedule() seed {
	t := s.T()
	barberID := dbtest.CreateTestBarber(t, s.DB, "Gonçalo")
	serviceID := dbtest.CreateTestService(t, s.DB, "Classic Cut", 30, 15)
	clientID := dbtest.CreateTestClient(t, s.DB, "Rui Costa", "+351912345678")
	dbtest.AddTestWorkingHours(t, s.DB, barberID, 1, "09:00", "18:00")
	return seed{barberID: barberID, serviceID: serviceID, clientID: clientID}
}

// monday returns a fixed far-future Monday so availability is never
// trimmed by the real clock.
func monday(hour, minute int) time.Time {
	return time.Date(2030, 6, 3, hour, minute, 0, 0, time.Local)
}

func (s *BookingSuite) book(sd seed, startsAt time.Time) *queries.AppointmentView {
	t := s.T()
	body := map[string]any{
		"barber_id":  sd.barberID.String(),
		"service_id": sd.serviceID.String(),
		"client_id":  sd.clientID.String(),
		"starts_at":  startsAt.Format(time.RFC3339),
	}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body)

	var view queries.AppointmentView
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &view)
	return &view
}

func (s *BookingSuite) tryBook(sd seed, startsAt time.Time) *nethttptest.ResponseRecorder {
	body := map[string]any{
		"barber_id":  sd.barberID.String(),
		"service_id": sd.serviceID.String(),
		"client_id":  sd.clientID.String(),
		"starts_at":  startsAt.Format(time.RFC3339),
	}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, body)
}

func (s *BookingSuite) daySlots(sd seed, date string) []string {
	t := s.T()
	url := availabilityURL + "?barber_id=" + sd.barberID.String() +
		"&service_id=" + sd.serviceID.String() + "&date=" + date

	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)

	var resp response.AvailabilityResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
	return resp.Slots
}

func (s *BookingSuite) TestBookingFlow() {
	s.Run("booking a free slot blocks it for the next client", func() {
		sd := s.seedSchedule()
		startsAt := monday(10, 0)

		slots := s.daySlots(sd, "2030-06-03")
		require.Contains(s.T(), slots, "10:00")

		view := s.book(sd, startsAt)

		expected := queries.AppointmentView{
			BarberID:  sd.barberID,
			ServiceID: sd.serviceID,
			ClientID:  sd.clientID,
			StartsAt:  startsAt,
			EndsAt:    startsAt.Add(30 * time.Minute),
			Status:    "PENDING",
		}
		diff := cmp.Diff(expected, *view,
			cmpopts.IgnoreFields(queries.AppointmentView{}, "ID", "Notes", "CreatedAt", "UpdatedAt"))
		s.Empty(diff)

		// The 45-minute service block (30 duration + 15 buffer) hides
		// every start that would run into the booking; back-to-back
		// starts stay offerable.
		slots = s.daySlots(sd, "2030-06-03")
		s.Contains(slots, "09:15")
		s.NotContains(slots, "09:30")
		s.NotContains(slots, "10:00")
		s.NotContains(slots, "10:15")
		s.Contains(slots, "10:30")
	})

	s.Run("double booking is rejected with SLOT_CONFLICT", func() {
		sd := s.seedSchedule()
		s.book(sd, monday(10, 0))

		rec := s.tryBook(sd, monday(10, 0))
		httptest.AssertRejectionResponse(s.T(), rec, http.StatusConflict,
			booking.ReasonSlotConflict.String())

		rec = s.tryBook(sd, monday(10, 15))
		httptest.AssertRejectionResponse(s.T(), rec, http.StatusConflict,
			booking.ReasonSlotConflict.String())
	})

	s.Run("booking outside working hours is rejected", func() {
		sd := s.seedSchedule()

		rec := s.tryBook(sd, monday(8, 0))
		httptest.AssertRejectionResponse(s.T(), rec, http.StatusConflict,
			booking.ReasonOutsideWorkingHours.String())

		// Sunday is not a working day at all.
		sunday := time.Date(2030, 6, 2, 10, 0, 0, 0, time.Local)
		rec = s.tryBook(sd, sunday)
		httptest.AssertRejectionResponse(s.T(), rec, http.StatusConflict,
			booking.ReasonOutsideWorkingHours.String())
	})

	s.Run("time off shadows its interval but not its edges", func() {
		sd := s.seedSchedule()
		dbtest.AddTestTimeOff(s.T(), s.DB, sd.barberID, monday(12, 0), monday(14, 0), "lunch")

		rec := s.tryBook(sd, monday(12, 30))
		httptest.AssertRejectionResponse(s.T(), rec, http.StatusConflict,
			booking.ReasonTimeOffConflict.String())

		view := s.book(sd, monday(14, 0))
		s.Equal("PENDING", view.Status)
	})

	s.Run("cancelling releases the slot for rebooking", func() {
		sd := s.seedSchedule()
		first := s.book(sd, monday(10, 0))

		cancelURL := appointmentsURL + "/" + first.ID.String() + "/cancel"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil)

		var cancelled queries.AppointmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cancelled)
		s.Equal("CANCELLED", cancelled.Status)

		second := s.book(sd, monday(10, 0))
		s.NotEqual(first.ID, second.ID)
	})

	s.Run("confirm and complete walk the status lifecycle", func() {
		sd := s.seedSchedule()
		view := s.book(sd, monday(10, 0))
		base := appointmentsURL + "/" + view.ID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/confirm", nil)
		var confirmed queries.AppointmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &confirmed)
		s.Equal("CONFIRMED", confirmed.Status)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/complete", nil)
		var completed queries.AppointmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &completed)
		s.Equal("COMPLETED", completed.Status)

		// Terminal states reject further transitions.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/cancel", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}
