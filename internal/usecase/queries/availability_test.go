//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/appointment"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/domain/schedule"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/infra"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/clock"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/config"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/pkg/errs"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"
	queriesmock "github.com/GoncaloFernandes8/BarbershopBackoffice/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	barbers  *queriesmock.MockBarberReadStore
	services *queriesmock.MockServiceReadStore
	sched    *queriesmock.MockScheduleSnapshotStore
	booked   *queriesmock.MockBookedIntervalStore
	clock    *clock.MockClock

	barberID  uuid.UUID
	serviceID uuid.UUID
	monday    time.Time
}

func TestAvailabilityTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityTestSuite))
}

func (s *AvailabilityTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.barbers = queriesmock.NewMockBarberReadStore(s.ctrl)
	s.services = queriesmock.NewMockServiceReadStore(s.ctrl)
	s.sched = queriesmock.NewMockScheduleSnapshotStore(s.ctrl)
	s.booked = queriesmock.NewMockBookedIntervalStore(s.ctrl)

	s.barberID = uuid.New()
	s.serviceID = uuid.New()
	// 2025-10-20 is a Monday.
	s.monday = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.monday)
}

func (s *AvailabilityTestSuite) newQueries() queries.AvailabilityQueries {
	cfg := config.BookingConfig{DayStartHour: 8, DayEndHour: 20, SlotGranularityMin: 15}
	return queries.NewAvailabilityQueries(s.barbers, s.services, s.sched, s.booked, s.clock, cfg)
}

func (s *AvailabilityTestSuite) at(hour, minute int) time.Time {
	return time.Date(2025, 10, 20, hour, minute, 0, 0, time.UTC)
}

func (s *AvailabilityTestSuite) expectCatalog() {
	s.barbers.EXPECT().FindByID(gomock.Any(), s.barberID).
		Return(&queries.BarberView{ID: s.barberID, Name: "Gonçalo", Active: true}, nil)
	s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).
		Return(&queries.ServiceView{ID: s.serviceID, Name: "Cut", DurationMin: 30, BufferAfterMin: 15, Active: true}, nil)
}

func (s *AvailabilityTestSuite) expectSchedule() {
	start, err := schedule.ParseTimeOfDay("09:00")
	require.NoError(s.T(), err)
	end, err := schedule.ParseTimeOfDay("12:00")
	require.NoError(s.T(), err)
	window, err := schedule.NewWorkingWindow(s.barberID, schedule.Monday, start, end)
	require.NoError(s.T(), err)

	off, err := schedule.NewTimeOffPeriod(s.barberID, s.at(10, 0), s.at(11, 0), "errand")
	require.NoError(s.T(), err)

	interval, err := appointment.NewInterval(s.at(9, 0), s.at(9, 30))
	require.NoError(s.T(), err)
	booked := appointment.NewAppointment(s.barberID, s.serviceID, uuid.New(), interval, "")

	s.sched.EXPECT().WorkingWindows(gomock.Any(), s.barberID).
		Return([]schedule.WorkingWindow{window}, nil)
	s.sched.EXPECT().TimeOffInRange(gomock.Any(), s.barberID, gomock.Any(), gomock.Any()).
		Return([]schedule.TimeOffPeriod{off}, nil)
	s.booked.EXPECT().BlockingInRange(gomock.Any(), s.barberID, gomock.Any(), gomock.Any()).
		Return([]*appointment.Appointment{booked}, nil)
}

func (s *AvailabilityTestSuite) TestDaySlots() {
	s.expectCatalog()
	s.expectSchedule()

	slots, err := s.newQueries().DaySlots(context.Background(), s.barberID, s.serviceID, s.monday)
	s.Require().NoError(err)

	// Service spacing is 45 minutes (30 duration + 15 buffer). The
	// morning is blocked by the 09:00 booking and the 10:00-11:00 time
	// off; 12:00 is offered because the closing bound is inclusive.
	s.Equal([]string{"11:00", "11:15", "11:30", "11:45", "12:00"}, slots)
}

func (s *AvailabilityTestSuite) TestDaySlotsSkipsPastTimes() {
	s.expectCatalog()
	s.expectSchedule()
	s.clock.Set(s.at(11, 10))

	slots, err := s.newQueries().DaySlots(context.Background(), s.barberID, s.serviceID, s.monday)
	s.Require().NoError(err)
	s.Equal([]string{"11:15", "11:30", "11:45", "12:00"}, slots)
}

func (s *AvailabilityTestSuite) TestDaySlotsInactiveBarber() {
	s.barbers.EXPECT().FindByID(gomock.Any(), s.barberID).
		Return(&queries.BarberView{ID: s.barberID, Name: "Gonçalo", Active: false}, nil)

	_, err := s.newQueries().DaySlots(context.Background(), s.barberID, s.serviceID, s.monday)
	s.ErrorIs(err, errs.ErrBarberInactive)
}

func (s *AvailabilityTestSuite) TestDaySlotsUnknownService() {
	s.barbers.EXPECT().FindByID(gomock.Any(), s.barberID).
		Return(&queries.BarberView{ID: s.barberID, Name: "Gonçalo", Active: true}, nil)
	s.services.EXPECT().FindByID(gomock.Any(), s.serviceID).
		Return(nil, infra.WrapRepoErr("no rows", errors.New("no rows"), infra.KindNotFound))

	_, err := s.newQueries().DaySlots(context.Background(), s.barberID, s.serviceID, s.monday)
	s.ErrorIs(err, errs.ErrServiceNotFound)
}
