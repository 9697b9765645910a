//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"
	queriesmock "github.com/GoncaloFernandes8/BarbershopBackoffice/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func agendaView(barberID uuid.UUID, start time.Time) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:       uuid.New(),
		BarberID: barberID,
		StartsAt: start,
		EndsAt:   start.Add(30 * time.Minute),
		Status:   "CONFIRMED",
	}
}

func TestAgendaListRange_SingleBarber(t *testing.T) {
	ctrl := gomock.NewController(t)
	appointments := queriesmock.NewMockAppointmentReadStore(ctrl)
	barbers := queriesmock.NewMockBarberReadStore(ctrl)

	barberID := uuid.New()
	from := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	views := []*queries.AppointmentView{agendaView(barberID, from.Add(10 * time.Hour))}

	appointments.EXPECT().
		FindByBarberInRange(gomock.Any(), barberID, from, to).
		Return(views, nil)

	q := queries.NewAgendaQueries(appointments, barbers)
	result, err := q.ListRange(context.Background(), &barberID, from, to)
	require.NoError(t, err)
	assert.Equal(t, views, result.Appointments)
	assert.False(t, result.PartialFailure())
}

func TestAgendaListRange_SingleBarberError(t *testing.T) {
	ctrl := gomock.NewController(t)
	appointments := queriesmock.NewMockAppointmentReadStore(ctrl)
	barbers := queriesmock.NewMockBarberReadStore(ctrl)

	barberID := uuid.New()
	from := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	appointments.EXPECT().
		FindByBarberInRange(gomock.Any(), barberID, from, to).
		Return(nil, errors.New("query timeout"))

	q := queries.NewAgendaQueries(appointments, barbers)
	_, err := q.ListRange(context.Background(), &barberID, from, to)
	assert.Error(t, err)
}

func TestAgendaListRange_FanOutPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	appointments := queriesmock.NewMockAppointmentReadStore(ctrl)
	barbers := queriesmock.NewMockBarberReadStore(ctrl)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	from := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	barberViews := make([]*queries.BarberView, len(ids))
	for i, id := range ids {
		barberViews[i] = &queries.BarberView{ID: id, Name: "Barber", Active: true}
	}
	barbers.EXPECT().FindActive(gomock.Any()).Return(barberViews, nil)

	failure := errors.New("connection reset")
	appointments.EXPECT().
		FindByBarberInRange(gomock.Any(), ids[0], from, to).
		Return([]*queries.AppointmentView{agendaView(ids[0], from.Add(9 * time.Hour))}, nil)
	appointments.EXPECT().
		FindByBarberInRange(gomock.Any(), ids[1], from, to).
		Return(nil, failure)
	appointments.EXPECT().
		FindByBarberInRange(gomock.Any(), ids[2], from, to).
		Return([]*queries.AppointmentView{agendaView(ids[2], from.Add(11 * time.Hour))}, nil)

	q := queries.NewAgendaQueries(appointments, barbers)
	result, err := q.ListRange(context.Background(), nil, from, to)
	require.NoError(t, err)

	// One barber failing must not swallow the other two.
	assert.Len(t, result.Appointments, 2)
	assert.True(t, result.PartialFailure())
	require.Len(t, result.Failed, 1)
	assert.ErrorIs(t, result.Failed[ids[1]], failure)
}

func TestAgendaListRange_NoActiveBarbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	appointments := queriesmock.NewMockAppointmentReadStore(ctrl)
	barbers := queriesmock.NewMockBarberReadStore(ctrl)

	from := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	barbers.EXPECT().FindActive(gomock.Any()).Return([]*queries.BarberView{}, nil)

	q := queries.NewAgendaQueries(appointments, barbers)
	result, err := q.ListRange(context.Background(), nil, from, to)
	require.NoError(t, err)
	assert.Empty(t, result.Appointments)
	assert.False(t, result.PartialFailure())
}

func TestAgendaListRange_BarberListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	appointments := queriesmock.NewMockAppointmentReadStore(ctrl)
	barbers := queriesmock.NewMockBarberReadStore(ctrl)

	from := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	barbers.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("db down"))

	q := queries.NewAgendaQueries(appointments, barbers)
	_, err := q.ListRange(context.Background(), nil, from, to)
	assert.Error(t, err)
}
