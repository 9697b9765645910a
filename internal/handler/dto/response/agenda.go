package response

import (
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

// AgendaResponse carries whatever appointments could be fetched. When a
// barber's query failed its ID lands in failed_barbers so the caller can
// flag the gap instead of treating the agenda as complete.
type AgendaResponse struct {
	Appointments  []*queries.AppointmentView `json:"appointments"`
	FailedBarbers []uuid.UUID                `json:"failed_barbers,omitempty"`
	Partial       bool                       `json:"partial"`
}

func FromAgendaResult(result *queries.AgendaResult) *AgendaResponse {
	resp := &AgendaResponse{
		Appointments: result.Appointments,
		Partial:      result.PartialFailure(),
	}
	for barberID := range result.Failed {
		resp.FailedBarbers = append(resp.FailedBarbers, barberID)
	}
	return resp
}
