package request

import (
	"strings"
	"time"
)

type AddWorkingHoursRequest struct {
	// DayOfWeek follows ISO-8601: Monday is 1, Sunday is 7.
	DayOfWeek int    `json:"day_of_week" binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type AddTimeOffRequest struct {
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
	Reason   *string   `json:"reason,omitempty"`
}

func (r AddTimeOffRequest) GetReason() string {
	if r.Reason == nil {
		return ""
	}
	return strings.TrimSpace(*r.Reason)
}
