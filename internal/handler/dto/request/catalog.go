package request

import "strings"

type CreateBarberRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBarberRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type ServiceRequest struct {
	Name           string `json:"name" binding:"required"`
	DurationMin    int    `json:"duration_min" binding:"required"`
	BufferAfterMin int    `json:"buffer_after_min"`
	PriceCents     int64  `json:"price_cents"`
}

type ClientRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone string  `json:"phone" binding:"required"`
	Email *string `json:"email,omitempty"`
}

func (r ClientRequest) GetEmail() string {
	if r.Email == nil {
		return ""
	}
	return strings.TrimSpace(*r.Email)
}
