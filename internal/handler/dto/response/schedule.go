package response

import "github.com/google/uuid"

type TimeOffCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
