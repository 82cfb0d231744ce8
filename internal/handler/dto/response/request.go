package response

import (
	"time"

	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requesterId"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromItemRequestView(rm *queries.ItemRequestView) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          rm.ID,
		RequesterID: rm.RequesterID,
		Description: rm.Description,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromItemRequestViews(rms []*queries.ItemRequestView) []*ItemRequestResponse {
	responses := make([]*ItemRequestResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromItemRequestView(rm)
	}
	return responses
}
