package response

import (
	"time"

	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type ItemDetailResponse struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"ownerId"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Available   bool               `json:"available"`
	Comments    []*CommentResponse `json:"comments"`
	LastBooking *time.Time         `json:"lastBooking,omitempty"`
	NextBooking *time.Time         `json:"nextBooking,omitempty"`
}

func FromItemView(rm *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:          rm.ID,
		OwnerID:     rm.OwnerID,
		Name:        rm.Name,
		Description: rm.Description,
		Available:   rm.Available,
		RequestID:   rm.RequestID,
	}
}

func FromItemViews(rms []*queries.ItemView) []*ItemResponse {
	responses := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromItemView(rm)
	}
	return responses
}

func FromItemDetailView(rm *queries.ItemDetailView) *ItemDetailResponse {
	return &ItemDetailResponse{
		ID:          rm.ID,
		OwnerID:     rm.OwnerID,
		Name:        rm.Name,
		Description: rm.Description,
		Available:   rm.Available,
		Comments:    FromCommentViews(rm.Comments),
		LastBooking: rm.LastBooking,
		NextBooking: rm.NextBooking,
	}
}
