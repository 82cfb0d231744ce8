package response

import (
	"time"

	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	ItemName   string    `json:"itemName"`
	RenterID   uuid.UUID `json:"renterId"`
	RenterName string    `json:"renterName"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         rm.ID,
		ItemID:     rm.ItemID,
		ItemName:   rm.ItemName,
		RenterID:   rm.RenterID,
		RenterName: rm.RenterName,
		Start:      rm.Start,
		End:        rm.End,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	responses := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromBookingView(rm)
	}
	return responses
}
