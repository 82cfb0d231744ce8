//go:build unit || e2e

package builder

import (
	"time"

	dombooking "lendit/internal/domain/booking"
	reqdto "lendit/internal/handler/dto/request"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ItemName   string
	RenterID   uuid.UUID
	RenterName string
	Start      time.Time
	End        time.Time
	Status     dombooking.Status
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		ItemName:   "Cordless drill",
		RenterID:   uuid.New(),
		RenterName: "Alex Sharer",
		Start:      now.Add(24 * time.Hour),
		End:        now.Add(48 * time.Hour),
		Status:     dombooking.StatusWaiting,
		CreatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithItemID(itemID uuid.UUID) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithRenterID(renterID uuid.UUID) *BookingBuilder {
	b.RenterID = renterID
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

// AsEnded shifts the window entirely into the past relative to now.
func (b *BookingBuilder) AsEnded(now time.Time) *BookingBuilder {
	b.Start = now.Add(-48 * time.Hour)
	b.End = now.Add(-24 * time.Hour)
	return b
}

func (b *BookingBuilder) BuildDomain(now time.Time) (*dombooking.Booking, error) {
	window, err := dombooking.NewTimeWindow(b.Start, b.End, now)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ItemID, b.RenterID, window, now), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildCreateParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		ItemID:     b.ItemID,
		ItemName:   b.ItemName,
		RenterID:   b.RenterID,
		RenterName: b.RenterName,
		Start:      b.Start,
		End:        b.End,
		Status:     b.Status.String(),
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:       b.ID,
		ItemID:   b.ItemID,
		RenterID: b.RenterID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status,
	}
}
