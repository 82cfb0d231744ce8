package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a time-bounded claim by a renter on an item. It owns its own
// status and dates and holds non-owning references (by id) to the item and
// the renter.
type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	renterID  uuid.UUID
	window    TimeWindow
	status    Status
	createdAt time.Time
}

// NewBooking creates a booking in the WAITING state. createdAt is set once
// here and never modified.
func NewBooking(itemID, renterID uuid.UUID, window TimeWindow, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		itemID:    itemID,
		renterID:  renterID,
		window:    window,
		status:    StatusWaiting,
		createdAt: now,
	}
}

func ReconstructBooking(id, itemID, renterID uuid.UUID, window TimeWindow, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		renterID:  renterID,
		window:    window,
		status:    status,
		createdAt: createdAt,
	}
}

func (b *Booking) Decide(approved bool) {
	b.status = b.status.Decide(approved)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) RenterID() uuid.UUID  { return b.renterID }
func (b *Booking) Window() TimeWindow   { return b.window }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
