package commands

import (
	"context"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrItemUnavailable = errs.New("item unavailable")
	ErrNotOwner        = errs.New("not item owner")
	ErrInvalidWindow   = errs.New("invalid time window")
	// ErrBookingConflict is reserved for overlap detection between bookings
	// of the same item. Nothing raises it today; creating two approved
	// bookings over the same window is currently possible.
	ErrBookingConflict = errs.New("booking conflict")
	ErrStoreFailure    = errs.New("store operation failed")
)

type CreateBookingParams struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	// Create places a WAITING booking on an available item.
	Create(ctx context.Context, params CreateBookingParams, renterID uuid.UUID) (*queries.BookingView, error)
	// Approve moves a booking to APPROVED or REJECTED. Only the item's
	// owner may decide; the renter is refused like anyone else. A booking
	// that was already decided may be decided again the other way.
	Approve(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings     BookingRepository
	bookingReads BookingReader
	items        ItemReader
	views        queries.BookingViewRepo
	clock        clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	bookingReads BookingReader,
	items ItemReader,
	views queries.BookingViewRepo,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:     bookings,
		bookingReads: bookingReads,
		items:        items,
		views:        views,
		clock:        clk,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams, renterID uuid.UUID) (*queries.BookingView, error) {
	itemSnap, err := uc.resolveItem(ctx, params.ItemID)
	if err != nil {
		return nil, err
	}
	if !itemSnap.Available {
		return nil, ErrItemUnavailable
	}

	window, err := booking.NewTimeWindow(params.Start, params.End, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	// No overlap check against existing bookings of the item; see
	// ErrBookingConflict.
	b := booking.NewBooking(params.ItemID, renterID, window, uc.clock.Now())
	id, err := uc.bookings.Create(ctx, b)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	// Read-after-write: return the fully populated view.
	view, err := uc.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func (uc *bookingCommandsImpl) Approve(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error) {
	snap, err := uc.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	itemSnap, err := uc.resolveItem(ctx, snap.ItemID)
	if err != nil {
		return nil, err
	}
	if itemSnap.OwnerID != actorID {
		return nil, ErrNotOwner
	}
	// The save path gates on availability for new and existing bookings
	// alike, so an approval of a booking on a since-delisted item is
	// refused the same way creation would be.
	if !itemSnap.Available {
		return nil, ErrItemUnavailable
	}

	next := snap.Status.Decide(approved)
	if err := uc.bookings.UpdateStatus(ctx, bookingID, next); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	view, err := uc.views.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func (uc *bookingCommandsImpl) resolveItem(ctx context.Context, itemID uuid.UUID) (*ItemSnapshot, error) {
	itemSnap, err := uc.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return itemSnap, nil
}
