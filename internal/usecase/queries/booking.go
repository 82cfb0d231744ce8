package queries

import (
	"context"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"
	"lendit/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByRenter returns the acting user's own bookings, optionally
	// narrowed to one status. Storage order is passed through as-is.
	ListByRenter(ctx context.Context, renterID uuid.UUID, status *booking.Status) ([]*BookingView, error)
	// ListByOwnership returns bookings placed on items the acting user owns.
	ListByOwnership(ctx context.Context, ownerID uuid.UUID, status *booking.Status) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*BookingView, error)
	FindByRenterAndStatus(ctx context.Context, renterID uuid.UUID, status booking.Status) ([]*BookingView, error)
	FindByItemOwner(ctx context.Context, ownerID uuid.UUID) ([]*BookingView, error)
	FindByItemOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status booking.Status) ([]*BookingView, error)
	FindByItemID(ctx context.Context, itemID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to get booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID, status *booking.Status) ([]*BookingView, error) {
	if status != nil {
		return q.repo.FindByRenterAndStatus(ctx, renterID, *status)
	}
	return q.repo.FindByRenter(ctx, renterID)
}

func (q *bookingQueriesImpl) ListByOwnership(ctx context.Context, ownerID uuid.UUID, status *booking.Status) ([]*BookingView, error) {
	if status != nil {
		return q.repo.FindByItemOwnerAndStatus(ctx, ownerID, *status)
	}
	return q.repo.FindByItemOwner(ctx, ownerID)
}
