package repository

import (
	"context"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db infra.DB
}

func NewBookingRepository(db infra.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	query, args, err := qb.Insert("bookings").
		Columns("id", "item_id", "renter_id", "start_at", "end_at", "status", "created_at").
		Values(b.ID(), b.ItemID(), b.RenterID(), b.Window().Start(), b.Window().End(), b.Status().String(), b.CreatedAt()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build booking insert", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	query, args, err := qb.Update("bookings").
		Set("status", status.String()).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking status update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
