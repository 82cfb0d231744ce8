package readstore

import (
	"context"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BookingReadStore struct {
	db infra.DB
}

func NewBookingReadStore(db infra.DB) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func bookingViewQuery() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.item_id", "i.name", "b.renter_id", "u.name",
		"b.start_at", "b.end_at", "b.status", "b.created_at",
	).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.renter_id")
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := bookingViewQuery().Where("b.id = ?", id).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking view query", err)
	}

	var v queries.BookingView
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.ItemID, &v.ItemName, &v.RenterID, &v.RenterName,
		&v.Start, &v.End, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

func (r *BookingReadStore) FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*queries.BookingView, error) {
	return r.findViews(ctx, bookingViewQuery().Where("b.renter_id = ?", renterID))
}

func (r *BookingReadStore) FindByRenterAndStatus(ctx context.Context, renterID uuid.UUID, status booking.Status) ([]*queries.BookingView, error) {
	return r.findViews(ctx, bookingViewQuery().
		Where("b.renter_id = ?", renterID).
		Where("b.status = ?", status.String()))
}

func (r *BookingReadStore) FindByItemOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.BookingView, error) {
	return r.findViews(ctx, bookingViewQuery().Where("i.owner_id = ?", ownerID))
}

func (r *BookingReadStore) FindByItemOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status booking.Status) ([]*queries.BookingView, error) {
	return r.findViews(ctx, bookingViewQuery().
		Where("i.owner_id = ?", ownerID).
		Where("b.status = ?", status.String()))
}

func (r *BookingReadStore) FindByItemID(ctx context.Context, itemID uuid.UUID) ([]*queries.BookingView, error) {
	return r.findViews(ctx, bookingViewQuery().Where("b.item_id = ?", itemID))
}

func (r *BookingReadStore) findViews(ctx context.Context, builder sq.SelectBuilder) ([]*queries.BookingView, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking view query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.ItemID, &v.ItemName, &v.RenterID, &v.RenterName,
			&v.Start, &v.End, &v.Status, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

// Command-side snapshot reads.

func (r *BookingReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	query, args, err := qb.Select("id", "item_id", "renter_id", "start_at", "end_at", "status").
		From("bookings").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking snapshot query", err)
	}

	var snap commands.BookingSnapshot
	var status string
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.ItemID, &snap.RenterID, &snap.Start, &snap.End, &status,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

func (r *BookingReadStore) SnapshotsByRenter(ctx context.Context, renterID uuid.UUID) ([]*commands.BookingSnapshot, error) {
	query, args, err := qb.Select("id", "item_id", "renter_id", "start_at", "end_at", "status").
		From("bookings").
		Where("renter_id = ?", renterID).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking snapshot query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by renter", err)
	}
	defer rows.Close()

	snaps := []*commands.BookingSnapshot{}
	for rows.Next() {
		var snap commands.BookingSnapshot
		var status string
		if err := rows.Scan(&snap.ID, &snap.ItemID, &snap.RenterID, &snap.Start, &snap.End, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		snap.Status = booking.Status(status)
		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return snaps, nil
}

// bookingReaderAdapter exposes the snapshot reads under the command-side
// interface names.
type bookingReaderAdapter struct {
	store *BookingReadStore
}

func NewBookingReader(db infra.DB) commands.BookingReader {
	return &bookingReaderAdapter{store: NewBookingReadStore(db)}
}

func (a *bookingReaderAdapter) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	return a.store.Snapshot(ctx, id)
}

func (a *bookingReaderAdapter) FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*commands.BookingSnapshot, error) {
	return a.store.SnapshotsByRenter(ctx, renterID)
}
