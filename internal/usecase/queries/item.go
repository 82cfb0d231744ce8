package queries

import (
	"context"
	"strings"

	"lendit/internal/domain/booking"
	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ItemView, error)
	// GetDetail is the item page view: the item, its comments, and the
	// boundary timestamps of its last completed and next upcoming approved
	// bookings.
	GetDetail(ctx context.Context, id uuid.UUID) (*ItemDetailView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type ItemViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	SearchAvailable(ctx context.Context, text string) ([]*ItemView, error)
}

type CommentViewRepo interface {
	FindByItemID(ctx context.Context, itemID uuid.UUID) ([]*CommentView, error)
}

type itemQueriesImpl struct {
	items    ItemViewRepo
	comments CommentViewRepo
	bookings BookingViewRepo
	clock    clock.Clock
}

func NewItemQueries(items ItemViewRepo, comments CommentViewRepo, bookings BookingViewRepo, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		comments: comments,
		bookings: bookings,
		clock:    clk,
	}
}

func (q *itemQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to get item")
	}
	return view, nil
}

func (q *itemQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*ItemDetailView, error) {
	itemView, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := q.comments.FindByItemID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load item comments")
	}

	bookings, err := q.bookings.FindByItemID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load item bookings")
	}

	entries := make([]booking.Entry, len(bookings))
	for i, b := range bookings {
		status, perr := booking.ParseStatus(b.Status)
		if perr != nil {
			return nil, errs.Wrap(perr, "stored booking has unknown status")
		}
		entries[i] = booking.Entry{Start: b.Start, End: b.End, Status: status}
	}
	summary := booking.Summarize(entries, q.clock.Now())

	return &ItemDetailView{
		ID:          itemView.ID,
		OwnerID:     itemView.OwnerID,
		Name:        itemView.Name,
		Description: itemView.Description,
		Available:   itemView.Available,
		Comments:    comments,
		LastBooking: summary.LastEnd,
		NextBooking: summary.NextStart,
	}, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error) {
	return q.items.FindByOwner(ctx, ownerID)
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	return q.items.SearchAvailable(ctx, text)
}
