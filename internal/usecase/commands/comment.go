package commands

import (
	"context"

	"lendit/internal/domain/booking"
	"lendit/internal/domain/comment"
	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrCommentNotEligible = errs.New("comment requires a past booking")
)

type CreateCommentParams struct {
	ItemID uuid.UUID
	Text   string
}

type CommentCommands interface {
	// Create posts a comment on an item, gated by the author's booking
	// history: the author must have a booking of the item whose end has
	// already passed.
	Create(ctx context.Context, params CreateCommentParams, authorID uuid.UUID) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	comments     CommentRepository
	commentViews queries.CommentViewRepo
	bookingReads BookingReader
	items        ItemReader
	users        UserReader
	clock        clock.Clock
}

func NewCommentCommands(
	comments CommentRepository,
	commentViews queries.CommentViewRepo,
	bookingReads BookingReader,
	items ItemReader,
	users UserReader,
	clk clock.Clock,
) CommentCommands {
	return &commentCommandsImpl{
		comments:     comments,
		commentViews: commentViews,
		bookingReads: bookingReads,
		items:        items,
		users:        users,
		clock:        clk,
	}
}

func (uc *commentCommandsImpl) Create(ctx context.Context, params CreateCommentParams, authorID uuid.UUID) (*queries.CommentView, error) {
	if _, err := uc.users.FindByID(ctx, authorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	itemSnap, err := uc.items.FindByID(ctx, params.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if err := uc.checkEligibility(ctx, authorID, itemSnap.ID); err != nil {
		return nil, err
	}

	c, err := comment.NewComment(params.ItemID, authorID, params.Text, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	id, err := uc.comments.Create(ctx, c)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	views, err := uc.commentViews.FindByItemID(ctx, params.ItemID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	for _, v := range views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, errs.Mark(errs.New("created comment missing from read store"), ErrStoreFailure)
}

// checkEligibility grants comment rights the moment the author has any
// booking of the item whose end lies in the past. The booking's status is
// not consulted, so a WAITING or REJECTED booking that has run out still
// qualifies; this mirrors how the service has always behaved and callers
// depend on it.
func (uc *commentCommandsImpl) checkEligibility(ctx context.Context, authorID, itemID uuid.UUID) error {
	bookings, err := uc.bookingReads.FindByRenter(ctx, authorID)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	now := uc.clock.Now()
	for _, b := range bookings {
		window := booking.ReconstructTimeWindow(b.Start, b.End)
		if b.ItemID == itemID && window.HasEnded(now) {
			return nil
		}
	}
	return ErrCommentNotEligible
}
