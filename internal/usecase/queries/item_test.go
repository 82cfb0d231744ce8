//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/pkg/clock"
	"lendit/internal/usecase/queries"
	"lendit/tests/common/builder"
	queriesmock "lendit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemQueriesFixture struct {
	items    *queriesmock.MockItemViewRepo
	comments *queriesmock.MockCommentViewRepo
	bookings *queriesmock.MockBookingViewRepo
	clock    *clock.MockClock
	q        queries.ItemQueries
}

func newItemQueriesFixture(t *testing.T, now time.Time) *itemQueriesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &itemQueriesFixture{
		items:    queriesmock.NewMockItemViewRepo(ctrl),
		comments: queriesmock.NewMockCommentViewRepo(ctrl),
		bookings: queriesmock.NewMockBookingViewRepo(ctrl),
		clock:    clock.NewMockClock(now),
	}
	f.q = queries.NewItemQueries(f.items, f.comments, f.bookings, f.clock)
	return f
}

func TestItemQueries_GetDetail(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("boundaries come from approved bookings only", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)
		itemB := builder.NewItemBuilder()

		pastEnd := now.Add(-24 * time.Hour)
		nextStart := now.Add(24 * time.Hour)
		bookings := []*queries.BookingView{
			builder.NewBookingBuilder().WithItemID(itemB.ID).
				WithWindow(now.Add(-48*time.Hour), pastEnd).
				WithStatus(booking.StatusApproved).BuildView(),
			builder.NewBookingBuilder().WithItemID(itemB.ID).
				WithWindow(nextStart, now.Add(48*time.Hour)).
				WithStatus(booking.StatusApproved).BuildView(),
			// Closer on both sides but never approved.
			builder.NewBookingBuilder().WithItemID(itemB.ID).
				WithWindow(now.Add(-2*time.Hour), now.Add(-time.Hour)).
				WithStatus(booking.StatusWaiting).BuildView(),
		}

		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildView(), nil)
		f.comments.EXPECT().FindByItemID(gomock.Any(), itemB.ID).Return([]*queries.CommentView{}, nil)
		f.bookings.EXPECT().FindByItemID(gomock.Any(), itemB.ID).Return(bookings, nil)

		got, err := f.q.GetDetail(ctx, itemB.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastBooking)
		require.NotNil(t, got.NextBooking)
		assert.True(t, got.LastBooking.Equal(pastEnd))
		assert.True(t, got.NextBooking.Equal(nextStart))
	})

	t.Run("no approved bookings leaves both boundaries nil", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)
		itemB := builder.NewItemBuilder()

		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildView(), nil)
		f.comments.EXPECT().FindByItemID(gomock.Any(), itemB.ID).Return([]*queries.CommentView{}, nil)
		f.bookings.EXPECT().FindByItemID(gomock.Any(), itemB.ID).Return([]*queries.BookingView{}, nil)

		got, err := f.q.GetDetail(ctx, itemB.ID)
		require.NoError(t, err)
		assert.Nil(t, got.LastBooking)
		assert.Nil(t, got.NextBooking)
	})

	t.Run("comments ride along on the detail view", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)
		itemB := builder.NewItemBuilder()
		comments := []*queries.CommentView{
			builder.NewCommentBuilder().WithItemID(itemB.ID).BuildView(),
			builder.NewCommentBuilder().WithItemID(itemB.ID).BuildView(),
		}

		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildView(), nil)
		f.comments.EXPECT().FindByItemID(gomock.Any(), itemB.ID).Return(comments, nil)
		f.bookings.EXPECT().FindByItemID(gomock.Any(), itemB.ID).Return([]*queries.BookingView{}, nil)

		got, err := f.q.GetDetail(ctx, itemB.ID)
		require.NoError(t, err)
		assert.Len(t, got.Comments, 2)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)
		id := uuid.New()

		f.items.EXPECT().FindByID(gomock.Any(), id).Return(nil, noRowsErr())

		got, err := f.q.GetDetail(ctx, id)
		require.Nil(t, got)
		require.ErrorIs(t, err, queries.ErrItemNotFound)
	})

	t.Run("stored booking with corrupt status is an error", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)
		itemB := builder.NewItemBuilder()

		corrupt := builder.NewBookingBuilder().WithItemID(itemB.ID).BuildView()
		corrupt.Status = "PENDING"

		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildView(), nil)
		f.comments.EXPECT().FindByItemID(gomock.Any(), itemB.ID).Return([]*queries.CommentView{}, nil)
		f.bookings.EXPECT().FindByItemID(gomock.Any(), itemB.ID).Return([]*queries.BookingView{corrupt}, nil)

		got, err := f.q.GetDetail(ctx, itemB.ID)
		require.Nil(t, got)
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestItemQueries_Search(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("passes the text through to the store", func(t *testing.T) {
		f := newItemQueriesFixture(t, now)

		views := []*queries.ItemView{builder.NewItemBuilder().BuildView()}
		f.items.EXPECT().SearchAvailable(gomock.Any(), "drill").Return(views, nil)

		got, err := f.q.Search(ctx, "drill")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("blank text short-circuits without touching the store", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\t"} {
			f := newItemQueriesFixture(t, now)

			got, err := f.q.Search(ctx, text)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		}
	})
}
