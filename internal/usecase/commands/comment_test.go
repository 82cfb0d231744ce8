//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/domain/comment"
	"lendit/internal/pkg/clock"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"
	"lendit/tests/common/builder"
	commandsmock "lendit/tests/mock/commands"
	queriesmock "lendit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type commentCommandsFixture struct {
	comments     *commandsmock.MockCommentRepository
	commentViews *queriesmock.MockCommentViewRepo
	bookingReads *commandsmock.MockBookingReader
	items        *commandsmock.MockItemReader
	users        *commandsmock.MockUserReader
	uc           commands.CommentCommands
}

func newCommentCommandsFixture(t *testing.T, now time.Time) *commentCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &commentCommandsFixture{
		comments:     commandsmock.NewMockCommentRepository(ctrl),
		commentViews: queriesmock.NewMockCommentViewRepo(ctrl),
		bookingReads: commandsmock.NewMockBookingReader(ctrl),
		items:        commandsmock.NewMockItemReader(ctrl),
		users:        commandsmock.NewMockUserReader(ctrl),
	}
	f.uc = commands.NewCommentCommands(
		f.comments, f.commentViews, f.bookingReads, f.items, f.users, clock.NewMockClock(now),
	)
	return f
}

func TestCommentCommands_Create(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("author with an ended booking may comment", func(t *testing.T) {
		f := newCommentCommandsFixture(t, now)
		author := builder.NewUserBuilder()
		itemB := builder.NewItemBuilder()
		ended := builder.NewBookingBuilder().
			WithItemID(itemB.ID).WithRenterID(author.ID).AsEnded(now)
		commentID := uuid.New()
		want := builder.NewCommentBuilder().WithItemID(itemB.ID).WithAuthorID(author.ID)
		want.ID = commentID

		f.users.EXPECT().FindByID(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildSnapshot(), nil)
		f.bookingReads.EXPECT().FindByRenter(gomock.Any(), author.ID).
			Return([]*commands.BookingSnapshot{ended.BuildSnapshot()}, nil)
		f.comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(commentID, nil)
		f.commentViews.EXPECT().FindByItemID(gomock.Any(), itemB.ID).
			Return([]*queries.CommentView{want.BuildView()}, nil)

		got, err := f.uc.Create(ctx, commands.CreateCommentParams{
			ItemID: itemB.ID,
			Text:   want.Text,
		}, author.ID)
		require.NoError(t, err)
		assert.Equal(t, commentID, got.ID)
		assert.Equal(t, want.Text, got.Text)
	})

	t.Run("ended booking qualifies regardless of status", func(t *testing.T) {
		// A rejected booking that has run out still grants comment rights;
		// eligibility looks at the window only.
		for _, status := range []booking.Status{booking.StatusWaiting, booking.StatusRejected} {
			t.Run(status.String(), func(t *testing.T) {
				f := newCommentCommandsFixture(t, now)
				author := builder.NewUserBuilder()
				itemB := builder.NewItemBuilder()
				ended := builder.NewBookingBuilder().
					WithItemID(itemB.ID).WithRenterID(author.ID).WithStatus(status).AsEnded(now)
				commentID := uuid.New()
				view := builder.NewCommentBuilder().WithItemID(itemB.ID).WithAuthorID(author.ID)
				view.ID = commentID

				f.users.EXPECT().FindByID(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
				f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildSnapshot(), nil)
				f.bookingReads.EXPECT().FindByRenter(gomock.Any(), author.ID).
					Return([]*commands.BookingSnapshot{ended.BuildSnapshot()}, nil)
				f.comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(commentID, nil)
				f.commentViews.EXPECT().FindByItemID(gomock.Any(), itemB.ID).
					Return([]*queries.CommentView{view.BuildView()}, nil)

				_, err := f.uc.Create(ctx, commands.CreateCommentParams{
					ItemID: itemB.ID,
					Text:   "still counts",
				}, author.ID)
				require.NoError(t, err)
			})
		}
	})

	t.Run("no booking history", func(t *testing.T) {
		f := newCommentCommandsFixture(t, now)
		author := builder.NewUserBuilder()
		itemB := builder.NewItemBuilder()

		f.users.EXPECT().FindByID(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildSnapshot(), nil)
		f.bookingReads.EXPECT().FindByRenter(gomock.Any(), author.ID).
			Return([]*commands.BookingSnapshot{}, nil)

		got, err := f.uc.Create(ctx, commands.CreateCommentParams{ItemID: itemB.ID, Text: "nope"}, author.ID)
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrCommentNotEligible)
	})

	t.Run("ended booking of a different item does not qualify", func(t *testing.T) {
		f := newCommentCommandsFixture(t, now)
		author := builder.NewUserBuilder()
		itemB := builder.NewItemBuilder()
		otherItem := builder.NewBookingBuilder().WithRenterID(author.ID).AsEnded(now)

		f.users.EXPECT().FindByID(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildSnapshot(), nil)
		f.bookingReads.EXPECT().FindByRenter(gomock.Any(), author.ID).
			Return([]*commands.BookingSnapshot{otherItem.BuildSnapshot()}, nil)

		got, err := f.uc.Create(ctx, commands.CreateCommentParams{ItemID: itemB.ID, Text: "nope"}, author.ID)
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrCommentNotEligible)
	})

	t.Run("booking still running does not qualify", func(t *testing.T) {
		f := newCommentCommandsFixture(t, now)
		author := builder.NewUserBuilder()
		itemB := builder.NewItemBuilder()
		running := builder.NewBookingBuilder().
			WithItemID(itemB.ID).WithRenterID(author.ID).
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).
			WithStatus(booking.StatusApproved)

		f.users.EXPECT().FindByID(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildSnapshot(), nil)
		f.bookingReads.EXPECT().FindByRenter(gomock.Any(), author.ID).
			Return([]*commands.BookingSnapshot{running.BuildSnapshot()}, nil)

		got, err := f.uc.Create(ctx, commands.CreateCommentParams{ItemID: itemB.ID, Text: "too early"}, author.ID)
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrCommentNotEligible)
	})

	t.Run("a later ended booking qualifies even when an earlier one has not", func(t *testing.T) {
		f := newCommentCommandsFixture(t, now)
		author := builder.NewUserBuilder()
		itemB := builder.NewItemBuilder()
		running := builder.NewBookingBuilder().
			WithItemID(itemB.ID).WithRenterID(author.ID).
			WithWindow(now.Add(-time.Hour), now.Add(time.Hour))
		ended := builder.NewBookingBuilder().
			WithItemID(itemB.ID).WithRenterID(author.ID).AsEnded(now)
		commentID := uuid.New()
		view := builder.NewCommentBuilder().WithItemID(itemB.ID).WithAuthorID(author.ID)
		view.ID = commentID

		f.users.EXPECT().FindByID(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildSnapshot(), nil)
		f.bookingReads.EXPECT().FindByRenter(gomock.Any(), author.ID).
			Return([]*commands.BookingSnapshot{running.BuildSnapshot(), ended.BuildSnapshot()}, nil)
		f.comments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(commentID, nil)
		f.commentViews.EXPECT().FindByItemID(gomock.Any(), itemB.ID).
			Return([]*queries.CommentView{view.BuildView()}, nil)

		_, err := f.uc.Create(ctx, commands.CreateCommentParams{ItemID: itemB.ID, Text: "fine now"}, author.ID)
		require.NoError(t, err)
	})

	t.Run("unknown author", func(t *testing.T) {
		f := newCommentCommandsFixture(t, now)
		authorID := uuid.New()

		f.users.EXPECT().FindByID(gomock.Any(), authorID).Return(nil, notFoundErr())

		got, err := f.uc.Create(ctx, commands.CreateCommentParams{ItemID: uuid.New(), Text: "x"}, authorID)
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newCommentCommandsFixture(t, now)
		author := builder.NewUserBuilder()
		itemID := uuid.New()

		f.users.EXPECT().FindByID(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		f.items.EXPECT().FindByID(gomock.Any(), itemID).Return(nil, notFoundErr())

		got, err := f.uc.Create(ctx, commands.CreateCommentParams{ItemID: itemID, Text: "x"}, author.ID)
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("blank text", func(t *testing.T) {
		f := newCommentCommandsFixture(t, now)
		author := builder.NewUserBuilder()
		itemB := builder.NewItemBuilder()
		ended := builder.NewBookingBuilder().
			WithItemID(itemB.ID).WithRenterID(author.ID).AsEnded(now)

		f.users.EXPECT().FindByID(gomock.Any(), author.ID).Return(author.BuildSnapshot(), nil)
		f.items.EXPECT().FindByID(gomock.Any(), itemB.ID).Return(itemB.BuildSnapshot(), nil)
		f.bookingReads.EXPECT().FindByRenter(gomock.Any(), author.ID).
			Return([]*commands.BookingSnapshot{ended.BuildSnapshot()}, nil)

		got, err := f.uc.Create(ctx, commands.CreateCommentParams{ItemID: itemB.ID, Text: "   "}, author.ID)
		require.Nil(t, got)
		require.ErrorIs(t, err, comment.ErrEmptyText)
	})
}
