//go:build unit

package commands_test

import (
	"context"
	"testing"

	"lendit/internal/domain/item"
	"lendit/internal/usecase/commands"
	"lendit/tests/common/builder"
	commandsmock "lendit/tests/mock/commands"
	queriesmock "lendit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemCommandsFixture struct {
	items     *commandsmock.MockItemRepository
	itemViews *queriesmock.MockItemViewRepo
	users     *commandsmock.MockUserReader
	uc        commands.ItemCommands
}

func newItemCommandsFixture(t *testing.T) *itemCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &itemCommandsFixture{
		items:     commandsmock.NewMockItemRepository(ctrl),
		itemViews: queriesmock.NewMockItemViewRepo(ctrl),
		users:     commandsmock.NewMockUserReader(ctrl),
	}
	f.uc = commands.NewItemCommands(f.items, f.itemViews, f.users)
	return f
}

func TestItemCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("basic success case", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		owner := builder.NewUserBuilder()
		b := builder.NewItemBuilder().WithOwnerID(owner.ID)

		f.users.EXPECT().FindByID(gomock.Any(), owner.ID).Return(owner.BuildSnapshot(), nil)
		f.items.EXPECT().Create(gomock.Any(), gomock.Any()).Return(b.ID, nil)
		f.itemViews.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		got, err := f.uc.Create(ctx, commands.CreateItemParams{
			Name:        b.Name,
			Description: b.Description,
			Available:   b.Available,
		}, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, b.Name, got.Name)
		assert.Equal(t, owner.ID, got.OwnerID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		ownerID := uuid.New()

		f.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(nil, notFoundErr())

		got, err := f.uc.Create(ctx, commands.CreateItemParams{
			Name:        "Drill",
			Description: "A drill",
			Available:   true,
		}, ownerID)
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("blank name", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		owner := builder.NewUserBuilder()

		f.users.EXPECT().FindByID(gomock.Any(), owner.ID).Return(owner.BuildSnapshot(), nil)

		got, err := f.uc.Create(ctx, commands.CreateItemParams{
			Name:        "  ",
			Description: "A drill",
			Available:   true,
		}, owner.ID)
		require.Nil(t, got)
		require.ErrorIs(t, err, item.ErrBlankName)
	})
}

func TestItemCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		b := builder.NewItemBuilder()
		unavailable := false

		f.itemViews.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)
		f.items.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i *item.Item) error {
				assert.Equal(t, b.ID, i.ID())
				assert.Equal(t, b.Name, i.Name())
				assert.Equal(t, b.Description, i.Description())
				assert.False(t, i.Available())
				return nil
			})
		f.itemViews.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.WithAvailable(false).BuildView(), nil)

		got, err := f.uc.Update(ctx, b.ID, commands.UpdateItemParams{Available: &unavailable}, b.OwnerID)
		require.NoError(t, err)
		assert.False(t, got.Available)
	})

	t.Run("only the owner may update", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		b := builder.NewItemBuilder()

		f.itemViews.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		got, err := f.uc.Update(ctx, b.ID, commands.UpdateItemParams{}, uuid.New())
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrItemNotOwned)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		id := uuid.New()

		f.itemViews.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		got, err := f.uc.Update(ctx, id, commands.UpdateItemParams{}, uuid.New())
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})
}
