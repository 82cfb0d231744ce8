//go:build unit

package commands_test

import (
	"context"
	"testing"

	"lendit/internal/domain/user"
	"lendit/internal/infra"
	"lendit/internal/usecase/commands"
	"lendit/tests/common/builder"
	commandsmock "lendit/tests/mock/commands"
	queriesmock "lendit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type userCommandsFixture struct {
	users     *commandsmock.MockUserRepository
	userReads *commandsmock.MockUserReader
	userViews *queriesmock.MockUserViewRepo
	uc        commands.UserCommands
}

func newUserCommandsFixture(t *testing.T) *userCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &userCommandsFixture{
		users:     commandsmock.NewMockUserRepository(ctrl),
		userReads: commandsmock.NewMockUserReader(ctrl),
		userViews: queriesmock.NewMockUserViewRepo(ctrl),
	}
	f.uc = commands.NewUserCommands(f.users, f.userReads, f.userViews)
	return f
}

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("basic success case", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		b := builder.NewUserBuilder()

		f.userReads.EXPECT().EmailExists(gomock.Any(), b.Email).Return(false, nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(b.ID, nil)
		f.userViews.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		got, err := f.uc.Create(ctx, commands.CreateUserParams{Name: b.Name, Email: b.Email})
		require.NoError(t, err)
		assert.Equal(t, b.Email, got.Email)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		got, err := f.uc.Create(ctx, commands.CreateUserParams{Name: "Alex", Email: "not-an-email"})
		require.Nil(t, got)
		require.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("email already registered", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		b := builder.NewUserBuilder()

		f.userReads.EXPECT().EmailExists(gomock.Any(), b.Email).Return(true, nil)

		got, err := f.uc.Create(ctx, commands.CreateUserParams{Name: b.Name, Email: b.Email})
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("duplicate key surfacing from the store wins the race", func(t *testing.T) {
		// Two concurrent creates can both pass the pre-check; the unique
		// constraint catches the loser.
		f := newUserCommandsFixture(t)
		b := builder.NewUserBuilder()

		f.userReads.EXPECT().EmailExists(gomock.Any(), b.Email).Return(false, nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert user", nil, infra.KindDuplicateKey))

		got, err := f.uc.Create(ctx, commands.CreateUserParams{Name: b.Name, Email: b.Email})
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})
}

func TestUserCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		b := builder.NewUserBuilder()
		newName := "Alexandra Sharer"

		f.userReads.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.Equal(t, newName, u.Name())
				assert.Equal(t, b.Email, u.Email())
				return nil
			})
		f.userViews.EXPECT().FindByID(gomock.Any(), b.ID).
			Return(b.WithName(newName).BuildView(), nil)

		got, err := f.uc.Update(ctx, b.ID, commands.UpdateUserParams{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, newName, got.Name)
	})

	t.Run("updating to the same email skips the uniqueness check", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		b := builder.NewUserBuilder()
		same := b.Email

		f.userReads.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		f.userViews.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		_, err := f.uc.Update(ctx, b.ID, commands.UpdateUserParams{Email: &same})
		require.NoError(t, err)
	})

	t.Run("new email must be free", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		b := builder.NewUserBuilder()
		taken := "taken@example.com"

		f.userReads.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		f.userReads.EXPECT().EmailExists(gomock.Any(), taken).Return(true, nil)

		got, err := f.uc.Update(ctx, b.ID, commands.UpdateUserParams{Email: &taken})
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("invalid new email", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		b := builder.NewUserBuilder()
		bad := "no-at-sign"

		f.userReads.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)

		got, err := f.uc.Update(ctx, b.ID, commands.UpdateUserParams{Email: &bad})
		require.Nil(t, got)
		require.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		id := uuid.New()

		f.userReads.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		got, err := f.uc.Update(ctx, id, commands.UpdateUserParams{})
		require.Nil(t, got)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})
}

func TestUserCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("basic success case", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		id := uuid.New()

		f.users.EXPECT().Delete(gomock.Any(), id).Return(nil)

		require.NoError(t, f.uc.Delete(ctx, id))
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		id := uuid.New()

		f.users.EXPECT().Delete(gomock.Any(), id).Return(notFoundErr())

		require.ErrorIs(t, f.uc.Delete(ctx, id), commands.ErrUserNotFound)
	})
}
