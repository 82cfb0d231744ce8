package commands

import (
	"context"

	"lendit/internal/domain/user"
	"lendit/internal/infra"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrEmailTaken = errs.New("email already registered")

type CreateUserParams struct {
	Name  string
	Email string
}

type UpdateUserParams struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, params CreateUserParams) (*queries.UserView, error)
	Update(ctx context.Context, userID uuid.UUID, params UpdateUserParams) (*queries.UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	users     UserRepository
	userReads UserReader
	userViews queries.UserViewRepo
}

func NewUserCommands(users UserRepository, userReads UserReader, userViews queries.UserViewRepo) UserCommands {
	return &userCommandsImpl{users: users, userReads: userReads, userViews: userViews}
}

func (uc *userCommandsImpl) Create(ctx context.Context, params CreateUserParams) (*queries.UserView, error) {
	entity, err := user.NewUser(params.Name, params.Email)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureEmailFree(ctx, params.Email); err != nil {
		return nil, err
	}

	id, err := uc.users.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	view, err := uc.userViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, userID uuid.UUID, params UpdateUserParams) (*queries.UserView, error) {
	snap, err := uc.userReads.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	name := snap.Name
	if params.Name != nil {
		name = *params.Name
	}
	email := snap.Email
	if params.Email != nil {
		if err := user.ValidateEmail(*params.Email); err != nil {
			return nil, err
		}
		if *params.Email != snap.Email {
			if err := uc.ensureEmailFree(ctx, *params.Email); err != nil {
				return nil, err
			}
		}
		email = *params.Email
	}

	entity := user.ReconstructUser(userID, name, email)
	if err := uc.users.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	view, err := uc.userViews.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func (uc *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := uc.users.Delete(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

func (uc *userCommandsImpl) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := uc.userReads.EmailExists(ctx, email)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if exists {
		return ErrEmailTaken
	}
	return nil
}
