package commands

import (
	"context"

	"lendit/internal/domain/item"
	"lendit/internal/infra"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrItemNotOwned = errs.New("item not owned by user")

type CreateItemParams struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, params CreateItemParams, ownerID uuid.UUID) (*queries.ItemView, error)
	Update(ctx context.Context, itemID uuid.UUID, params UpdateItemParams, actorID uuid.UUID) (*queries.ItemView, error)
}

type itemCommandsImpl struct {
	items     ItemRepository
	itemViews queries.ItemViewRepo
	users     UserReader
}

func NewItemCommands(items ItemRepository, itemViews queries.ItemViewRepo, users UserReader) ItemCommands {
	return &itemCommandsImpl{items: items, itemViews: itemViews, users: users}
}

func (uc *itemCommandsImpl) Create(ctx context.Context, params CreateItemParams, ownerID uuid.UUID) (*queries.ItemView, error) {
	if _, err := uc.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	entity, err := item.NewItem(ownerID, params.Name, params.Description, params.Available, params.RequestID)
	if err != nil {
		return nil, err
	}
	id, err := uc.items.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	view, err := uc.itemViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func (uc *itemCommandsImpl) Update(ctx context.Context, itemID uuid.UUID, params UpdateItemParams, actorID uuid.UUID) (*queries.ItemView, error) {
	current, err := uc.itemViews.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if current.OwnerID != actorID {
		return nil, ErrItemNotOwned
	}

	name := current.Name
	if params.Name != nil {
		name = *params.Name
	}
	description := current.Description
	if params.Description != nil {
		description = *params.Description
	}
	available := current.Available
	if params.Available != nil {
		available = *params.Available
	}

	entity := item.ReconstructItem(current.ID, current.OwnerID, name, description, available, current.RequestID)
	if err := uc.items.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	view, err := uc.itemViews.FindByID(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}
