package commands

import (
	"context"

	"lendit/internal/domain/request"
	"lendit/internal/infra"
	"lendit/internal/pkg/clock"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateItemRequestParams struct {
	Description string
}

type ItemRequestCommands interface {
	Create(ctx context.Context, params CreateItemRequestParams, requesterID uuid.UUID) (*queries.ItemRequestView, error)
}

type itemRequestCommandsImpl struct {
	requests     ItemRequestRepository
	requestViews queries.ItemRequestViewRepo
	users        UserReader
	clock        clock.Clock
}

func NewItemRequestCommands(
	requests ItemRequestRepository,
	requestViews queries.ItemRequestViewRepo,
	users UserReader,
	clk clock.Clock,
) ItemRequestCommands {
	return &itemRequestCommandsImpl{
		requests:     requests,
		requestViews: requestViews,
		users:        users,
		clock:        clk,
	}
}

func (uc *itemRequestCommandsImpl) Create(ctx context.Context, params CreateItemRequestParams, requesterID uuid.UUID) (*queries.ItemRequestView, error) {
	if _, err := uc.users.FindByID(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	entity, err := request.NewItemRequest(requesterID, params.Description, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	id, err := uc.requests.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	view, err := uc.requestViews.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}
