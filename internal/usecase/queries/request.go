package queries

import (
	"context"

	"lendit/internal/infra"
	"lendit/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemRequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*ItemRequestView, error)
}

type ItemRequestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemRequestView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*ItemRequestView, error)
}

type itemRequestQueriesImpl struct {
	repo ItemRequestViewRepo
}

func NewItemRequestQueries(repo ItemRequestViewRepo) ItemRequestQueries {
	return &itemRequestQueriesImpl{repo: repo}
}

func (q *itemRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemRequestView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Wrap(err, "failed to get item request")
	}
	return view, nil
}

func (q *itemRequestQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*ItemRequestView, error) {
	return q.repo.FindByRequester(ctx, requesterID)
}
