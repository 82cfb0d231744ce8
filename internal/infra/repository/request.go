package repository

import (
	"context"

	"lendit/internal/domain/request"
	"lendit/internal/infra"

	"github.com/google/uuid"
)

type ItemRequestRepository struct {
	db infra.DB
}

func NewItemRequestRepository(db infra.DB) *ItemRequestRepository {
	return &ItemRequestRepository{db: db}
}

func (r *ItemRequestRepository) Create(ctx context.Context, req *request.ItemRequest) (uuid.UUID, error) {
	query, args, err := qb.Insert("item_requests").
		Columns("id", "requester_id", "description", "created_at").
		Values(req.ID(), req.RequesterID(), req.Description(), req.CreatedAt()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build item request insert", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item request", err)
	}
	return id, nil
}
