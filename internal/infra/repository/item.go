package repository

import (
	"context"

	"lendit/internal/domain/item"
	"lendit/internal/infra"

	"github.com/google/uuid"
)

type ItemRepository struct {
	db infra.DB
}

func NewItemRepository(db infra.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) (uuid.UUID, error) {
	query, args, err := qb.Insert("items").
		Columns("id", "owner_id", "name", "description", "available", "request_id").
		Values(i.ID(), i.OwnerID(), i.Name(), i.Description(), i.Available(), i.RequestID()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build item insert", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	query, args, err := qb.Update("items").
		Set("name", i.Name()).
		Set("description", i.Description()).
		Set("available", i.Available()).
		Where("id = ?", i.ID()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build item update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
