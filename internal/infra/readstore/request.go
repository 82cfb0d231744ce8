package readstore

import (
	"context"

	"lendit/internal/infra"
	"lendit/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ItemRequestReadStore struct {
	db infra.DB
}

func NewItemRequestReadStore(db infra.DB) *ItemRequestReadStore {
	return &ItemRequestReadStore{db: db}
}

func requestViewQuery() sq.SelectBuilder {
	return qb.Select("id", "requester_id", "description", "created_at").
		From("item_requests")
}

func (r *ItemRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemRequestView, error) {
	query, args, err := requestViewQuery().Where("id = ?", id).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item request view query", err)
	}

	var v queries.ItemRequestView
	err = r.db.QueryRow(ctx, query, args...).Scan(&v.ID, &v.RequesterID, &v.Description, &v.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return &v, nil
}

func (r *ItemRequestReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.ItemRequestView, error) {
	query, args, err := requestViewQuery().
		Where("requester_id = ?", requesterID).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item request view query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	defer rows.Close()

	views := []*queries.ItemRequestView{}
	for rows.Next() {
		var v queries.ItemRequestView
		if err := rows.Scan(&v.ID, &v.RequesterID, &v.Description, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item request row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item request rows", err)
	}
	return views, nil
}
