package readstore

import (
	"context"

	"lendit/internal/infra"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ItemReadStore struct {
	db infra.DB
}

func NewItemReadStore(db infra.DB) *ItemReadStore {
	return &ItemReadStore{db: db}
}

func itemViewQuery() sq.SelectBuilder {
	return qb.Select("id", "owner_id", "name", "description", "available", "request_id").
		From("items")
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	query, args, err := itemViewQuery().Where("id = ?", id).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item view query", err)
	}

	var v queries.ItemView
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Available, &v.RequestID,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return &v, nil
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	return r.findViews(ctx, itemViewQuery().Where("owner_id = ?", ownerID))
}

// SearchAvailable matches the text against name and description,
// case-insensitively, over available items only.
func (r *ItemReadStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemView, error) {
	pattern := "%" + text + "%"
	return r.findViews(ctx, itemViewQuery().
		Where("available = TRUE").
		Where(sq.Or{
			sq.Expr("name ILIKE ?", pattern),
			sq.Expr("description ILIKE ?", pattern),
		}))
}

func (r *ItemReadStore) findViews(ctx context.Context, builder sq.SelectBuilder) ([]*queries.ItemView, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item view query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := []*queries.ItemView{}
	for rows.Next() {
		var v queries.ItemView
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Available, &v.RequestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}

func (r *ItemReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*commands.ItemSnapshot, error) {
	query, args, err := qb.Select("id", "owner_id", "name", "available").
		From("items").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item snapshot query", err)
	}

	var snap commands.ItemSnapshot
	err = r.db.QueryRow(ctx, query, args...).Scan(&snap.ID, &snap.OwnerID, &snap.Name, &snap.Available)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return &snap, nil
}

type itemReaderAdapter struct {
	store *ItemReadStore
}

func NewItemReader(db infra.DB) commands.ItemReader {
	return &itemReaderAdapter{store: NewItemReadStore(db)}
}

func (a *itemReaderAdapter) FindByID(ctx context.Context, id uuid.UUID) (*commands.ItemSnapshot, error) {
	return a.store.Snapshot(ctx, id)
}
