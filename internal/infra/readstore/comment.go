package readstore

import (
	"context"

	"lendit/internal/infra"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentReadStore struct {
	db infra.DB
}

func NewCommentReadStore(db infra.DB) *CommentReadStore {
	return &CommentReadStore{db: db}
}

func (r *CommentReadStore) FindByItemID(ctx context.Context, itemID uuid.UUID) ([]*queries.CommentView, error) {
	query, args, err := qb.Select(
		"c.id", "c.item_id", "c.author_id", "u.name", "c.text", "c.created_at",
	).
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where("c.item_id = ?", itemID).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build comment view query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	views := []*queries.CommentView{}
	for rows.Next() {
		var v queries.CommentView
		if err := rows.Scan(&v.ID, &v.ItemID, &v.AuthorID, &v.AuthorName, &v.Text, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return views, nil
}
