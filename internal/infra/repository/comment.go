package repository

import (
	"context"

	"lendit/internal/domain/comment"
	"lendit/internal/infra"

	"github.com/google/uuid"
)

type CommentRepository struct {
	db infra.DB
}

func NewCommentRepository(db infra.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (uuid.UUID, error) {
	query, args, err := qb.Insert("comments").
		Columns("id", "item_id", "author_id", "text", "created_at").
		Values(c.ID(), c.ItemID(), c.AuthorID(), c.Text(), c.CreatedAt()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build comment insert", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}
