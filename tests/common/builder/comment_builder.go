//go:build unit || e2e

package builder

import (
	"time"

	domcomment "lendit/internal/domain/comment"
	reqdto "lendit/internal/handler/dto/request"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		AuthorID:   uuid.New(),
		AuthorName: "Alex Sharer",
		Text:       "Worked great, thanks!",
		CreatedAt:  time.Now(),
	}
}

func (b *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(b)
	return b
}

func (b *CommentBuilder) WithItemID(itemID uuid.UUID) *CommentBuilder {
	b.ItemID = itemID
	return b
}

func (b *CommentBuilder) WithAuthorID(authorID uuid.UUID) *CommentBuilder {
	b.AuthorID = authorID
	return b
}

func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.Text = text
	return b
}

func (b *CommentBuilder) BuildDomain(now time.Time) (*domcomment.Comment, error) {
	return domcomment.NewComment(b.ItemID, b.AuthorID, b.Text, now)
}

func (b *CommentBuilder) BuildCreateRequestDTO() reqdto.CreateCommentRequest {
	return reqdto.CreateCommentRequest{
		Text: b.Text,
	}
}

func (b *CommentBuilder) BuildView() *queries.CommentView {
	return &queries.CommentView{
		ID:         b.ID,
		ItemID:     b.ItemID,
		AuthorID:   b.AuthorID,
		AuthorName: b.AuthorName,
		Text:       b.Text,
		CreatedAt:  b.CreatedAt,
	}
}
