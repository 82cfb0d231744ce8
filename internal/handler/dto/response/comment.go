package response

import (
	"time"

	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromCommentView(rm *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         rm.ID,
		ItemID:     rm.ItemID,
		AuthorID:   rm.AuthorID,
		AuthorName: rm.AuthorName,
		Text:       rm.Text,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromCommentViews(rms []*queries.CommentView) []*CommentResponse {
	responses := make([]*CommentResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromCommentView(rm)
	}
	return responses
}
