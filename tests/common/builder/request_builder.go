//go:build unit || e2e

package builder

import (
	"time"

	domrequest "lendit/internal/domain/request"
	reqdto "lendit/internal/handler/dto/request"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemRequestBuilder struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Description string
	CreatedAt   time.Time
}

func NewItemRequestBuilder() *ItemRequestBuilder {
	return &ItemRequestBuilder{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		Description: "Looking for a tile cutter for a weekend",
		CreatedAt:   time.Now(),
	}
}

func (b *ItemRequestBuilder) With(mutate func(*ItemRequestBuilder)) *ItemRequestBuilder {
	mutate(b)
	return b
}

func (b *ItemRequestBuilder) WithRequesterID(requesterID uuid.UUID) *ItemRequestBuilder {
	b.RequesterID = requesterID
	return b
}

func (b *ItemRequestBuilder) WithDescription(description string) *ItemRequestBuilder {
	b.Description = description
	return b
}

func (b *ItemRequestBuilder) BuildDomain(now time.Time) (*domrequest.ItemRequest, error) {
	return domrequest.NewItemRequest(b.RequesterID, b.Description, now)
}

func (b *ItemRequestBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequestRequest {
	return reqdto.CreateItemRequestRequest{
		Description: b.Description,
	}
}

func (b *ItemRequestBuilder) BuildView() *queries.ItemRequestView {
	return &queries.ItemRequestView{
		ID:          b.ID,
		RequesterID: b.RequesterID,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}
