//go:build unit || e2e

package builder

import (
	domitem "lendit/internal/domain/item"
	reqdto "lendit/internal/handler/dto/request"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Cordless drill",
		Description: "18V cordless drill with two batteries",
		Available:   true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithID(id uuid.UUID) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithOwnerID(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithDescription(description string) *ItemBuilder {
	b.Description = description
	return b
}

func (b *ItemBuilder) WithAvailable(available bool) *ItemBuilder {
	b.Available = available
	return b
}

func (b *ItemBuilder) WithRequestID(requestID *uuid.UUID) *ItemBuilder {
	b.RequestID = requestID
	return b
}

func (b *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.NewItem(b.OwnerID, b.Name, b.Description, b.Available, b.RequestID)
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := b.Available
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildSnapshot() *commands.ItemSnapshot {
	return &commands.ItemSnapshot{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Name:      b.Name,
		Available: b.Available,
	}
}
