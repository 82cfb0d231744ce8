package request

import (
	"strings"
	"time"

	"lendit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBlankDescription = errs.New("request description must not be blank")

// ItemRequest is a wish for an item nobody has listed yet. Owners may later
// create an item against it.
type ItemRequest struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	createdAt   time.Time
}

func NewItemRequest(requesterID uuid.UUID, description string, now time.Time) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		requesterID: requesterID,
		description: description,
		createdAt:   now,
	}, nil
}

func ReconstructItemRequest(id, requesterID uuid.UUID, description string, createdAt time.Time) *ItemRequest {
	return &ItemRequest{id: id, requesterID: requesterID, description: description, createdAt: createdAt}
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) RequesterID() uuid.UUID { return r.requesterID }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) CreatedAt() time.Time   { return r.createdAt }
