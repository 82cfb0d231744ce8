package request

import (
	"lendit/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
}

func (r CreateItemRequest) ToParams() commands.CreateItemParams {
	return commands.CreateItemParams{
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}

// UpdateItemRequest is a partial patch: absent fields keep their stored
// values.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

func (r UpdateItemRequest) ToParams() commands.UpdateItemParams {
	return commands.UpdateItemParams{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}
