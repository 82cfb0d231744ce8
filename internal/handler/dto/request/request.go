package request

import (
	"lendit/internal/usecase/commands"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

func (r CreateItemRequestRequest) ToParams() commands.CreateItemRequestParams {
	return commands.CreateItemRequestParams{
		Description: r.Description,
	}
}
