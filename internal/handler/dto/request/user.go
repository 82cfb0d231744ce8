package request

import (
	"lendit/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (r CreateUserRequest) ToParams() commands.CreateUserParams {
	return commands.CreateUserParams{
		Name:  r.Name,
		Email: r.Email,
	}
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r UpdateUserRequest) ToParams() commands.UpdateUserParams {
	return commands.UpdateUserParams{
		Name:  r.Name,
		Email: r.Email,
	}
}
