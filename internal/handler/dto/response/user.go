package response

import (
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:    rm.ID,
		Name:  rm.Name,
		Email: rm.Email,
	}
}
