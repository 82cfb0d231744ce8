//go:build unit || e2e

package builder

import (
	domuser "lendit/internal/domain/user"
	reqdto "lendit/internal/handler/dto/request"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Name:  "Alex Sharer",
		Email: "alex@example.com",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	return domuser.NewUser(b.Name, b.Email)
}

func (b *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *UserBuilder) BuildSnapshot() *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
	}
}
