package user

import (
	"strings"

	"lendit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errs.New("invalid email")

type User struct {
	id    uuid.UUID
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func ReconstructUser(id uuid.UUID, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
