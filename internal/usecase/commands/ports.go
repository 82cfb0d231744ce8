package commands

import (
	"context"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/domain/comment"
	"lendit/internal/domain/item"
	"lendit/internal/domain/request"
	"lendit/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads.
type ItemSnapshot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Available bool
}

type BookingSnapshot struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	RenterID uuid.UUID
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*BookingSnapshot, error)
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, i *item.Item) error
}

type ItemReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (uuid.UUID, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, r *request.ItemRequest) (uuid.UUID, error)
}
