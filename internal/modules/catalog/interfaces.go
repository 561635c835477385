package catalog

import (
	"context"

	"meetspace/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	FindActive(ctx context.Context, minCapacity int) ([]domain.Room, error)
}

type FloorRepository interface {
	Create(ctx context.Context, f *domain.Floor) error
	List(ctx context.Context) ([]domain.Floor, error)
}

// Describer produces a validated description for a room, or "" when the
// generation budget is exhausted. It never fails the save path.
type Describer interface {
	Describe(ctx context.Context, room *domain.Room) string
}
