package booking

import (
	"context"

	"meetspace/internal/domain"
)

// RoomStore is the persistence surface the committer needs. AppendBooking must
// re-check the overlap condition and the insert as one atomic operation and
// return false when the condition fails, so the DB backstops the service-level
// lock on drivers shared between processes. On a successful insert it fills
// b.ID with the assigned id.
type RoomStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	AppendBooking(ctx context.Context, b *domain.Booking) (bool, error)
	BookingsOn(ctx context.Context, roomID int64, date string) ([]domain.Booking, error)
}
