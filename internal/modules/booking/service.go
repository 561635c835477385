package booking

import (
	"context"
	"errors"
	"sync"

	"meetspace/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service commits bookings. Attempts on the same room are serialized by a
// per-room mutex so the locate/check/append sequence is indivisible; attempts
// on distinct rooms never block each other.
type Service struct {
	rooms RoomStore
	locks sync.Map // room id -> *sync.Mutex
}

func NewService(rooms RoomStore) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) lockFor(roomID int64) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(roomID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Book reserves [from, to) on the room's date. A failed attempt leaves the
// room's booking set unmodified.
func (s *Service) Book(ctx context.Context, roomID int64, req CreateBookingRequest) (*domain.Room, error) {
	if !domain.ValidDate(req.Date) || !domain.ValidTime(req.From) || !domain.ValidTime(req.To) {
		return nil, ErrInvalidInput
	}
	if req.From >= req.To {
		return nil, ErrInvalidInput
	}

	mu := s.lockFor(roomID)
	mu.Lock()
	defer mu.Unlock()

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	for i := range room.Bookings {
		if room.Bookings[i].Overlaps(req.Date, req.From, req.To) {
			return nil, ErrConflict
		}
	}

	b := &domain.Booking{
		RoomID: roomID,
		Date:   req.Date,
		From:   req.From,
		To:     req.To,
	}
	inserted, err := s.rooms.AppendBooking(ctx, b)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrConflict
		}
		return nil, err
	}
	if !inserted {
		return nil, ErrConflict
	}

	room.Bookings = append(room.Bookings, *b)
	return room, nil
}

// DaySchedule lists the room's bookings for one calendar day, ordered by
// start time.
func (s *Service) DaySchedule(ctx context.Context, roomID int64, date string) ([]domain.Booking, error) {
	if !domain.ValidDate(date) {
		return nil, ErrInvalidInput
	}

	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return s.rooms.BookingsOn(ctx, roomID, date)
}
