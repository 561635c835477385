package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"meetspace/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	rooms     RoomRepository
	floors    FloorRepository
	describer Describer
}

func NewService(rooms RoomRepository, floors FloorRepository, describer Describer) *Service {
	return &Service{rooms: rooms, floors: floors, describer: describer}
}

/* ---------- ROOMS ---------- */

func (s *Service) CreateRoom(ctx context.Context, req RoomRequest) (*domain.Room, error) {
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return nil, err
	}

	room := &domain.Room{
		Name:      req.Name,
		RoomType:  req.RoomType,
		Capacity:  req.Capacity,
		Equipment: req.Equipment,
		Status:    status,
		Building:  req.Building,
		Floor:     req.Floor,
		PhotoURL:  req.PhotoURL,
	}

	// The save waits for the pipeline: the room is persisted with an accepted
	// description, or with a blank one once the attempt budget is spent.
	room.Description = s.describer.Describe(ctx, room)

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req RoomRequest) (*domain.Room, error) {
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	updated := *room
	updated.Name = req.Name
	updated.RoomType = req.RoomType
	updated.Capacity = req.Capacity
	updated.Equipment = req.Equipment
	updated.Status = status
	updated.Building = req.Building
	updated.Floor = req.Floor
	updated.PhotoURL = req.PhotoURL

	if updated.Description == "" || descriptionStale(room, &updated) {
		updated.Description = s.describer.Describe(ctx, &updated)
	}

	if err := s.rooms.Update(ctx, &updated); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

// FindAvailable returns active rooms whose capacity meets the floor, whose
// equipment is a superset of the required set, and which have no booking
// overlapping the requested window. Date/from/to may all be empty, in which
// case only capacity and equipment filter.
func (s *Service) FindAvailable(ctx context.Context, q AvailabilityQuery) ([]RoomSummary, error) {
	minCapacity := q.Capacity
	if minCapacity < 1 {
		minCapacity = 1
	}

	hasWindow := q.Date != "" || q.From != "" || q.To != ""
	if hasWindow {
		if !domain.ValidDate(q.Date) || !domain.ValidTime(q.From) || !domain.ValidTime(q.To) || q.From >= q.To {
			return nil, ErrInvalidQuery
		}
	}

	rooms, err := s.rooms.FindActive(ctx, minCapacity)
	if err != nil {
		return nil, err
	}

	out := make([]RoomSummary, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]
		if !room.HasEquipment(q.Equipment) {
			continue
		}
		if hasWindow && hasOverlap(room.Bookings, q.Date, q.From, q.To) {
			continue
		}
		out = append(out, RoomSummary{
			ID:          room.ID,
			Name:        room.Name,
			RoomType:    room.RoomType,
			Capacity:    room.Capacity,
			Equipment:   room.Equipment,
			ImageURL:    room.PhotoURL,
			Description: room.Description,
		})
	}
	return out, nil
}

func hasOverlap(bookings []domain.Booking, date, from, to string) bool {
	for i := range bookings {
		if bookings[i].Overlaps(date, from, to) {
			return true
		}
	}
	return false
}

/* ---------- FLOORS ---------- */

func (s *Service) CreateFloor(ctx context.Context, req CreateFloorRequest) (*domain.Floor, error) {
	f := &domain.Floor{Name: req.Name, Building: req.Building, Image: req.Image}
	if err := s.floors.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) ListFloors(ctx context.Context) ([]domain.Floor, error) {
	return s.floors.List(ctx)
}

/* ---------- helpers ---------- */

func normalizeStatus(raw string) (domain.RoomStatus, error) {
	switch domain.RoomStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return domain.RoomActive, nil
	case domain.RoomActive:
		return domain.RoomActive, nil
	case domain.RoomInactive:
		return domain.RoomInactive, nil
	default:
		return "", ErrInvalidStatus
	}
}

// descriptionStale reports whether any fact the description states has
// changed, which obligates a regeneration before the room is persisted.
func descriptionStale(old, updated *domain.Room) bool {
	return old.Name != updated.Name ||
		old.RoomType != updated.RoomType ||
		old.Capacity != updated.Capacity ||
		old.Status != updated.Status ||
		old.Building != updated.Building ||
		old.Floor != updated.Floor ||
		!equalEquipment(old.Equipment, updated.Equipment)
}

func equalEquipment(a, b []string) bool {
	normalize := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, s := range in {
			out = append(out, strings.ToLower(strings.TrimSpace(s)))
		}
		sort.Strings(out)
		return out
	}

	na, nb := normalize(a), normalize(b)
	if len(na) != len(nb) {
		return false
	}
	for i := range na {
		if na[i] != nb[i] {
			return false
		}
	}
	return true
}
