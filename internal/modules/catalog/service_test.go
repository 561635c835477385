package catalog

import (
	"context"
	"testing"

	"meetspace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memRoomRepo struct {
	rooms  map[int64]*domain.Room
	nextID int64
}

func newMemRoomRepo(rooms ...*domain.Room) *memRoomRepo {
	r := &memRoomRepo{rooms: make(map[int64]*domain.Room)}
	for _, room := range rooms {
		r.rooms[room.ID] = room
		if room.ID > r.nextID {
			r.nextID = room.ID
		}
	}
	return r
}

func (r *memRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	r.nextID++
	room.ID = r.nextID
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *memRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	if _, ok := r.rooms[room.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *memRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *room
	return &cp, nil
}

func (r *memRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, *room)
	}
	return out, nil
}

func (r *memRoomRepo) FindActive(ctx context.Context, minCapacity int) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if room.Status == domain.RoomActive && room.Capacity >= minCapacity {
			out = append(out, *room)
		}
	}
	return out, nil
}

type memFloorRepo struct {
	floors []domain.Floor
}

func (r *memFloorRepo) Create(ctx context.Context, f *domain.Floor) error {
	f.ID = int64(len(r.floors) + 1)
	r.floors = append(r.floors, *f)
	return nil
}

func (r *memFloorRepo) List(ctx context.Context) ([]domain.Floor, error) {
	return append([]domain.Floor(nil), r.floors...), nil
}

type stubDescriber struct {
	calls int
	text  string
}

func (d *stubDescriber) Describe(ctx context.Context, room *domain.Room) string {
	d.calls++
	return d.text
}

func seedRooms() []*domain.Room {
	return []*domain.Room{
		{
			ID: 1, Name: "Brooklyn", RoomType: "meeting room", Capacity: 8,
			Equipment: []string{"Projector", "Whiteboard"},
			Status:    domain.RoomActive, Building: "B", Floor: "2",
			Bookings: []domain.Booking{
				{RoomID: 1, Date: "2024-06-10", From: "09:00", To: "10:00"},
			},
		},
		{
			ID: 2, Name: "Queens", RoomType: "huddle room", Capacity: 3,
			Equipment: []string{"TV Screen"},
			Status:    domain.RoomActive, Building: "B", Floor: "2",
		},
		{
			ID: 3, Name: "Bronx", RoomType: "meeting room", Capacity: 10,
			Equipment: []string{"Projector"},
			Status:    domain.RoomInactive, Building: "A", Floor: "1",
		},
	}
}

func newTestService(rooms ...*domain.Room) (*Service, *memRoomRepo, *stubDescriber) {
	repo := newMemRoomRepo(rooms...)
	desc := &stubDescriber{text: "A generated description."}
	return NewService(repo, &memFloorRepo{}, desc), repo, desc
}

func TestFindAvailableCapacityAndEquipment(t *testing.T) {
	svc, _, _ := newTestService(seedRooms()...)

	// Case-insensitive equipment subset; capacity floor honored; inactive
	// rooms excluded.
	got, err := svc.FindAvailable(context.Background(), AvailabilityQuery{
		Capacity:  6,
		Equipment: []string{"projector"},
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Brooklyn", got[0].Name)
}

func TestFindAvailableExcludesOverlappingWindow(t *testing.T) {
	svc, _, _ := newTestService(seedRooms()...)
	ctx := context.Background()

	overlapping, err := svc.FindAvailable(ctx, AvailabilityQuery{
		Date: "2024-06-10", From: "09:30", To: "10:30",
		Capacity: 6, Equipment: []string{"projector"},
	})
	require.NoError(t, err)
	assert.Empty(t, overlapping)

	// Touching the existing 09:00-10:00 booking is not a conflict.
	touching, err := svc.FindAvailable(ctx, AvailabilityQuery{
		Date: "2024-06-10", From: "10:00", To: "11:00",
		Capacity: 6, Equipment: []string{"projector"},
	})
	require.NoError(t, err)
	require.Len(t, touching, 1)
	assert.Equal(t, "Brooklyn", touching[0].Name)
}

func TestFindAvailableInvalidWindow(t *testing.T) {
	svc, _, _ := newTestService(seedRooms()...)
	ctx := context.Background()

	_, err := svc.FindAvailable(ctx, AvailabilityQuery{Date: "2024-06-10"})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.FindAvailable(ctx, AvailabilityQuery{
		Date: "2024-06-10", From: "10:00", To: "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestFindAvailableIdempotent(t *testing.T) {
	svc, _, _ := newTestService(seedRooms()...)
	ctx := context.Background()
	q := AvailabilityQuery{Capacity: 1}

	first, err := svc.FindAvailable(ctx, q)
	require.NoError(t, err)
	second, err := svc.FindAvailable(ctx, q)
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
}

func TestCreateRoomRunsPipelineBeforeSave(t *testing.T) {
	svc, repo, desc := newTestService()

	room, err := svc.CreateRoom(context.Background(), RoomRequest{
		Name: "Harlem", RoomType: "meeting room", Capacity: 6,
		Equipment: []string{"Whiteboard"}, Building: "A", Floor: "3",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, desc.calls)
	assert.Equal(t, "A generated description.", room.Description)
	assert.Equal(t, domain.RoomActive, room.Status)

	stored, err := repo.GetByID(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, "A generated description.", stored.Description)
}

func TestCreateRoomExhaustedPipelineSavesBlank(t *testing.T) {
	repo := newMemRoomRepo()
	desc := &stubDescriber{text: ""}
	svc := NewService(repo, &memFloorRepo{}, desc)

	room, err := svc.CreateRoom(context.Background(), RoomRequest{
		Name: "Harlem", RoomType: "meeting room", Capacity: 6,
	})

	require.NoError(t, err, "an exhausted pipeline must not block the room write")
	assert.Empty(t, room.Description)
}

func TestCreateRoomInvalidStatus(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateRoom(context.Background(), RoomRequest{
		Name: "Harlem", RoomType: "meeting room", Capacity: 6, Status: "retired",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateRoomRegeneratesOnFactChange(t *testing.T) {
	rooms := seedRooms()
	rooms[0].Description = "Old description."
	svc, _, desc := newTestService(rooms...)

	updated, err := svc.UpdateRoom(context.Background(), 1, RoomRequest{
		Name: "Brooklyn", RoomType: "meeting room", Capacity: 12, // capacity changed
		Equipment: []string{"Projector", "Whiteboard"},
		Status:    "active", Building: "B", Floor: "2",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, desc.calls)
	assert.Equal(t, "A generated description.", updated.Description)
}

func TestUpdateRoomKeepsDescriptionWhenFactsUnchanged(t *testing.T) {
	rooms := seedRooms()
	rooms[0].Description = "Old description."
	svc, _, desc := newTestService(rooms...)

	// Equipment reordered and recased: same set, no regeneration.
	updated, err := svc.UpdateRoom(context.Background(), 1, RoomRequest{
		Name: "Brooklyn", RoomType: "meeting room", Capacity: 8,
		Equipment: []string{"whiteboard", "PROJECTOR"},
		Status:    "active", Building: "B", Floor: "2",
	})

	require.NoError(t, err)
	assert.Zero(t, desc.calls)
	assert.Equal(t, "Old description.", updated.Description)
}

func TestUpdateRoomNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateRoom(context.Background(), 99, RoomRequest{
		Name: "Ghost", RoomType: "meeting room", Capacity: 4,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestFloors(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateFloor(ctx, CreateFloorRequest{
		Name: "2nd Floor", Building: "Building B", Image: "/images/floor-b2.png",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	floors, err := svc.ListFloors(ctx)
	require.NoError(t, err)
	require.Len(t, floors, 1)
	assert.Equal(t, "Building B", floors[0].Building)
}
