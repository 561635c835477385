package repository

import (
	"context"
	"encoding/json"
	"time"

	"meetspace/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	RoomType    string    `gorm:"column:room_type"`
	Capacity    int       `gorm:"column:capacity"`
	Equipment   string    `gorm:"column:equipment;type:text"`
	Status      string    `gorm:"column:status;default:active"`
	Building    string    `gorm:"column:building"`
	Floor       string    `gorm:"column:floor"`
	PhotoURL    string    `gorm:"column:photo_url"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	RoomID    int64     `gorm:"column:room_id;index"`
	Date      string    `gorm:"column:date"`
	FromTime  string    `gorm:"column:from_time"`
	ToTime    string    `gorm:"column:to_time"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainRoom(m roomModel, bookings []bookingModel) *domain.Room {
	var equipment []string
	if m.Equipment != "" {
		_ = json.Unmarshal([]byte(m.Equipment), &equipment)
	}

	r := &domain.Room{
		ID:          m.ID,
		Name:        m.Name,
		RoomType:    m.RoomType,
		Capacity:    m.Capacity,
		Equipment:   equipment,
		Status:      domain.RoomStatus(m.Status),
		Building:    m.Building,
		Floor:       m.Floor,
		PhotoURL:    m.PhotoURL,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, b := range bookings {
		r.Bookings = append(r.Bookings, *toDomainBooking(b))
	}
	return r
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		RoomID:    m.RoomID,
		Date:      m.Date,
		From:      m.FromTime,
		To:        m.ToTime,
		CreatedAt: m.CreatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var equipment string
	if len(r.Equipment) > 0 {
		raw, _ := json.Marshal(r.Equipment)
		equipment = string(raw)
	}

	return roomModel{
		ID:          r.ID,
		Name:        r.Name,
		RoomType:    r.RoomType,
		Capacity:    r.Capacity,
		Equipment:   equipment,
		Status:      string(r.Status),
		Building:    r.Building,
		Floor:       r.Floor,
		PhotoURL:    r.PhotoURL,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m, nil)
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":        m.Name,
		"room_type":   m.RoomType,
		"capacity":    m.Capacity,
		"equipment":   m.Equipment,
		"status":      m.Status,
		"building":    m.Building,
		"floor":       m.Floor,
		"photo_url":   m.PhotoURL,
		"description": m.Description,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}

	var bookings []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", id).
		Order("date, from_time").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m, bookings), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var models []roomModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m, nil))
	}
	return out, nil
}

// FindActive returns active rooms with capacity >= minCapacity, bookings
// attached. Equipment and time-window filtering happen in the service, where
// the set semantics live.
func (r *RoomRepository) FindActive(ctx context.Context, minCapacity int) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).
		Where("status = ? AND capacity >= ?", string(domain.RoomActive), minCapacity).
		Order("id").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		var bookings []bookingModel
		tx := r.db.WithContext(ctx).
			Where("room_id = ?", m.ID).
			Order("date, from_time").
			Find(&bookings)
		if tx.Error != nil {
			return nil, tx.Error
		}
		out = append(out, *toDomainRoom(m, bookings))
	}
	return out, nil
}

// BookingsOn returns the room's bookings for one calendar day.
func (r *RoomRepository) BookingsOn(ctx context.Context, roomID int64, date string) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND date = ?", roomID, date).
		Order("from_time").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// AppendBooking inserts the booking only if no existing booking on the same
// room and date overlaps [from, to). The guard and the insert run as one
// statement, so concurrent attempts cannot both pass the check. Returns false
// when the guard rejected the insert; on success b.ID carries the assigned id.
func (r *RoomRepository) AppendBooking(ctx context.Context, b *domain.Booking) (bool, error) {
	b.CreatedAt = time.Now().UTC()
	tx := r.db.WithContext(ctx).Exec(`
INSERT INTO bookings (room_id, date, from_time, to_time, created_at)
SELECT ?, ?, ?, ?, ?
WHERE NOT EXISTS (
    SELECT 1 FROM bookings
    WHERE room_id = ? AND date = ? AND from_time < ? AND to_time > ?
)`, b.RoomID, b.Date, b.From, b.To, b.CreatedAt,
		b.RoomID, b.Date, b.To, b.From)
	if tx.Error != nil {
		return false, tx.Error
	}
	if tx.RowsAffected != 1 {
		return false, nil
	}

	// Exec does not report the generated key; the idx_no_double_booking columns
	// identify the row we just wrote.
	err := r.db.WithContext(ctx).
		Raw("SELECT id FROM bookings WHERE room_id = ? AND date = ? AND from_time = ? AND to_time = ?",
			b.RoomID, b.Date, b.From, b.To).
		Scan(&b.ID).Error
	if err != nil {
		return false, err
	}
	return true, nil
}
