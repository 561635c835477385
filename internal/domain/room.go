package domain

import (
	"strings"
	"time"
)

type RoomStatus string

const (
	RoomActive   RoomStatus = "active"
	RoomInactive RoomStatus = "inactive"
)

type Room struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name" validate:"required"`
	RoomType    string     `json:"room_type" validate:"required"`
	Capacity    int        `json:"capacity" validate:"required,gt=0"`
	Equipment   []string   `json:"equipment,omitempty"`
	Status      RoomStatus `json:"status"`
	Building    string     `json:"building,omitempty"`
	Floor       string     `json:"floor,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Bookings []Booking `json:"bookings,omitempty"`
}

// HasEquipment reports whether the room carries every item in required,
// compared case-insensitively with set semantics.
func (r *Room) HasEquipment(required []string) bool {
	have := make(map[string]bool, len(r.Equipment))
	for _, e := range r.Equipment {
		have[normalizeEquipment(e)] = true
	}
	for _, req := range required {
		if req = normalizeEquipment(req); req == "" {
			continue
		}
		if !have[req] {
			return false
		}
	}
	return true
}

func normalizeEquipment(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type Floor struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required"`
	Building string `json:"building" validate:"required"`
	Image    string `json:"image,omitempty"`
}
