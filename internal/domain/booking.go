package domain

import (
	"regexp"
	"time"
)

// Booking is a reserved slot on a room. Dates are calendar days ("2006-01-02"),
// times are zero-padded "15:04" on the same day, so lexical comparison of the
// strings matches chronological order.
type Booking struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	Date      string    `json:"date" validate:"required"`
	From      string    `json:"from" validate:"required"`
	To        string    `json:"to" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)
)

// ValidDate reports whether s is a real calendar day in "2006-01-02" form.
func ValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidTime reports whether s is a zero-padded "15:04" clock time.
func ValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// Overlaps reports whether the booking and the half-open interval [from, to)
// on the given date share at least one instant. Intervals on different dates
// never overlap, and intervals that merely touch do not overlap.
func (b *Booking) Overlaps(date, from, to string) bool {
	if b.Date != date {
		return false
	}
	return b.From < to && from < b.To
}
