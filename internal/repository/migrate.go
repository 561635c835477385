package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema for every row model in this package, plus the
// unique index that rejects byte-identical double bookings at the DB level.
// The overlap guard itself lives in AppendBooking; the index only backstops
// exact duplicates racing past it on drivers without statement atomicity.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&floorModel{},
		&roomModel{},
		&bookingModel{},
	); err != nil {
		return err
	}

	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking ON bookings(room_id, date, from_time, to_time)",
	).Error
}
