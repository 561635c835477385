package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"meetspace/internal/config"
	"meetspace/internal/database"
	"meetspace/internal/domain"
	"meetspace/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM floors")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	floorRepo := repository.NewFloorRepository(db)

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := domain.User{
		FirstName:    "Demo",
		LastName:     "User",
		Email:        "demo@meetspace.local",
		PasswordHash: string(hash),
	}
	if err := userRepo.Create(ctx, &demo); err != nil {
		log.Fatal("seeding user:", err)
	}
	log.Println("Demo user created: demo@meetspace.local / demo1234")

	log.Println("Creating floors...")
	floors := []domain.Floor{
		{Name: "1st Floor", Building: "Building A", Image: "/images/floor-a1.png"},
		{Name: "2nd Floor", Building: "Building A", Image: "/images/floor-a2.png"},
		{Name: "2nd Floor", Building: "Building B", Image: "/images/floor-b2.png"},
	}
	for i := range floors {
		if err := floorRepo.Create(ctx, &floors[i]); err != nil {
			log.Fatal("seeding floor:", err)
		}
	}

	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{
			Name:      "Long Island",
			RoomType:  "meeting room",
			Capacity:  5,
			Equipment: []string{"Whiteboard", "Projector"},
			Status:    domain.RoomActive,
			Building:  "Building A",
			Floor:     "1",
			PhotoURL:  "/images/long-island.png",
			Description: "Long Island is a friendly meeting room on floor 1 of Building A. " +
				"It seats exactly five people and is currently active. " +
				"The room includes a whiteboard and a projector.",
		},
		{
			Name:      "New York",
			RoomType:  "conference room",
			Capacity:  15,
			Equipment: []string{"Whiteboard", "TV Screen"},
			Status:    domain.RoomActive,
			Building:  "Building A",
			Floor:     "2",
			PhotoURL:  "/images/new-york.png",
			Description: "New York is a bright conference room on floor 2 of Building A. " +
				"It seats exactly fifteen people and is currently active. " +
				"The room includes a whiteboard and a TV screen.",
		},
		{
			Name:      "Brooklyn",
			RoomType:  "meeting room",
			Capacity:  8,
			Equipment: []string{"Projector", "Whiteboard"},
			Status:    domain.RoomActive,
			Building:  "Building B",
			Floor:     "2",
			PhotoURL:  "/images/brooklyn.png",
			Description: "Brooklyn is a calm meeting room on floor 2 of Building B. " +
				"It seats exactly eight people and is currently active. " +
				"The room includes a projector and a whiteboard.",
		},
		{
			Name:      "Queens",
			RoomType:  "huddle room",
			Capacity:  3,
			Equipment: []string{"TV Screen"},
			Status:    domain.RoomInactive,
			Building:  "Building B",
			Floor:     "2",
			PhotoURL:  "/images/queens.png",
			Description: "Queens is a small huddle room on floor 2 of Building B. " +
				"It seats exactly three people and is currently inactive. " +
				"The room includes a TV screen.",
		},
	}
	for i := range rooms {
		if err := roomRepo.Create(ctx, &rooms[i]); err != nil {
			log.Fatal("seeding room:", err)
		}
	}

	log.Println("Creating sample bookings...")
	bookings := []domain.Booking{
		{RoomID: rooms[0].ID, Date: "2026-09-07", From: "09:00", To: "10:00"},
		{RoomID: rooms[0].ID, Date: "2026-09-07", From: "14:00", To: "15:30"},
		{RoomID: rooms[2].ID, Date: "2026-09-08", From: "11:00", To: "12:00"},
	}
	for i := range bookings {
		inserted, err := roomRepo.AppendBooking(ctx, &bookings[i])
		if err != nil {
			log.Fatal("seeding booking:", err)
		}
		if !inserted {
			log.Fatalf("seed booking rejected as conflicting: %+v", bookings[i])
		}
	}

	log.Printf("Done: %d floors, %d rooms, %d bookings", len(floors), len(rooms), len(bookings))
}
