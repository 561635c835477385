package domain

import "time"

type User struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"first_name" validate:"required"`
	LastName         string    `json:"last_name" validate:"required"`
	Email            string    `json:"email" validate:"required,email"`
	PasswordHash     string    `json:"-"`
	AllowExtraEmails bool      `json:"allow_extra_emails"`
	CreatedAt        time.Time `json:"created_at"`
}
