package repository

import (
	"context"
	"errors"
	"time"

	"meetspace/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	FirstName        string    `gorm:"column:first_name"`
	LastName         string    `gorm:"column:last_name"`
	Email            string    `gorm:"column:email;uniqueIndex"`
	PasswordHash     string    `gorm:"column:password_hash"`
	AllowExtraEmails bool      `gorm:"column:allow_extra_emails"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		AllowExtraEmails: m.AllowExtraEmails,
		CreatedAt:        m.CreatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := userModel{
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		AllowExtraEmails: u.AllowExtraEmails,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

// GetByEmail returns (nil, nil) when no user carries the email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}
