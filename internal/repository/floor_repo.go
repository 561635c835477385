package repository

import (
	"context"

	"meetspace/internal/domain"

	"gorm.io/gorm"
)

type FloorRepository struct {
	db *gorm.DB
}

func NewFloorRepository(db *gorm.DB) *FloorRepository {
	return &FloorRepository{db: db}
}

type floorModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	Building string `gorm:"column:building"`
	Image    string `gorm:"column:image"`
}

func (floorModel) TableName() string { return "floors" }

func toDomainFloor(m floorModel) *domain.Floor {
	return &domain.Floor{
		ID:       m.ID,
		Name:     m.Name,
		Building: m.Building,
		Image:    m.Image,
	}
}

func (r *FloorRepository) Create(ctx context.Context, f *domain.Floor) error {
	m := floorModel{Name: f.Name, Building: f.Building, Image: f.Image}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFloor(m)
	return nil
}

func (r *FloorRepository) List(ctx context.Context) ([]domain.Floor, error) {
	var models []floorModel
	if tx := r.db.WithContext(ctx).Order("building, name").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Floor, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainFloor(m))
	}
	return out, nil
}
