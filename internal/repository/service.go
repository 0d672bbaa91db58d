package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/novareservas/reservation-api/internal/httperr"
	"github.com/novareservas/reservation-api/internal/models"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(
	ctx context.Context,
	name string,
	description string,
) (uint, error) {

	svc := models.Service{
		Name:        name,
		Description: description,
	}

	if err := r.db.WithContext(ctx).Create(&svc).Error; err != nil {
		return 0, httperr.Store(err)
	}
	return svc.ID, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, httperr.Store(err)
	}
	return services, nil
}

func (r *ServiceRepository) Update(
	ctx context.Context,
	id uint,
	name string,
	description string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        name,
			"description": description,
		})
	if res.Error != nil {
		return 0, httperr.Store(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return 0, httperr.Store(res.Error)
	}
	return res.RowsAffected, nil
}
