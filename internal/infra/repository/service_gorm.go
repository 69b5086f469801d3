package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nassaupro/marketplace-api/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Client").
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Client").
		First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceGormRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ServiceGormRepository) Save(ctx context.Context, service *models.Service) error {
	return classify(r.db.WithContext(ctx).Save(service).Error)
}

func (r *ServiceGormRepository) DeleteByID(ctx context.Context, id uint) error {
	return classify(r.db.WithContext(ctx).
		Delete(&models.Service{}, id).Error)
}
