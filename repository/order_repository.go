package repository

import (
	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
)

// OrderRepository only reads; order rows are written by the ordering
// subsystem.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CountByDeliverer(delivererID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("deliverer_id = ?", delivererID).
		Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountByDelivererAndStatus(delivererID uint, status string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("deliverer_id = ? AND status = ?", delivererID, status).
		Count(&count).Error
	return count, err
}

func (r *OrderRepository) SumDeliveredTotal(delivererID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&entity.Order{}).
		Where("deliverer_id = ? AND status = ?", delivererID, "delivered").
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}
