package repository

import (
	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
)

type VendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) Create(v *entity.Vendor) error {
	return r.DB.Create(v).Error
}

func (r *VendorRepository) FindByID(id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.Preload("User").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) FindByUserID(userID uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.Where("user_id = ?", userID).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) ListByOrganization(org string) ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	err := r.DB.Preload("User").
		Joins("JOIN users ON users.id = vendors.user_id").
		Where("users.organization = ?", org).
		Order("vendors.id ASC").
		Find(&vendors).Error
	return vendors, err
}

func (r *VendorRepository) ListAll() ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	err := r.DB.Preload("User").Order("id ASC").Find(&vendors).Error
	return vendors, err
}

func (r *VendorRepository) SetActive(tx *gorm.DB, id uint, active bool) (int64, error) {
	res := tx.Model(&entity.Vendor{}).Where("id = ?", id).Update("is_active", active)
	return res.RowsAffected, res.Error
}

// CountByOrganization joins through users to count a school's vendors.
func (r *VendorRepository) CountByOrganization(org string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Vendor{}).
		Joins("JOIN users ON users.id = vendors.user_id").
		Where("users.organization = ?", org).
		Count(&count).Error
	return count, err
}

func (r *VendorRepository) CountActiveByOrganization(org string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Vendor{}).
		Joins("JOIN users ON users.id = vendors.user_id").
		Where("users.organization = ? AND vendors.is_active = ?", org, true).
		Count(&count).Error
	return count, err
}
