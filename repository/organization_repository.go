package repository

import (
	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
)

type OrganizationRepository struct {
	DB *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{DB: db}
}

func (r *OrganizationRepository) FindByEmailDomain(domain string) (*entity.Organization, error) {
	var org entity.Organization
	if err := r.DB.Where("email_domain = ?", domain).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// ResolveOrCreate finds the organization for an email domain, creating it
// with the given name when no match exists.
func (r *OrganizationRepository) ResolveOrCreate(tx *gorm.DB, name, domain string) (*entity.Organization, error) {
	var org entity.Organization
	err := tx.Where("email_domain = ?", domain).First(&org).Error
	if err == nil {
		return &org, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	org = entity.Organization{Name: name, EmailDomain: domain}
	if err := tx.Where(entity.Organization{Name: name}).FirstOrCreate(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) List() ([]entity.Organization, error) {
	var orgs []entity.Organization
	err := r.DB.Order("name ASC").Find(&orgs).Error
	return orgs, err
}
