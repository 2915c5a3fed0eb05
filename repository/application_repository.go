package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
)

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

// CreateWithDocuments stores the application and its ordered documents in
// one transaction.
func (r *ApplicationRepository) CreateWithDocuments(app *entity.Application, urls []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		for i, u := range urls {
			doc := entity.ApplicationDocument{
				ApplicationID: app.ID,
				Position:      i,
				URL:           u,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ApplicationRepository) FindByID(id uint) (*entity.Application, error) {
	var app entity.Application
	if err := r.DB.
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByStatus(status string) ([]entity.Application, error) {
	var apps []entity.Application
	err := r.DB.
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("status = ?", status).
		Order("id DESC").
		Find(&apps).Error
	return apps, err
}

// FindByStatusForOrganization limits listing to one organization, keeping
// applications that left the field blank visible to every reviewer.
func (r *ApplicationRepository) FindByStatusForOrganization(status, org string) ([]entity.Application, error) {
	var apps []entity.Application
	err := r.DB.
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("status = ?", status).
		Where("organization = ? OR organization = ''", org).
		Order("id DESC").
		Find(&apps).Error
	return apps, err
}

// FindLatestApproved returns the newest approved application for an email
// and role, used when setup completion materializes the vendor record.
func (r *ApplicationRepository) FindLatestApproved(email, role string) (*entity.Application, error) {
	var app entity.Application
	if err := r.DB.
		Where("email = ? AND role = ? AND status = ?", email, role, "approved").
		Order("id DESC").
		First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// MarkDecided flips a pending application into a terminal status. The
// status predicate makes concurrent decisions lose cleanly: rows affected
// is zero when another request got there first.
func (r *ApplicationRepository) MarkDecided(tx *gorm.DB, id uint, updates map[string]any, now time.Time) (int64, error) {
	updates["reviewed_at"] = now
	res := tx.Model(&entity.Application{}).
		Where("id = ? AND status = ?", id, "pending").
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *ApplicationRepository) CountPendingForOrganization(org string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Application{}).
		Where("status = ?", "pending").
		Where("organization = ? OR organization = ''", org).
		Count(&count).Error
	return count, err
}
