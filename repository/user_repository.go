package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
)

// UserRepository talks to the users (profiles) table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByInviteToken(token string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("invite_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ConsumeInviteToken clears the token and stamps the new status in one
// guarded update. Returns rows affected so callers can detect a token that
// was already spent.
func (r *UserRepository) ConsumeInviteToken(tx *gorm.DB, token string, updates map[string]any) (int64, error) {
	updates["invite_token"] = nil
	updates["invite_token_expires"] = nil
	res := tx.Model(&entity.User{}).Where("invite_token = ?", token).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) FindByRole(role string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("role = ?", role).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByOrganization(org string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("organization = ?", org).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) CountByRoleAndOrganization(role, org string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("role = ? AND organization = ?", role, org).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByOrganization(org string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("organization = ?", org).Count(&count).Error
	return count, err
}

func (r *UserRepository) SetStatus(userID uint, status string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Update("status", status).Error
}

// ExpireStaleInvites is a housekeeping sweep clearing tokens past expiry.
func (r *UserRepository) ExpireStaleInvites(now time.Time) (int64, error) {
	res := r.DB.Model(&entity.User{}).
		Where("invite_token IS NOT NULL AND invite_token_expires < ?", now).
		Updates(map[string]any{"invite_token": nil, "invite_token_expires": nil})
	return res.RowsAffected, res.Error
}
