package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/utils"
)

// LocalService keeps identity accounts in the application database.
type LocalService struct {
	DB         *gorm.DB
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	BaseURL    string
}

func NewLocalService(db *gorm.DB, secret, baseURL string, accessTTL, refreshTTL time.Duration) *LocalService {
	return &LocalService{
		DB:         db,
		Secret:     secret,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
		BaseURL:    baseURL,
	}
}

func toAccount(rec *entity.IdentityAccount) *Account {
	meta := map[string]any{}
	if rec.Metadata != "" {
		_ = json.Unmarshal([]byte(rec.Metadata), &meta)
	}
	return &Account{
		ID:          rec.ID,
		Email:       rec.Email,
		Metadata:    meta,
		BannedUntil: rec.BannedUntil,
	}
}

func (s *LocalService) find(email string) (*entity.IdentityAccount, error) {
	var rec entity.IdentityAccount
	if err := s.DB.Where("email = ?", email).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *LocalService) CreateUser(email string, metadata map[string]any) (*Account, error) {
	if rec, err := s.find(email); err == nil {
		return toAccount(rec), nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}
	rec := entity.IdentityAccount{
		ID:       uuid.NewString(),
		Email:    email,
		Metadata: string(raw),
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, err
	}
	return toAccount(&rec), nil
}

func (s *LocalService) GetByEmail(email string) (*Account, error) {
	rec, err := s.find(email)
	if err != nil {
		return nil, err
	}
	return toAccount(rec), nil
}

func (s *LocalService) SetPassword(email, password string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rec, err := s.find(email)
	if errors.Is(err, ErrNotFound) {
		rec = &entity.IdentityAccount{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(hash),
			Metadata:     "{}",
		}
		if err := s.DB.Create(rec).Error; err != nil {
			return nil, err
		}
		return toAccount(rec), nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(rec).Update("password_hash", string(hash)).Error; err != nil {
		return nil, err
	}
	return toAccount(rec), nil
}

func (s *LocalService) VerifyPassword(email, password string) (*Account, error) {
	rec, err := s.find(email)
	if err != nil {
		return nil, ErrBadLogin
	}
	if rec.BannedUntil != nil && rec.BannedUntil.After(time.Now()) {
		return nil, ErrBanned
	}
	if rec.PasswordHash == "" {
		return nil, ErrBadLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadLogin
	}
	return toAccount(rec), nil
}

func (s *LocalService) IssueTokens(email string) (TokenPair, error) {
	rec, err := s.find(email)
	if err != nil {
		return TokenPair{}, err
	}
	if rec.BannedUntil != nil && rec.BannedUntil.After(time.Now()) {
		return TokenPair{}, ErrBanned
	}

	role := ""
	meta := map[string]any{}
	if rec.Metadata != "" {
		_ = json.Unmarshal([]byte(rec.Metadata), &meta)
	}
	if v, ok := meta["role"].(string); ok {
		role = v
	}

	access, err := s.mint(rec.ID, rec.Email, role, s.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.mint(rec.ID, rec.Email, role, s.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *LocalService) MagicLink(email string) (string, error) {
	pair, err := s.IssueTokens(email)
	if err != nil {
		return "", err
	}
	// tokens ride in the fragment so they never hit server logs
	return fmt.Sprintf("%s/auth/callback#access_token=%s&refresh_token=%s",
		s.BaseURL, url.QueryEscape(pair.AccessToken), url.QueryEscape(pair.RefreshToken)), nil
}

func (s *LocalService) Ban(id string, until time.Time) error {
	res := s.DB.Model(&entity.IdentityAccount{}).Where("id = ?", id).Update("banned_until", until)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *LocalService) Unban(id string) error {
	res := s.DB.Model(&entity.IdentityAccount{}).Where("id = ?", id).Update("banned_until", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *LocalService) mint(id, email, role string, ttl time.Duration) (string, error) {
	claims := &utils.Claims{
		IdentityID: id,
		Email:      email,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.Secret))
}
