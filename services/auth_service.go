package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/identity"
	"github.com/Zane16/Foodies-Web-sub000/repository"
	"github.com/Zane16/Foodies-Web-sub000/utils"
)

// AuthService covers customer self-signup and session login. Approved
// staff arrive through the provisioning workflow instead.
type AuthService struct {
	Users     *repository.UserRepository
	Identity  identity.Service
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, idsvc identity.Service, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, Identity: idsvc, JWTSecret: secret, JWTTTL: ttl}
}

// Register creates a customer profile plus its identity account.
func (s *AuthService) Register(email, password, fullName, phone, deliveryAddress string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	acct, err := s.Identity.SetPassword(email, password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:           email,
		FullName:        strings.TrimSpace(fullName),
		Phone:           strings.TrimSpace(phone),
		DeliveryAddress: strings.TrimSpace(deliveryAddress),
		Role:            "customer",
		Status:          "active",
		IdentityID:      acct.ID,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials against the identity service and mints a
// session token for the profile.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Identity.VerifyPassword(email, password); err != nil {
		if errors.Is(err, identity.ErrBanned) {
			return "", nil, errors.New("account disabled")
		}
		return "", nil, errors.New("invalid credentials")
	}

	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if user.Status == "declined" {
		return "", nil, errors.New("account disabled")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.Users.FindByID(userID)
}

// UpdateProfile accepts the self-serve fields only.
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	allowed := map[string]bool{
		"full_name":           true,
		"phone":               true,
		"delivery_address":    true,
		"profile_picture_url": true,
		"header_image_url":    true,
	}
	filtered := map[string]any{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return s.Users.FindByID(userID)
	}
	if err := s.Users.Update(userID, filtered); err != nil {
		return nil, err
	}
	return s.Users.FindByID(userID)
}
