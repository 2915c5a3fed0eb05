package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/identity"
	"github.com/Zane16/Foodies-Web-sub000/repository"
	"github.com/Zane16/Foodies-Web-sub000/utils"
)

// AccountService finishes provisioning: invite consumption, password setup
// and profile/vendor materialization.
type AccountService struct {
	DB       *gorm.DB
	Users    *repository.UserRepository
	Apps     *repository.ApplicationRepository
	Vendors  *repository.VendorRepository
	Identity identity.Service
}

func (s *AccountService) findLiveInvite(token string) (*entity.User, error) {
	user, err := s.Users.FindByInviteToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidInvite
		}
		return nil, err
	}
	// fail closed on missing or past expiry
	if user.InviteTokenExpires == nil || user.InviteTokenExpires.Before(time.Now()) {
		return nil, ErrInvalidInvite
	}
	return user, nil
}

// AcceptInvite trades a live token for a session. The session is issued
// before the token is cleared, so a refused issuance (a banned account, say)
// leaves the invite usable after the account recovers. The guarded clear
// makes the token single-use even under concurrent presentation; a loser of
// that race gets an error and its pair is discarded.
func (s *AccountService) AcceptInvite(token string) (identity.TokenPair, error) {
	user, err := s.findLiveInvite(token)
	if err != nil {
		return identity.TokenPair{}, err
	}

	pair, err := s.Identity.IssueTokens(user.Email)
	if err != nil {
		return identity.TokenPair{}, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Users.ConsumeInviteToken(tx, token, map[string]any{
			"status": "active",
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidInvite
		}
		return nil
	})
	if err != nil {
		return identity.TokenPair{}, err
	}
	return pair, nil
}

// SetPassword validates the policy, writes credentials on the identity
// account (creating it if the invite predates one) and activates the
// profile, consuming the token.
func (s *AccountService) SetPassword(token, password, confirm string) (*entity.User, error) {
	if password != confirm {
		return nil, errors.New("passwords do not match")
	}
	if err := utils.ValidatePassword(password); err != nil {
		return nil, err
	}

	user, err := s.findLiveInvite(token)
	if err != nil {
		return nil, err
	}

	acct, err := s.Identity.SetPassword(user.Email, password)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Users.ConsumeInviteToken(tx, token, map[string]any{
			"status":      "active",
			"identity_id": acct.ID,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidInvite
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Users.FindByID(user.ID)
}

// CompleteSetup materializes the profile (and the vendor record for vendor
// role) from identity metadata for callers that signed in through an
// identity-service invite link.
func (s *AccountService) CompleteSetup(email string) (*entity.User, *entity.Vendor, error) {
	acct, err := s.Identity.GetByEmail(email)
	if err != nil {
		return nil, nil, err
	}

	metaStr := func(key string) string {
		if v, ok := acct.Metadata[key].(string); ok {
			return v
		}
		return ""
	}

	user, err := s.Users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &entity.User{
			Email:        email,
			FullName:     metaStr("full_name"),
			Role:         metaStr("role"),
			Organization: metaStr("organization"),
			Status:       "active",
			IdentityID:   acct.ID,
		}
		if user.Role == "" {
			user.Role = "customer"
		}
		if err := s.Users.Create(user); err != nil {
			return nil, nil, err
		}
	} else if err != nil {
		return nil, nil, err
	}

	if user.Role != "vendor" {
		return user, nil, nil
	}

	if v, err := s.Vendors.FindByUserID(user.ID); err == nil {
		return user, v, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	vendor := &entity.Vendor{
		UserID:          user.ID,
		BusinessName:    metaStr("business_name"),
		BusinessAddress: metaStr("business_address"),
		MenuSummary:     metaStr("menu_summary"),
		IsActive:        true,
	}
	// prefer the application's fields when metadata is thin
	if app, err := s.Apps.FindLatestApproved(email, "vendor"); err == nil {
		if vendor.BusinessName == "" {
			vendor.BusinessName = app.BusinessName
		}
		if vendor.BusinessAddress == "" {
			vendor.BusinessAddress = app.BusinessAddress
		}
		if vendor.MenuSummary == "" {
			vendor.MenuSummary = app.MenuSummary
		}
	}
	if err := s.Vendors.Create(vendor); err != nil {
		return nil, nil, err
	}
	return user, vendor, nil
}
