package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/identity"
	"github.com/Zane16/Foodies-Web-sub000/repository"
)

// banHorizon is the effectively-indefinite ban mirrored onto the identity
// account when a profile is deactivated.
const banHorizon = 100 * 365 * 24 * time.Hour

// LifecycleService toggles profiles between declined and approved. The row
// update is authoritative; the identity ban mirror is best-effort and its
// failure is logged, not surfaced.
type LifecycleService struct {
	DB       *gorm.DB
	Users    *repository.UserRepository
	Vendors  *repository.VendorRepository
	Identity identity.Service
}

func NewLifecycleService(db *gorm.DB, users *repository.UserRepository, vendors *repository.VendorRepository, idsvc identity.Service) *LifecycleService {
	return &LifecycleService{DB: db, Users: users, Vendors: vendors, Identity: idsvc}
}

// SetActive applies {deactivate|reactivate} to the target. Admin callers
// are fenced to their own organization and can never touch another admin;
// superadmins are unrestricted. Idempotent on repeat actions.
func (s *LifecycleService) SetActive(caller *entity.User, targetID uint, action string) (*entity.User, error) {
	var status string
	switch action {
	case "deactivate":
		status = "declined"
	case "reactivate":
		status = "approved"
	default:
		return nil, ErrBadAction
	}

	target, err := s.Users.FindByID(targetID)
	if err != nil {
		return nil, err
	}

	if caller.Role == "admin" {
		if target.Organization != caller.Organization {
			return nil, ErrForbidden
		}
		if target.Role == "admin" {
			return nil, ErrForbidden
		}
	}

	if err := s.Users.SetStatus(target.ID, status); err != nil {
		return nil, err
	}
	target.Status = status

	// mirror onto the identity account; row status stays authoritative
	if target.IdentityID != "" {
		var mirrorErr error
		if action == "deactivate" {
			mirrorErr = s.Identity.Ban(target.IdentityID, time.Now().Add(banHorizon))
		} else {
			mirrorErr = s.Identity.Unban(target.IdentityID)
		}
		if mirrorErr != nil {
			log.Printf("identity %s sync failed for user %d: %v", action, target.ID, mirrorErr)
		}
	}

	return target, nil
}

func statusForActive(active bool) string {
	if active {
		return "approved"
	}
	return "declined"
}

// SetVendorActive flips a vendor's is_active flag and mirrors it onto the
// owning profile's status. Admin callers stay inside their organization.
func (s *LifecycleService) SetVendorActive(caller *entity.User, vendorID uint, active bool) (*entity.Vendor, error) {
	vendor, err := s.Vendors.FindByID(vendorID)
	if err != nil {
		return nil, err
	}
	owner, err := s.Users.FindByID(vendor.UserID)
	if err != nil {
		return nil, err
	}
	if caller.Role == "admin" && owner.Organization != caller.Organization {
		return nil, ErrForbidden
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Vendors.SetActive(tx, vendorID, active); err != nil {
			return err
		}
		return tx.Model(&entity.User{}).
			Where("id = ?", owner.ID).
			Update("status", statusForActive(active)).Error
	})
	if err != nil {
		return nil, err
	}

	vendor.IsActive = active
	return vendor, nil
}

// SetDelivererActive mirrors is_active onto a deliverer profile.
func (s *LifecycleService) SetDelivererActive(caller *entity.User, userID uint, active bool) (*entity.User, error) {
	target, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if target.Role != "deliverer" {
		return nil, ErrForbidden
	}
	if caller.Role == "admin" && target.Organization != caller.Organization {
		return nil, ErrForbidden
	}

	if err := s.Users.SetStatus(target.ID, statusForActive(active)); err != nil {
		return nil, err
	}
	target.Status = statusForActive(active)
	return target, nil
}
