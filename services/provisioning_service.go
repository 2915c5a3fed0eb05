package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/identity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/mailer"
	"github.com/Zane16/Foodies-Web-sub000/repository"
	"github.com/Zane16/Foodies-Web-sub000/utils"
)

// ProvisioningService owns the application state machine:
// pending -> approved | declined, one-way and terminal.
//
// Approval is a single transition parameterized by role. Every approved
// applicant gets an identity account, a profile carrying a single-use
// invite token, and an emailed invite with a fallback magic link.
type ProvisioningService struct {
	DB       *gorm.DB
	Apps     *repository.ApplicationRepository
	Users    *repository.UserRepository
	Orgs     *repository.OrganizationRepository
	Identity identity.Service
	Mail     mailer.Mailer

	InviteTTL  time.Duration
	AppBaseURL string
}

type ApprovalResult struct {
	User struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	MagicLink string `json:"magicLink,omitempty"`
	EmailNote string `json:"emailNote"`
}

func emailDomain(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return strings.ToLower(email[i+1:])
	}
	return ""
}

// resolveOrganization picks the school for a new member. Admin applicants
// are matched by email domain (creating the organization on first sight);
// vendors and deliverers join the reviewing admin's organization.
func (s *ProvisioningService) resolveOrganization(db *gorm.DB, app *entity.Application, reviewer *entity.User) (string, error) {
	if app.Role == "admin" {
		name := app.Organization
		if name == "" {
			name = emailDomain(app.Email)
		}
		org, err := s.Orgs.ResolveOrCreate(db, name, emailDomain(app.Email))
		if err != nil {
			return "", err
		}
		return org.Name, nil
	}

	if reviewer.Organization != "" {
		return reviewer.Organization, nil
	}
	return app.Organization, nil
}

func inviteMetadata(app *entity.Application, org string) map[string]any {
	meta := map[string]any{
		"full_name":    app.FullName,
		"role":         app.Role,
		"organization": org,
	}
	switch app.Role {
	case "vendor":
		meta["business_name"] = app.BusinessName
		meta["business_address"] = app.BusinessAddress
		meta["menu_summary"] = app.MenuSummary
	case "deliverer":
		meta["vehicle_type"] = app.VehicleType
		meta["availability"] = app.Availability
	}
	return meta
}

// Approve moves a pending application to approved. The profile creation and
// the application stamp share one transaction. The organization and identity
// writes run first on the main handle: both are idempotent, so a rollback
// leaves the application pending and the whole call safe to repeat, and no
// second connection writes while the transaction holds the database lock.
func (s *ProvisioningService) Approve(appID uint, reviewer *entity.User) (*ApprovalResult, error) {
	app, err := s.Apps.FindByID(appID)
	if err != nil {
		return nil, err
	}
	if app.Status != "pending" {
		return nil, ErrNotPending
	}

	token, err := utils.NewInviteToken()
	if err != nil {
		return nil, err
	}
	expires := time.Now().Add(s.InviteTTL)

	org, err := s.resolveOrganization(s.DB, app, reviewer)
	if err != nil {
		return nil, err
	}
	acct, err := s.Identity.CreateUser(app.Email, inviteMetadata(app, org))
	if err != nil {
		return nil, err
	}

	var profile *entity.User
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing entity.User
		switch err := tx.Where("email = ?", app.Email).First(&existing).Error; {
		case err == nil:
			updates := map[string]any{
				"full_name":            app.FullName,
				"role":                 app.Role,
				"organization":         org,
				"status":               "approved",
				"invite_token":         token,
				"invite_token_expires": expires,
				"identity_id":          acct.ID,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			profile = &existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile = &entity.User{
				Email:              app.Email,
				FullName:           app.FullName,
				Role:               app.Role,
				Organization:       org,
				Status:             "approved",
				InviteToken:        &token,
				InviteTokenExpires: &expires,
				IdentityID:         acct.ID,
			}
			if err := tx.Create(profile).Error; err != nil {
				return err
			}
		default:
			return err
		}

		affected, err := s.Apps.MarkDecided(tx, app.ID, map[string]any{
			"status":      "approved",
			"reviewed_by": reviewer.ID,
			"user_id":     profile.ID,
		}, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotPending
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// delivery is best-effort; the magic link below is the operator fallback
	inviteLink := fmt.Sprintf("%s/setup-account?token=%s", s.AppBaseURL, token)
	_ = s.Mail.SendInvite(app.Email, inviteLink)

	res := &ApprovalResult{}
	res.User.ID = profile.ID
	res.User.Email = profile.Email
	res.User.Role = profile.Role
	res.EmailNote = "invite email sent; share the magic link if it does not arrive"

	if link, err := s.Identity.MagicLink(app.Email); err == nil {
		res.MagicLink = link
	} else {
		res.EmailNote = "invite email sent; magic link generation failed, resend from the dashboard"
	}
	return res, nil
}

// Decline is terminal and has no identity side effects.
func (s *ProvisioningService) Decline(appID uint, reviewer *entity.User, reason string) error {
	app, err := s.Apps.FindByID(appID)
	if err != nil {
		return err
	}
	if app.Status != "pending" {
		return ErrNotPending
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Apps.MarkDecided(tx, app.ID, map[string]any{
			"status":      "declined",
			"reviewed_by": reviewer.ID,
			"notes":       reason,
		}, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotPending
		}
		return nil
	})
}
