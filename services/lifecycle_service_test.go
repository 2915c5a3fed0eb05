package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Zane16/Foodies-Web-sub000/entity"
)

func bannedUntil(t *testing.T, env *testEnv, identityID string) *time.Time {
	t.Helper()
	var acct entity.IdentityAccount
	if err := env.DB.First(&acct, "id = ?", identityID).Error; err != nil {
		t.Fatalf("identity account missing: %v", err)
	}
	return acct.BannedUntil
}

func TestDeactivateSetsDeclinedAndBans(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createProfile(t, "admin@school.edu", "admin", "Greenfield High", "active")
	target := env.createProfile(t, "c@school.edu", "customer", "Greenfield High", "active")

	updated, err := env.Lifecycle.SetActive(admin, target.ID, "deactivate")
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if updated.Status != "declined" {
		t.Errorf("status = %q, want declined", updated.Status)
	}

	until := bannedUntil(t, env, target.IdentityID)
	if until == nil || !until.After(time.Now().Add(50*365*24*time.Hour)) {
		t.Errorf("identity ban not mirrored: %v", until)
	}

	// idempotent: same observable state, no error
	again, err := env.Lifecycle.SetActive(admin, target.ID, "deactivate")
	if err != nil {
		t.Fatalf("repeat deactivate: %v", err)
	}
	if again.Status != "declined" {
		t.Errorf("repeat status = %q, want declined", again.Status)
	}
}

func TestReactivateClearsBan(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createProfile(t, "admin@school.edu", "admin", "Greenfield High", "active")
	target := env.createProfile(t, "c@school.edu", "customer", "Greenfield High", "active")

	if _, err := env.Lifecycle.SetActive(admin, target.ID, "deactivate"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	updated, err := env.Lifecycle.SetActive(admin, target.ID, "reactivate")
	if err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if updated.Status != "approved" {
		t.Errorf("status = %q, want approved", updated.Status)
	}
	if until := bannedUntil(t, env, target.IdentityID); until != nil {
		t.Errorf("ban survived reactivation: %v", until)
	}
}

func TestAdminCannotManageOtherOrganization(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createProfile(t, "admin@school.edu", "admin", "Greenfield High", "active")
	target := env.createProfile(t, "v@other.edu", "vendor", "Riverside Prep", "active")

	_, err := env.Lifecycle.SetActive(admin, target.ID, "deactivate")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	// no row mutation happened
	refreshed, _ := env.Users.FindByID(target.ID)
	if refreshed.Status != "active" {
		t.Errorf("status mutated to %q despite rejection", refreshed.Status)
	}
}

func TestAdminCannotManageAdmins(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createProfile(t, "admin@school.edu", "admin", "Greenfield High", "active")
	peer := env.createProfile(t, "peer@school.edu", "admin", "Greenfield High", "active")

	if _, err := env.Lifecycle.SetActive(admin, peer.ID, "deactivate"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	refreshed, _ := env.Users.FindByID(peer.ID)
	if refreshed.Status != "active" {
		t.Errorf("status mutated to %q despite rejection", refreshed.Status)
	}
}

func TestSuperAdminUnrestricted(t *testing.T) {
	env := newTestEnv(t)
	super := env.createProfile(t, "root@foodies.test", "superadmin", "", "active")
	admin := env.createProfile(t, "admin@other.edu", "admin", "Riverside Prep", "active")

	updated, err := env.Lifecycle.SetActive(super, admin.ID, "deactivate")
	if err != nil {
		t.Fatalf("superadmin deactivate admin: %v", err)
	}
	if updated.Status != "declined" {
		t.Errorf("status = %q, want declined", updated.Status)
	}
}

func TestUnknownAction(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createProfile(t, "admin@school.edu", "admin", "Greenfield High", "active")
	target := env.createProfile(t, "c@school.edu", "customer", "Greenfield High", "active")

	if _, err := env.Lifecycle.SetActive(admin, target.ID, "destroy"); !errors.Is(err, ErrBadAction) {
		t.Errorf("err = %v, want ErrBadAction", err)
	}
}

func TestSetVendorActiveMirrorsProfile(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createProfile(t, "admin@school.edu", "admin", "Greenfield High", "active")
	owner := env.createProfile(t, "v@school.edu", "vendor", "Greenfield High", "active")
	vendor := &entity.Vendor{UserID: owner.ID, BusinessName: "Stall 3", IsActive: true}
	if err := env.Vendors.Create(vendor); err != nil {
		t.Fatalf("create vendor: %v", err)
	}

	updated, err := env.Lifecycle.SetVendorActive(admin, vendor.ID, false)
	if err != nil {
		t.Fatalf("deactivate vendor: %v", err)
	}
	if updated.IsActive {
		t.Error("vendor still active")
	}
	refreshed, _ := env.Users.FindByID(owner.ID)
	if refreshed.Status != "declined" {
		t.Errorf("owner status = %q, want declined", refreshed.Status)
	}

	if _, err := env.Lifecycle.SetVendorActive(admin, vendor.ID, true); err != nil {
		t.Fatalf("reactivate vendor: %v", err)
	}
	refreshed, _ = env.Users.FindByID(owner.ID)
	if refreshed.Status != "approved" {
		t.Errorf("owner status = %q, want approved", refreshed.Status)
	}
}

func TestSetDelivererActiveChecksRoleAndOrg(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createProfile(t, "admin@school.edu", "admin", "Greenfield High", "active")
	deliverer := env.createProfile(t, "d@school.edu", "deliverer", "Greenfield High", "active")
	outsider := env.createProfile(t, "d@other.edu", "deliverer", "Riverside Prep", "active")
	customer := env.createProfile(t, "c@school.edu", "customer", "Greenfield High", "active")

	updated, err := env.Lifecycle.SetDelivererActive(admin, deliverer.ID, false)
	if err != nil {
		t.Fatalf("deactivate deliverer: %v", err)
	}
	if updated.Status != "declined" {
		t.Errorf("status = %q, want declined", updated.Status)
	}

	if _, err := env.Lifecycle.SetDelivererActive(admin, outsider.ID, false); !errors.Is(err, ErrForbidden) {
		t.Errorf("cross-org err = %v, want ErrForbidden", err)
	}
	if _, err := env.Lifecycle.SetDelivererActive(admin, customer.ID, false); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-deliverer err = %v, want ErrForbidden", err)
	}
}
