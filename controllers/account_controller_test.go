package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
)

// provisionVendor runs submit+approve over HTTP and returns the invite
// token written to the new profile.
func provisionVendor(t *testing.T, r *gin.Engine, db *gorm.DB, adminToken, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/applications", "", gin.H{
		"full_name": "Vera Vendor", "email": email, "role": "vendor",
		"business_name": "Vera's Kitchen",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	var app entity.Application
	if err := db.Where("email = ?", email).First(&app).Error; err != nil {
		t.Fatalf("application missing: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/applications/%d/approve", app.ID), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("approve: %d %s", w.Code, w.Body.String())
	}

	var profile entity.User
	if err := db.Where("email = ?", email).First(&profile).Error; err != nil {
		t.Fatalf("profile missing: %v", err)
	}
	if profile.InviteToken == nil {
		t.Fatal("no invite token on approved profile")
	}
	return *profile.InviteToken
}

func TestSetPasswordFlowHTTP(t *testing.T) {
	r, db := setupRouter(t)
	_, adminToken := seedUser(t, db, "admin@green.edu", "admin", "Greenfield High")
	token := provisionVendor(t, r, db, adminToken, "v@x.com")

	// weak password rejected up front
	w := doJSON(t, r, http.MethodPost, "/auth/set-password", "", gin.H{
		"token": token, "password": "abcdefgh", "confirmPassword": "abcdefgh",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("weak password status = %d, want 400", w.Code)
	}

	// mismatch rejected
	w = doJSON(t, r, http.MethodPost, "/auth/set-password", "", gin.H{
		"token": token, "password": "Sup3rSecret", "confirmPassword": "Sup3rOther",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("mismatch status = %d, want 400", w.Code)
	}

	// success activates the profile
	w = doJSON(t, r, http.MethodPost, "/auth/set-password", "", gin.H{
		"token": token, "password": "Sup3rSecret", "confirmPassword": "Sup3rSecret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("set password: %d %s", w.Code, w.Body.String())
	}

	var profile entity.User
	db.Where("email = ?", "v@x.com").First(&profile)
	if profile.Status != "active" || profile.InviteToken != nil {
		t.Errorf("profile after setup = status %q, token %v", profile.Status, profile.InviteToken)
	}

	// the new credentials log in
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "v@x.com", "password": "Sup3rSecret",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login after setup: %d %s", w.Code, w.Body.String())
	}

	// token is spent
	w = doJSON(t, r, http.MethodPost, "/auth/set-password", "", gin.H{
		"token": token, "password": "An0therPass", "confirmPassword": "An0therPass",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("reused token status = %d, want 400", w.Code)
	}
}

func TestAcceptInviteHTTP(t *testing.T) {
	r, db := setupRouter(t)
	_, adminToken := seedUser(t, db, "admin@green.edu", "admin", "Greenfield High")
	token := provisionVendor(t, r, db, adminToken, "v@x.com")

	w := doJSON(t, r, http.MethodPost, "/auth/accept-invite", "", gin.H{"token": token})
	if w.Code != http.StatusOK {
		t.Fatalf("accept invite: %d %s", w.Code, w.Body.String())
	}

	var out struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Data.AccessToken == "" || out.Data.RefreshToken == "" {
		t.Errorf("token pair incomplete: %+v", out.Data)
	}

	// the issued access token authenticates complete-setup
	w = doJSON(t, r, http.MethodPost, "/auth/complete-setup", out.Data.AccessToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete setup: %d %s", w.Code, w.Body.String())
	}

	var vendor entity.Vendor
	if err := db.Where("business_name = ?", "Vera's Kitchen").First(&vendor).Error; err != nil {
		t.Errorf("vendor not materialized on setup completion: %v", err)
	}

	// single-use
	w = doJSON(t, r, http.MethodPost, "/auth/accept-invite", "", gin.H{"token": token})
	if w.Code != http.StatusBadRequest {
		t.Errorf("reused invite status = %d, want 400", w.Code)
	}
}

func TestUnknownInviteHTTP(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/accept-invite", "", gin.H{"token": "nope"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown token status = %d, want 400", w.Code)
	}
}
