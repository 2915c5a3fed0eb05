package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
)

func seedVendor(t *testing.T, db *gorm.DB, email, org, business string) *entity.Vendor {
	t.Helper()
	owner, _ := seedUser(t, db, email, "vendor", org)
	vendor := &entity.Vendor{UserID: owner.ID, BusinessName: business, IsActive: true}
	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	return vendor
}

func listedVendors(t *testing.T, body string) []entity.Vendor {
	t.Helper()
	var envelope struct {
		Data struct {
			Items []entity.Vendor `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("decode vendor list: %v", err)
	}
	return envelope.Data.Items
}

func TestListVendorsScopingHTTP(t *testing.T) {
	r, db := setupRouter(t)
	_, superToken := seedUser(t, db, "root@foodies.test", "superadmin", "")
	_, adminToken := seedUser(t, db, "admin@green.edu", "admin", "Greenfield High")
	seedVendor(t, db, "v1@green.edu", "Greenfield High", "Green Canteen")
	seedVendor(t, db, "v2@river.edu", "Riverside Prep", "River Snacks")

	// superadmin without a filter sees the whole platform
	w := doJSON(t, r, http.MethodGet, "/vendors", superToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("superadmin list: %d %s", w.Code, w.Body.String())
	}
	if items := listedVendors(t, w.Body.String()); len(items) != 2 {
		t.Errorf("superadmin sees %d vendors, want 2", len(items))
	}

	// and can narrow to a single school
	w = doJSON(t, r, http.MethodGet, "/vendors?organization=Riverside+Prep", superToken, nil)
	items := listedVendors(t, w.Body.String())
	if len(items) != 1 || items[0].BusinessName != "River Snacks" {
		t.Errorf("filtered list = %+v, want only River Snacks", items)
	}

	// admins are pinned to their own organization
	w = doJSON(t, r, http.MethodGet, "/vendors", adminToken, nil)
	items = listedVendors(t, w.Body.String())
	if len(items) != 1 || items[0].BusinessName != "Green Canteen" {
		t.Errorf("admin list = %+v, want only Green Canteen", items)
	}
}
