package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Zane16/Foodies-Web-sub000/entity"
)

func TestPatchUserLifecycleHTTP(t *testing.T) {
	r, db := setupRouter(t)
	_, adminToken := seedUser(t, db, "admin@green.edu", "admin", "Greenfield High")
	target, _ := seedUser(t, db, "c@green.edu", "customer", "Greenfield High")
	outsider, _ := seedUser(t, db, "c@river.edu", "customer", "Riverside Prep")

	path := fmt.Sprintf("/admin/users/%d", target.ID)

	w := doJSON(t, r, http.MethodPatch, path, adminToken, gin.H{"action": "deactivate"})
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate: %d %s", w.Code, w.Body.String())
	}
	var refreshed entity.User
	db.First(&refreshed, target.ID)
	if refreshed.Status != "declined" {
		t.Errorf("status = %q, want declined", refreshed.Status)
	}

	w = doJSON(t, r, http.MethodPatch, path, adminToken, gin.H{"action": "reactivate"})
	if w.Code != http.StatusOK {
		t.Fatalf("reactivate: %d %s", w.Code, w.Body.String())
	}
	db.First(&refreshed, target.ID)
	if refreshed.Status != "approved" {
		t.Errorf("status = %q, want approved", refreshed.Status)
	}

	// cross-organization target is rejected and untouched
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/admin/users/%d", outsider.ID), adminToken, gin.H{"action": "deactivate"})
	if w.Code != http.StatusForbidden {
		t.Errorf("cross-org status = %d, want 403", w.Code)
	}
	db.First(&refreshed, outsider.ID)
	if refreshed.Status != "active" {
		t.Errorf("outsider status = %q, want active", refreshed.Status)
	}

	// bad action
	w = doJSON(t, r, http.MethodPatch, path, adminToken, gin.H{"action": "vaporize"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad action status = %d, want 400", w.Code)
	}
}

func TestSuperAdminPatchesAdminsHTTP(t *testing.T) {
	r, db := setupRouter(t)
	_, superToken := seedUser(t, db, "root@foodies.test", "superadmin", "")
	admin, adminToken := seedUser(t, db, "admin@green.edu", "admin", "Greenfield High")

	// an admin peer cannot, superadmin can
	peer, _ := seedUser(t, db, "peer@green.edu", "admin", "Greenfield High")
	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/admin/users/%d", peer.ID), adminToken, gin.H{"action": "deactivate"})
	if w.Code != http.StatusForbidden {
		t.Errorf("admin-on-admin status = %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/superadmin/users/%d", admin.ID), superToken, gin.H{"action": "deactivate"})
	if w.Code != http.StatusOK {
		t.Fatalf("superadmin deactivate: %d %s", w.Code, w.Body.String())
	}
	var refreshed entity.User
	db.First(&refreshed, admin.ID)
	if refreshed.Status != "declined" {
		t.Errorf("status = %q, want declined", refreshed.Status)
	}
}

func TestSchoolsHTTP(t *testing.T) {
	r, db := setupRouter(t)
	_, superToken := seedUser(t, db, "root@foodies.test", "superadmin", "")
	_, adminToken := seedUser(t, db, "admin@green.edu", "admin", "Greenfield High")
	seedUser(t, db, "admin@river.edu", "admin", "Riverside Prep")

	// admins are not allowed on the platform-wide report
	if w := doJSON(t, r, http.MethodGet, "/schools", adminToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("admin on /schools status = %d, want 403", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/schools", superToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("/schools: %d %s", w.Code, w.Body.String())
	}

	var out struct {
		Data struct {
			Items []struct {
				Organization string `json:"organization"`
				AdminCount   int64  `json:"adminCount"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data.Items) != 2 {
		t.Errorf("groups = %d, want 2", len(out.Data.Items))
	}
}
