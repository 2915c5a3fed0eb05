package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/resp"
	"github.com/Zane16/Foodies-Web-sub000/repository"
	"github.com/Zane16/Foodies-Web-sub000/services"
	"github.com/Zane16/Foodies-Web-sub000/utils"
)

type VendorController struct {
	Users     *repository.UserRepository
	Vendors   *repository.VendorRepository
	Lifecycle *services.LifecycleService
}

func NewVendorController(users *repository.UserRepository, vendors *repository.VendorRepository, lifecycle *services.LifecycleService) *VendorController {
	return &VendorController{Users: users, Vendors: vendors, Lifecycle: lifecycle}
}

// GET /vendors lists the caller's organization; superadmins see everything
// unless they narrow with ?organization=
func (vc *VendorController) List(c *gin.Context) {
	caller, err := vc.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "caller profile not found")
		return
	}

	var vendors []entity.Vendor
	if caller.Role == "superadmin" {
		if org := c.Query("organization"); org != "" {
			vendors, err = vc.Vendors.ListByOrganization(org)
		} else {
			vendors, err = vc.Vendors.ListAll()
		}
	} else {
		vendors, err = vc.Vendors.ListByOrganization(caller.Organization)
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": vendors})
}

type SetActiveReq struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// PATCH /vendors/:id {is_active}
func (vc *VendorController) Patch(c *gin.Context) {
	vendorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid vendor id")
		return
	}

	var req SetActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	caller, err := vc.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "caller profile not found")
		return
	}

	vendor, err := vc.Lifecycle.SetVendorActive(caller, uint(vendorID), *req.IsActive)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "vendor not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "cannot manage this vendor")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"id": vendor.ID, "isActive": vendor.IsActive})
	}
}
