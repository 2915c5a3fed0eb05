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

type AdminController struct {
	Users     *repository.UserRepository
	Apps      *repository.ApplicationRepository
	Vendors   *repository.VendorRepository
	Lifecycle *services.LifecycleService
}

func NewAdminController(users *repository.UserRepository, apps *repository.ApplicationRepository, vendors *repository.VendorRepository, lifecycle *services.LifecycleService) *AdminController {
	return &AdminController{Users: users, Apps: apps, Vendors: vendors, Lifecycle: lifecycle}
}

func (ac *AdminController) caller(c *gin.Context) (*entity.User, bool) {
	user, err := ac.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "caller profile not found")
		return nil, false
	}
	return user, true
}

// GET /admin/dashboard returns organization-scoped headline numbers
func (ac *AdminController) Dashboard(c *gin.Context) {
	caller, ok := ac.caller(c)
	if !ok {
		return
	}
	org := caller.Organization

	orgUsers, err := ac.Users.CountByOrganization(org)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	pendingApps, err := ac.Apps.CountPendingForOrganization(org)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	activeVendors, err := ac.Vendors.CountActiveByOrganization(org)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	deliverers, err := ac.Users.CountByRoleAndOrganization("deliverer", org)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"organization":        org,
		"totalUsers":          orgUsers,
		"pendingApplications": pendingApps,
		"activeVendors":       activeVendors,
		"deliverers":          deliverers,
	})
}

// GET /admin/users lists the members of the caller's organization
func (ac *AdminController) ListUsers(c *gin.Context) {
	caller, ok := ac.caller(c)
	if !ok {
		return
	}

	users, err := ac.Users.FindByOrganization(caller.Organization)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

type UserActionReq struct {
	Action string `json:"action" binding:"required"`
}

// PATCH /admin/users/:id {action: deactivate|reactivate}
func (ac *AdminController) PatchUser(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	var req UserActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	caller, ok := ac.caller(c)
	if !ok {
		return
	}

	target, err := ac.Lifecycle.SetActive(caller, uint(targetID), req.Action)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "user not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "cannot manage this user")
	case errors.Is(err, services.ErrBadAction):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"id": target.ID, "status": target.Status})
	}
}
