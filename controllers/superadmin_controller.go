package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/pkg/resp"
	"github.com/Zane16/Foodies-Web-sub000/repository"
	"github.com/Zane16/Foodies-Web-sub000/services"
	"github.com/Zane16/Foodies-Web-sub000/utils"
)

type SuperAdminController struct {
	Users     *repository.UserRepository
	Lifecycle *services.LifecycleService
	SchoolSvc *services.SchoolService
}

func NewSuperAdminController(users *repository.UserRepository, lifecycle *services.LifecycleService, schools *services.SchoolService) *SuperAdminController {
	return &SuperAdminController{Users: users, Lifecycle: lifecycle, SchoolSvc: schools}
}

// PATCH /superadmin/users/:id {action}, no organization or role fence
func (sc *SuperAdminController) PatchUser(c *gin.Context) {
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

	caller, err := sc.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "caller profile not found")
		return
	}

	target, err := sc.Lifecycle.SetActive(caller, uint(targetID), req.Action)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "user not found")
	case errors.Is(err, services.ErrBadAction):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"id": target.ID, "status": target.Status})
	}
}

// GET /schools lists the platform-wide per-organization aggregation
func (sc *SuperAdminController) Schools(c *gin.Context) {
	schools, err := sc.SchoolSvc.Aggregate()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": schools})
}
