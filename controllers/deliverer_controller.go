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

type DelivererController struct {
	Users     *repository.UserRepository
	Lifecycle *services.LifecycleService
	Stats     *services.DelivererService
}

func NewDelivererController(users *repository.UserRepository, lifecycle *services.LifecycleService, stats *services.DelivererService) *DelivererController {
	return &DelivererController{Users: users, Lifecycle: lifecycle, Stats: stats}
}

// PATCH /deliverers/:id {is_active}
func (dc *DelivererController) Patch(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid deliverer id")
		return
	}

	var req SetActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	caller, err := dc.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "caller profile not found")
		return
	}

	target, err := dc.Lifecycle.SetDelivererActive(caller, uint(userID), *req.IsActive)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "deliverer not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "cannot manage this deliverer")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"id": target.ID, "status": target.Status})
	}
}

// GET /partner/deliverer/stats returns the caller's own delivery numbers
func (dc *DelivererController) MyStats(c *gin.Context) {
	stats, err := dc.Stats.Stats(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
