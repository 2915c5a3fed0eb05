package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/resp"
	"github.com/Zane16/Foodies-Web-sub000/repository"
	"github.com/Zane16/Foodies-Web-sub000/services"
	"github.com/Zane16/Foodies-Web-sub000/utils"
)

type ApplicationController struct {
	Service      *services.ApplicationService
	Provisioning *services.ProvisioningService
	Users        *repository.UserRepository
}

func NewApplicationController(s *services.ApplicationService, p *services.ProvisioningService, users *repository.UserRepository) *ApplicationController {
	return &ApplicationController{Service: s, Provisioning: p, Users: users}
}

// ====== Request DTO ======
type SubmitApplicationReq struct {
	FullName        string   `json:"full_name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Role            string   `json:"role" binding:"required"`
	Organization    string   `json:"organization"`
	BusinessName    string   `json:"business_name"`
	BusinessAddress string   `json:"business_address"`
	MenuSummary     string   `json:"menu_summary"`
	VehicleType     string   `json:"vehicle_type"`
	Availability    string   `json:"availability"`
	Notes           string   `json:"notes"`
	DocumentURLs    []string `json:"document_urls"`
}

// ====== Response DTO ======
type ApplicationItem struct {
	ID           uint     `json:"id"`
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Status       string   `json:"status"`
	SubmittedAt  string   `json:"submittedAt"`
	DocumentURLs []string `json:"documentUrls"`

	BusinessName    string `json:"businessName,omitempty"`
	BusinessAddress string `json:"businessAddress,omitempty"`
	MenuSummary     string `json:"menuSummary,omitempty"`
	VehicleType     string `json:"vehicleType,omitempty"`
	Availability    string `json:"availability,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

func toApplicationItem(a entity.Application) ApplicationItem {
	item := ApplicationItem{
		ID:              a.ID,
		FullName:        a.FullName,
		Email:           a.Email,
		Role:            a.Role,
		Organization:    a.Organization,
		Status:          a.Status,
		SubmittedAt:     a.CreatedAt.Format(time.RFC3339),
		BusinessName:    a.BusinessName,
		BusinessAddress: a.BusinessAddress,
		MenuSummary:     a.MenuSummary,
		VehicleType:     a.VehicleType,
		Availability:    a.Availability,
		Notes:           a.Notes,
	}
	item.DocumentURLs = make([]string, 0, len(a.Documents))
	for _, d := range a.Documents {
		item.DocumentURLs = append(item.DocumentURLs, d.URL)
	}
	return item
}

// POST /applications (public)
func (ctl *ApplicationController) Submit(c *gin.Context) {
	var req SubmitApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	app := entity.Application{
		FullName:        req.FullName,
		Email:           req.Email,
		Role:            req.Role,
		Organization:    req.Organization,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		MenuSummary:     req.MenuSummary,
		VehicleType:     req.VehicleType,
		Availability:    req.Availability,
		Notes:           req.Notes,
	}

	id, err := ctl.Service.Submit(&app, req.DocumentURLs)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"id": id, "status": "pending"})
}

func (ctl *ApplicationController) reviewer(c *gin.Context) (*entity.User, bool) {
	user, err := ctl.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.Forbidden(c, "reviewer profile not found")
		return nil, false
	}
	return user, true
}

// GET /applications?status= (admin/superadmin)
func (ctl *ApplicationController) List(c *gin.Context) {
	reviewer, ok := ctl.reviewer(c)
	if !ok {
		return
	}

	apps, err := ctl.Service.List(c.DefaultQuery("status", "pending"), reviewer)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]ApplicationItem, 0, len(apps))
	for _, a := range apps {
		items = append(items, toApplicationItem(a))
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /applications/:id/approve
func (ctl *ApplicationController) Approve(c *gin.Context) {
	appID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid application id")
		return
	}

	reviewer, ok := ctl.reviewer(c)
	if !ok {
		return
	}

	result, err := ctl.Provisioning.Approve(uint(appID), reviewer)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "application not found")
	case errors.Is(err, services.ErrNotPending):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, result)
	}
}

type DeclineReq struct {
	Reason string `json:"reason"`
}

// POST /applications/:id/decline
func (ctl *ApplicationController) Decline(c *gin.Context) {
	appID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid application id")
		return
	}

	var req DeclineReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}

	reviewer, ok := ctl.reviewer(c)
	if !ok {
		return
	}

	err = ctl.Provisioning.Decline(uint(appID), reviewer, req.Reason)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "application not found")
	case errors.Is(err, services.ErrNotPending):
		resp.BadRequest(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"id": appID, "status": "declined", "reason": req.Reason})
	}
}
