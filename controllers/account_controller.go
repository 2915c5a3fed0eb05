package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Zane16/Foodies-Web-sub000/pkg/resp"
	"github.com/Zane16/Foodies-Web-sub000/services"
	"github.com/Zane16/Foodies-Web-sub000/utils"
)

// AccountController finishes account provisioning for invited users.
type AccountController struct {
	Service *services.AccountService
}

func NewAccountController(s *services.AccountService) *AccountController {
	return &AccountController{Service: s}
}

type AcceptInviteReq struct {
	Token string `json:"token" binding:"required"`
}

// POST /auth/accept-invite
func (ctl *AccountController) AcceptInvite(c *gin.Context) {
	var req AcceptInviteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pair, err := ctl.Service.AcceptInvite(req.Token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInvite) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pair)
}

type SetPasswordReq struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// POST /auth/set-password
func (ctl *AccountController) SetPassword(c *gin.Context) {
	var req SetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Password != req.ConfirmPassword {
		resp.BadRequest(c, "passwords do not match")
		return
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Service.SetPassword(req.Token, req.Password, req.ConfirmPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInvite) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"id": user.ID, "email": user.Email, "role": user.Role, "status": user.Status,
	})
}

// POST /auth/complete-setup (bearer from an identity invite link)
func (ctl *AccountController) CompleteSetup(c *gin.Context) {
	email := utils.CurrentEmail(c)
	if email == "" {
		resp.Unauthorized(c, "token carries no email")
		return
	}

	user, vendor, err := ctl.Service.CompleteSetup(email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := gin.H{"user": user}
	if vendor != nil {
		out["vendor"] = vendor
	}
	resp.OK(c, out)
}
