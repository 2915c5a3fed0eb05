package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zane16/Foodies-Web-sub000/pkg/resp"
)

const maxUploadBytes = 5 << 20 // 5MB

type UploadController struct {
	UploadDir  string
	AppBaseURL string
}

func NewUploadController(uploadDir, appBaseURL string) *UploadController {
	return &UploadController{UploadDir: uploadDir, AppBaseURL: appBaseURL}
}

// POST /upload-image accepts multipart {file, type: logo|header}
func (uc *UploadController) UploadImage(c *gin.Context) {
	kind := c.PostForm("type")
	if kind != "logo" && kind != "header" {
		resp.BadRequest(c, "type must be logo or header")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}
	if file.Size > maxUploadBytes {
		resp.BadRequest(c, "file exceeds 5MB limit")
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		resp.BadRequest(c, "file must be an image")
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".png"
	}
	dir := filepath.Join(uc.UploadDir, kind)
	if err := os.MkdirAll(dir, 0755); err != nil {
		resp.ServerError(c, err)
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		resp.ServerError(c, err)
		return
	}

	url := fmt.Sprintf("%s/uploads/%s/%s", uc.AppBaseURL, kind, name)
	resp.OK(c, gin.H{"url": url, "type": kind})
}
