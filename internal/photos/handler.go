// Package photos accepts profile photo uploads and records the stored key on
// the user's resume.
package photos

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
)

// maxPhotoBytes caps uploads at 2 MiB.
const maxPhotoBytes = 2 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// allowedContentTypes are the sniffed types an upload body may carry. The
// filename extension alone is not trusted.
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

type Handler struct {
	Store object.ObjectStore
	Svc   *resumes.Service
}

func NewHandler(store object.ObjectStore, svc *resumes.Service) *Handler {
	return &Handler{Store: store, Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/photo", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "photo file is required", nil)
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		respond.Error(c, http.StatusBadRequest, "file_too_large", "photo must be 2MB or smaller", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		respond.Error(c, http.StatusBadRequest, "unsupported_type", "photo must be a .jpg, .jpeg or .png file", nil)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "unable to read upload", nil)
		return
	}
	defer src.Close()

	var sniff [512]byte
	n, readErr := io.ReadFull(src, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "unable to read upload", nil)
		return
	}

	contentType := http.DetectContentType(sniff[:n])
	if !allowedContentTypes[contentType] {
		respond.Error(c, http.StatusBadRequest, "unsupported_type", "photo content must be a JPEG or PNG image", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	key, err := photoKey(userID, ext)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid upload identity", nil)
		return
	}

	body := io.MultiReader(bytes.NewReader(sniff[:n]), src)
	if _, err := h.Store.SaveWithKey(c.Request.Context(), key, contentType, body); err != nil {
		telemetry.Error("photo.save.failed", map[string]any{
			"user_id": userID,
			"key":     key,
			"err":     err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store photo", nil)
		return
	}

	if err := h.Svc.SetPhoto(c.Request.Context(), userID, key); err != nil {
		telemetry.Error("photo.record.failed", map[string]any{
			"user_id": userID,
			"key":     key,
			"err":     err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save photo reference", nil)
		return
	}

	metrics.IncPhotoUpload()
	respond.JSON(c, http.StatusCreated, gin.H{"photoPath": key})
}

// photoKey names uploads by owner and upload time so a re-upload never
// collides with the previous file. The owner component comes from a
// caller-supplied identity header, so it is sanitized before it touches
// a storage path.
func photoKey(userID, ext string) (string, error) {
	owner := strings.TrimSpace(userID)
	if owner == "" {
		owner = "guest"
	}
	owner = strings.NewReplacer("/", "-", "\\", "-", ":", "-").Replace(owner)
	owner, err := util.SanitizeFileName(owner)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d%s", owner, time.Now().UnixMilli(), ext), nil
}
