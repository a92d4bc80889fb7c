// Package exports turns the caller's saved resume into a downloadable PDF.
package exports

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/normalize"
	"resume-builder/resume/render"
)

type Handler struct {
	Svc   *resumes.Service
	Store object.ObjectStore
	// EditURL is where callers without a saved resume are redirected.
	EditURL string
}

func NewHandler(svc *resumes.Service, store object.ObjectStore, editURL string) *Handler {
	return &Handler{Svc: svc, Store: store, EditURL: editURL}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume/pdf", h.download)
}

// download streams the rendered PDF. Errors before the first byte redirect the
// caller to the editor; once streaming has begun failures can only be logged.
func (h *Handler) download(c *gin.Context) {
	metrics.IncExportStarted()
	start := time.Now()
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		if !errors.Is(err, resumes.ErrNotFound) {
			telemetry.Error("export.load.failed", map[string]any{
				"user_id": userID,
				"err":     err.Error(),
			})
			metrics.IncExportFailed()
		}
		c.Redirect(http.StatusFound, h.EditURL)
		return
	}

	doc := normalize.Document(rec, normalize.Options{})
	if doc.PhotoPath != "" {
		localPath, cleanup, err := h.materializePhoto(c, doc.PhotoPath)
		if err != nil {
			telemetry.Error("export.photo.unavailable", map[string]any{
				"user_id": userID,
				"key":     doc.PhotoPath,
				"err":     err.Error(),
			})
			doc.PhotoPath = ""
		} else {
			doc.PhotoPath = localPath
			defer cleanup()
		}
	}

	filename := fmt.Sprintf("resume_%s.pdf", time.Now().UTC().Format("20060102150405"))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := render.WritePDF(doc, c.Writer); err != nil {
		// Headers are already on the wire, nothing to send the client.
		telemetry.Error("export.render.failed", map[string]any{
			"user_id": userID,
			"err":     err.Error(),
		})
		metrics.IncExportFailed()
		return
	}

	metrics.IncExportCompleted()
	metrics.ObserveExportDurationMs(float64(time.Since(start).Milliseconds()))
}

// materializePhoto copies the stored photo to a temp file so the renderer can
// read it regardless of the store backend. The caller must invoke cleanup.
func (h *Handler) materializePhoto(c *gin.Context, key string) (string, func(), error) {
	rc, err := h.Store.Open(c.Request.Context(), key)
	if err != nil {
		return "", nil, err
	}
	defer rc.Close()

	tmp, err := os.CreateTemp("", "resume-photo-*")
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(tmp, rc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, err
	}
	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}
