package resumes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.get)
	rg.PUT("/resume", h.put)
}

// resumeResponse is the editor-facing view of a record, with the JSON list
// columns decoded back into arrays.
type resumeResponse struct {
	ID              string `json:"id"`
	FullName        string `json:"fullName"`
	ContactInfo     string `json:"contactInfo"`
	PhotoPath       string `json:"photoPath,omitempty"`
	Bio             string `json:"bio"`
	SoftSkills      string `json:"softSkills"`
	TechnicalSkills string `json:"technicalSkills"`

	Projects        []model.Project       `json:"projects"`
	SocialLinks     []model.SocialLink    `json:"socialLinks"`
	Experiences     []model.Experience    `json:"experiences"`
	AcademicEntries []model.AcademicEntry `json:"academicEntries"`

	AcademicInstitute   string `json:"academicInstitute,omitempty"`
	AcademicDegree      string `json:"academicDegree,omitempty"`
	AcademicYear        string `json:"academicYear,omitempty"`
	AcademicGrade       string `json:"academicGrade,omitempty"`
	CompanyName         string `json:"companyName,omitempty"`
	JobDuration         string `json:"jobDuration,omitempty"`
	JobResponsibilities string `json:"jobResponsibilities,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	rec, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no resume saved yet", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) put(c *gin.Context) {
	var in UpsertInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)
	rec, err := h.Svc.Upsert(c.Request.Context(), userID, in)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save resume", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func toResponse(rec Record) resumeResponse {
	return resumeResponse{
		ID:                  rec.ID,
		FullName:            rec.FullName,
		ContactInfo:         rec.ContactInfo,
		PhotoPath:           rec.PhotoPath,
		Bio:                 rec.Bio,
		SoftSkills:          rec.SoftSkills,
		TechnicalSkills:     rec.TechnicalSkills,
		Projects:            decodeList[model.Project](rec.PreviousProjects),
		SocialLinks:         decodeList[model.SocialLink](rec.SocialLinks),
		Experiences:         decodeList[model.Experience](rec.JobExperiences),
		AcademicEntries:     decodeList[model.AcademicEntry](rec.AcademicEntries),
		AcademicInstitute:   rec.AcademicInstitute,
		AcademicDegree:      rec.AcademicDegree,
		AcademicYear:        rec.AcademicYear,
		AcademicGrade:       rec.AcademicGrade,
		CompanyName:         rec.CompanyName,
		JobDuration:         rec.JobDuration,
		JobResponsibilities: rec.JobResponsibilities,
		UpdatedAt:           rec.UpdatedAt,
	}
}

// decodeList tolerates malformed stored JSON the same way the renderer's
// normalizer does, returning an empty list instead of failing the request.
func decodeList[T any](raw string) []T {
	out := []T{}
	if strings.TrimSpace(raw) == "" {
		return out
	}
	var decoded []T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil || decoded == nil {
		return out
	}
	return decoded
}
