package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"resume-builder/resume/model"
)

// UpsertInput is the profile payload accepted from the editor. List fields are
// stored as JSON arrays; a nil list is stored as "[]" so an explicit save
// clears any previous entries.
type UpsertInput struct {
	FullName        string `json:"fullName"`
	ContactInfo     string `json:"contactInfo"`
	Bio             string `json:"bio"`
	SoftSkills      string `json:"softSkills"`
	TechnicalSkills string `json:"technicalSkills"`

	Projects        []model.Project       `json:"projects"`
	SocialLinks     []model.SocialLink    `json:"socialLinks"`
	Experiences     []model.Experience    `json:"experiences"`
	AcademicEntries []model.AcademicEntry `json:"academicEntries"`

	AcademicInstitute   string `json:"academicInstitute"`
	AcademicDegree      string `json:"academicDegree"`
	AcademicYear        string `json:"academicYear"`
	AcademicGrade       string `json:"academicGrade"`
	CompanyName         string `json:"companyName"`
	JobDuration         string `json:"jobDuration"`
	JobResponsibilities string `json:"jobResponsibilities"`
}

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Upsert(ctx context.Context, userID string, in UpsertInput) (Record, error) {
	if s == nil || s.Repo == nil {
		return Record{}, errors.New("resumes service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Record{}, errors.New("user id is required")
	}
	rec := Record{
		UserID:              userID,
		FullName:            strings.TrimSpace(in.FullName),
		ContactInfo:         strings.TrimSpace(in.ContactInfo),
		Bio:                 in.Bio,
		SoftSkills:          in.SoftSkills,
		TechnicalSkills:     in.TechnicalSkills,
		PreviousProjects:    encodeList(in.Projects),
		SocialLinks:         encodeList(in.SocialLinks),
		JobExperiences:      encodeList(in.Experiences),
		AcademicEntries:     encodeList(in.AcademicEntries),
		AcademicInstitute:   strings.TrimSpace(in.AcademicInstitute),
		AcademicDegree:      strings.TrimSpace(in.AcademicDegree),
		AcademicYear:        strings.TrimSpace(in.AcademicYear),
		AcademicGrade:       strings.TrimSpace(in.AcademicGrade),
		CompanyName:         strings.TrimSpace(in.CompanyName),
		JobDuration:         strings.TrimSpace(in.JobDuration),
		JobResponsibilities: in.JobResponsibilities,
	}
	if err := s.Repo.Upsert(ctx, rec); err != nil {
		return Record{}, err
	}
	return s.Repo.GetByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID string) (Record, error) {
	if s == nil || s.Repo == nil {
		return Record{}, errors.New("resumes service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Record{}, errors.New("user id is required")
	}
	return s.Repo.GetByUser(ctx, userID)
}

// SetPhoto records the stored photo key for the user, creating a bare record
// when the profile has not been saved yet.
func (s *Service) SetPhoto(ctx context.Context, userID, photoPath string) error {
	if s == nil || s.Repo == nil {
		return errors.New("resumes service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	return s.Repo.UpdatePhoto(ctx, userID, photoPath)
}

func encodeList[T any](list []T) string {
	if len(list) == 0 {
		return "[]"
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}
