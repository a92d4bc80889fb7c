// Package normalize converts a persisted resume record into the canonical
// ResumeDocument consumed by the renderer. Conversion is total: malformed or
// absent values become documented defaults, never errors.
package normalize

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"resume-builder/internal/resumes"
	"resume-builder/resume/model"
)

const (
	defaultFullName    = "Name Not Provided"
	defaultContactInfo = "Contact Not Provided"
	defaultText        = "Not provided"
	defaultProject     = "Untitled Project"
	defaultLinkLabel   = "Profile"
)

// Options configure record-to-document conversion.
type Options struct {
	// PhotoDir is the upload root the record's photo path is resolved under.
	// When empty the stored path is used as-is.
	PhotoDir string
}

// Document builds a ResumeDocument from a persisted record.
func Document(rec resumes.Record, opts Options) model.ResumeDocument {
	doc := model.ResumeDocument{
		FullName:        fallback(rec.FullName, defaultFullName),
		ContactInfo:     fallback(rec.ContactInfo, defaultContactInfo),
		Bio:             fallback(rec.Bio, defaultText),
		SoftSkills:      fallback(rec.SoftSkills, defaultText),
		TechnicalSkills: fallback(rec.TechnicalSkills, defaultText),
		Projects:        List[model.Project](rec.PreviousProjects),
		SocialLinks:     List[model.SocialLink](rec.SocialLinks),
	}

	for i := range doc.Projects {
		doc.Projects[i].Title = fallback(doc.Projects[i].Title, defaultProject)
	}
	for i := range doc.SocialLinks {
		doc.SocialLinks[i].Label = linkLabel(doc.SocialLinks[i])
	}

	doc.AcademicEntries = mergeAcademics(
		List[model.AcademicEntry](rec.AcademicEntries),
		rec.AcademicInstitute, rec.AcademicDegree, rec.AcademicYear, rec.AcademicGrade,
	)
	doc.Experiences = mergeExperiences(
		List[model.Experience](rec.JobExperiences),
		rec.CompanyName, rec.JobDuration, rec.JobResponsibilities,
	)

	if p := strings.TrimSpace(rec.PhotoPath); p != "" {
		if opts.PhotoDir != "" {
			doc.PhotoPath = filepath.Join(opts.PhotoDir, p)
		} else {
			doc.PhotoPath = p
		}
	}

	return doc
}

// List decodes a JSON-array-encoded column. Decode failures, null, and
// non-array payloads all yield an empty sequence.
func List[T any](raw string) []T {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// mergeAcademics applies the legacy fallback: a non-empty canonical list wins
// verbatim; otherwise a singleton entry is synthesized when any legacy field
// is set. A partially filled canonical list never merges with legacy fields.
func mergeAcademics(entries []model.AcademicEntry, institute, degree, year, grade string) []model.AcademicEntry {
	if len(entries) > 0 {
		return entries
	}
	if anySet(institute, degree, year, grade) {
		return []model.AcademicEntry{{
			Institute: strings.TrimSpace(institute),
			Degree:    strings.TrimSpace(degree),
			Year:      strings.TrimSpace(year),
			Grade:     strings.TrimSpace(grade),
		}}
	}
	return nil
}

// mergeExperiences mirrors mergeAcademics for the legacy experience columns.
func mergeExperiences(entries []model.Experience, company, duration, responsibilities string) []model.Experience {
	if len(entries) > 0 {
		return entries
	}
	if anySet(company, duration, responsibilities) {
		return []model.Experience{{
			Company:          strings.TrimSpace(company),
			Duration:         strings.TrimSpace(duration),
			Responsibilities: strings.TrimSpace(responsibilities),
		}}
	}
	return nil
}

func linkLabel(link model.SocialLink) string {
	if label := strings.TrimSpace(link.Label); label != "" {
		return label
	}
	if platform := strings.TrimSpace(link.Platform); platform != "" {
		return platform
	}
	return defaultLinkLabel
}

func anySet(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
