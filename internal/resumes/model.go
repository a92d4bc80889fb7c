package resumes

import "time"

// Record is one user's persisted resume row. List-valued fields are stored as
// JSON-array-encoded text columns; the flat academic/experience columns predate
// multi-entry support and are kept for backward-compatible reads.
type Record struct {
	ID              string
	UserID          string
	FullName        string
	ContactInfo     string
	PhotoPath       string
	Bio             string
	SoftSkills      string
	TechnicalSkills string

	PreviousProjects string
	SocialLinks      string
	JobExperiences   string
	AcademicEntries  string

	AcademicInstitute   string
	AcademicDegree      string
	AcademicYear        string
	AcademicGrade       string
	CompanyName         string
	JobDuration         string
	JobResponsibilities string

	CreatedAt time.Time
	UpdatedAt time.Time
}
