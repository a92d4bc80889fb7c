package model

// ResumeDocument is the canonical, render-ready form of one user's resume.
// It is built fresh for each export and never mutated after construction;
// the renderer only reads it.
type ResumeDocument struct {
	FullName        string
	ContactInfo     string
	PhotoPath       string
	Bio             string
	SoftSkills      string
	TechnicalSkills string
	Projects        []Project
	SocialLinks     []SocialLink
	AcademicEntries []AcademicEntry
	Experiences     []Experience
}

// Project is one entry of the "Previous Work / Projects" section.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// SocialLink is one entry of the "Social Links" section.
type SocialLink struct {
	Label    string `json:"label,omitempty"`
	Platform string `json:"platform,omitempty"`
	URL      string `json:"url,omitempty"`
}

// AcademicEntry is one entry of the "Academic Background" section.
type AcademicEntry struct {
	Institute string `json:"institute,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Year      string `json:"year,omitempty"`
	Grade     string `json:"grade,omitempty"`
}

// Experience is one entry of the "Work Experience" section.
type Experience struct {
	Company          string `json:"company,omitempty"`
	Duration         string `json:"duration,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
}
