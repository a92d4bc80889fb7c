package normalize

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/resumes"
	"resume-builder/resume/model"
)

func TestListDecodesValidArray(t *testing.T) {
	got := List[model.Project](`[{"title":"One"},{"title":"Two","link":"https://x"}]`)
	require.Len(t, got, 2)
	assert.Equal(t, "One", got[0].Title)
	assert.Equal(t, "https://x", got[1].Link)
}

func TestListToleratesBadPayloads(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"whitespace": "   ",
		"malformed":  `[{"title":`,
		"non-array":  `{"title":"One"}`,
		"null":       "null",
		"number":     "42",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, List[model.Project](raw))
		})
	}
}

func TestDocumentAppliesDefaults(t *testing.T) {
	doc := Document(resumes.Record{}, Options{})

	assert.Equal(t, "Name Not Provided", doc.FullName)
	assert.Equal(t, "Contact Not Provided", doc.ContactInfo)
	assert.Equal(t, "Not provided", doc.Bio)
	assert.Equal(t, "Not provided", doc.SoftSkills)
	assert.Equal(t, "Not provided", doc.TechnicalSkills)
	assert.Empty(t, doc.Projects)
	assert.Empty(t, doc.SocialLinks)
	assert.Empty(t, doc.AcademicEntries)
	assert.Empty(t, doc.Experiences)
	assert.Empty(t, doc.PhotoPath)
}

func TestDocumentKeepsProvidedValues(t *testing.T) {
	rec := resumes.Record{
		FullName:        "Ada Lovelace",
		ContactInfo:     "ada@example.com",
		Bio:             "First programmer.",
		SoftSkills:      "Persistence",
		TechnicalSkills: "Analytical engines",
	}
	doc := Document(rec, Options{})

	assert.Equal(t, "Ada Lovelace", doc.FullName)
	assert.Equal(t, "ada@example.com", doc.ContactInfo)
	assert.Equal(t, "First programmer.", doc.Bio)
}

func TestDocumentProjectTitleFallback(t *testing.T) {
	rec := resumes.Record{
		PreviousProjects: `[{"description":"no title"},{"title":"  "},{"title":"Named"}]`,
	}
	doc := Document(rec, Options{})

	require.Len(t, doc.Projects, 3)
	assert.Equal(t, "Untitled Project", doc.Projects[0].Title)
	assert.Equal(t, "Untitled Project", doc.Projects[1].Title)
	assert.Equal(t, "Named", doc.Projects[2].Title)
}

func TestDocumentSocialLinkLabelFallback(t *testing.T) {
	rec := resumes.Record{
		SocialLinks: `[{"url":"https://a"},{"platform":"GitHub","url":"https://b"},{"label":"Mine","url":"https://c"}]`,
	}
	doc := Document(rec, Options{})

	require.Len(t, doc.SocialLinks, 3)
	assert.Equal(t, "Profile", doc.SocialLinks[0].Label)
	assert.Equal(t, "GitHub", doc.SocialLinks[1].Label)
	assert.Equal(t, "Mine", doc.SocialLinks[2].Label)
}

func TestDocumentSynthesizesLegacyAcademicEntry(t *testing.T) {
	rec := resumes.Record{
		AcademicInstitute: "  MIT ",
		AcademicDegree:    "BSc",
	}
	doc := Document(rec, Options{})

	require.Len(t, doc.AcademicEntries, 1)
	assert.Equal(t, model.AcademicEntry{Institute: "MIT", Degree: "BSc"}, doc.AcademicEntries[0])
}

func TestDocumentCanonicalAcademicsWinOverLegacy(t *testing.T) {
	rec := resumes.Record{
		AcademicEntries:   `[{"institute":"Stanford","degree":"MSc"}]`,
		AcademicInstitute: "MIT",
		AcademicDegree:    "BSc",
		AcademicYear:      "2001",
	}
	doc := Document(rec, Options{})

	// A non-empty canonical list is used verbatim, never merged.
	require.Len(t, doc.AcademicEntries, 1)
	assert.Equal(t, "Stanford", doc.AcademicEntries[0].Institute)
	assert.Empty(t, doc.AcademicEntries[0].Year)
}

func TestDocumentSynthesizesLegacyExperience(t *testing.T) {
	rec := resumes.Record{
		CompanyName: "Acme",
		JobDuration: "2019 - 2021",
	}
	doc := Document(rec, Options{})

	require.Len(t, doc.Experiences, 1)
	assert.Equal(t, "Acme", doc.Experiences[0].Company)
	assert.Equal(t, "2019 - 2021", doc.Experiences[0].Duration)
	assert.Empty(t, doc.Experiences[0].Responsibilities)
}

func TestDocumentNoLegacyFieldsNoSynthesis(t *testing.T) {
	rec := resumes.Record{JobExperiences: `[]`, AcademicEntries: `  `}
	doc := Document(rec, Options{})

	assert.Empty(t, doc.Experiences)
	assert.Empty(t, doc.AcademicEntries)
}

func TestDocumentMalformedListFallsBackToLegacy(t *testing.T) {
	rec := resumes.Record{
		JobExperiences: `[{"company":`,
		CompanyName:    "Fallback Inc",
	}
	doc := Document(rec, Options{})

	require.Len(t, doc.Experiences, 1)
	assert.Equal(t, "Fallback Inc", doc.Experiences[0].Company)
}

func TestDocumentPhotoPathResolution(t *testing.T) {
	rec := resumes.Record{PhotoPath: "u1-123.png"}

	assert.Equal(t, "u1-123.png", Document(rec, Options{}).PhotoPath)
	assert.Equal(t,
		filepath.Join("uploads", "u1-123.png"),
		Document(rec, Options{PhotoDir: "uploads"}).PhotoPath,
	)
}
