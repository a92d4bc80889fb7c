package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	ledongpdf "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func renderBytes(t *testing.T, doc model.ResumeDocument) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WritePDF(doc, &buf))
	return buf.Bytes()
}

func extractText(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := ledongpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	textReader, err := reader.GetPlainText()
	require.NoError(t, err)
	var out bytes.Buffer
	_, err = io.Copy(&out, textReader)
	require.NoError(t, err)
	return out.String()
}

func renderText(t *testing.T, doc model.ResumeDocument) string {
	t.Helper()
	return extractText(t, renderBytes(t, doc))
}

func writeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestWritePDFFullDocument(t *testing.T) {
	doc := model.ResumeDocument{
		FullName:        "Jordan Lee",
		ContactInfo:     "jordan@example.com",
		Bio:             "Backend engineer.",
		SoftSkills:      "Mentorship",
		TechnicalSkills: "Go, PostgreSQL",
		Projects: []model.Project{
			{Title: "Shipment Router", Description: "Routing service.", Link: "https://example.com/router"},
		},
		SocialLinks: []model.SocialLink{
			{Label: "GitHub", URL: "https://github.com/jordanlee"},
		},
		AcademicEntries: []model.AcademicEntry{
			{Institute: "UT Austin", Degree: "BSc", Year: "2016", Grade: "3.8"},
		},
		Experiences: []model.Experience{
			{Company: "Acme", Duration: "2021 - Present", Responsibilities: "Shipped things."},
		},
	}

	text := renderText(t, doc)

	assert.Contains(t, text, "Jordan Lee")
	assert.Contains(t, text, "jordan@example.com")
	assert.Contains(t, text, "About Me")
	assert.Contains(t, text, "Soft Skills")
	assert.Contains(t, text, "Technical Skills")
	assert.Contains(t, text, "Previous Work / Projects")
	assert.Contains(t, text, "Shipment Router")
	assert.Contains(t, text, "Social Links")
	assert.Contains(t, text, "GitHub: https://github.com/jordanlee")
	assert.Contains(t, text, "Academic Background")
	assert.Contains(t, text, "BSc at UT Austin")
	assert.Contains(t, text, "Year: 2016 | Grade: 3.8")
	assert.Contains(t, text, "Work Experience")
	assert.Contains(t, text, "Acme")
	assert.Contains(t, text, "Duration: 2021 - Present")
}

func TestWritePDFProjectLinkWithoutDescription(t *testing.T) {
	doc := model.ResumeDocument{
		FullName:    "Jordan Lee",
		ContactInfo: "jordan@example.com",
		Projects: []model.Project{
			{Title: "App", Link: "http://x.test"},
		},
	}

	data := renderBytes(t, doc)
	text := extractText(t, data)

	assert.Contains(t, text, "Previous Work / Projects")
	assert.Contains(t, text, "App")
	assert.Contains(t, text, "http://x.test")
	// The bare link still becomes a clickable URI annotation.
	assert.Contains(t, string(data), "http://x.test")
}

func TestWritePDFEmptyDocumentFallbacks(t *testing.T) {
	text := renderText(t, model.ResumeDocument{
		FullName:        "Name Not Provided",
		ContactInfo:     "Contact Not Provided",
		Bio:             "Not provided",
		SoftSkills:      "Not provided",
		TechnicalSkills: "Not provided",
	})

	assert.Contains(t, text, "Name Not Provided")
	assert.Contains(t, text, "No experience provided")
	// Sections with no entries are omitted entirely.
	assert.NotContains(t, text, "Previous Work / Projects")
	assert.NotContains(t, text, "Social Links")
	assert.NotContains(t, text, "Academic Background")
}

func TestWritePDFAcademicDefaults(t *testing.T) {
	text := renderText(t, model.ResumeDocument{
		FullName:    "X",
		ContactInfo: "Y",
		AcademicEntries: []model.AcademicEntry{
			{Institute: "MIT", Degree: "BSc"},
		},
	})

	assert.Contains(t, text, "BSc at MIT")
	assert.Contains(t, text, "Year: N/A | Grade: N/A")
}

func TestWritePDFExperienceDefaults(t *testing.T) {
	text := renderText(t, model.ResumeDocument{
		FullName:    "X",
		ContactInfo: "Y",
		Experiences: []model.Experience{{Duration: "2020"}},
	})

	assert.Contains(t, text, "Company N/A")
	assert.Contains(t, text, "Duration: 2020")
	assert.Contains(t, text, "Responsibilities not provided")
}

func TestWritePDFDeterministic(t *testing.T) {
	doc := model.ResumeDocument{
		FullName:    "Jordan Lee",
		ContactInfo: "jordan@example.com",
		Bio:         "Same input, same bytes.",
	}

	first := renderBytes(t, doc)
	second := renderBytes(t, doc)
	assert.Equal(t, first, second)
}

func TestWritePDFEmbedsPhoto(t *testing.T) {
	doc := model.ResumeDocument{
		FullName:    "Jordan Lee",
		ContactInfo: "jordan@example.com",
		PhotoPath:   writeTestPNG(t),
	}

	data := renderBytes(t, doc)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	// The embedded image shows up as an XObject resource.
	assert.Contains(t, string(data), "/XObject")
}

func TestWritePDFSkipsMissingPhoto(t *testing.T) {
	doc := model.ResumeDocument{
		FullName:    "Jordan Lee",
		ContactInfo: "jordan@example.com",
		PhotoPath:   filepath.Join(t.TempDir(), "nope.png"),
	}

	text := renderText(t, doc)
	assert.Contains(t, text, "Jordan Lee")
}

func TestWritePDFSkipsCorruptPhoto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	doc := model.ResumeDocument{
		FullName:    "Jordan Lee",
		ContactInfo: "jordan@example.com",
		PhotoPath:   path,
	}

	text := renderText(t, doc)
	assert.Contains(t, text, "Jordan Lee")
	assert.Contains(t, text, "No experience provided")
}
