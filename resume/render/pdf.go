// Package render walks a ResumeDocument and writes it as a paginated PDF:
// an ordered sequence of conditional sections with fallback text, an
// embedded photo, and clickable hyperlinks.
package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
)

const (
	fontFamily  = "Helvetica"
	nameSize    = 20.0
	headingSize = 14.0
	bodySize    = 11.0
	lineHeight  = 6.0

	photoX       = 158.0
	photoY       = 12.0
	photoWidthMM = 38.0
)

// Section headings in their fixed emission order.
const (
	headingAbout      = "About Me"
	headingSoft       = "Soft Skills"
	headingTechnical  = "Technical Skills"
	headingProjects   = "Previous Work / Projects"
	headingSocial     = "Social Links"
	headingAcademic   = "Academic Background"
	headingExperience = "Work Experience"
)

const noExperienceLine = "No experience provided"

// Entry-level render defaults.
const (
	degreeNA           = "Degree N/A"
	instituteNA        = "Institute N/A"
	companyNA          = "Company N/A"
	notAvailable       = "N/A"
	responsibilitiesNA = "Responsibilities not provided"
)

// WritePDF renders doc into w. The document is read-only during the render;
// rendering the same document twice produces byte-identical output. Sub-block
// failures (unreadable photo) are logged and skipped, never fatal.
func WritePDF(doc model.ResumeDocument, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Fixed metadata keeps repeated renders of one document byte-identical.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetTitle("Resume", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	writeTitle(pdf, tr, doc)
	writePhoto(pdf, doc.PhotoPath)
	writeTextSection(pdf, tr, headingAbout, doc.Bio)
	writeTextSection(pdf, tr, headingSoft, doc.SoftSkills)
	writeTextSection(pdf, tr, headingTechnical, doc.TechnicalSkills)
	writeProjects(pdf, tr, doc.Projects)
	writeSocialLinks(pdf, tr, doc.SocialLinks)
	writeAcademics(pdf, tr, doc.AcademicEntries)
	writeExperiences(pdf, tr, doc.Experiences)

	return pdf.Output(w)
}

func writeTitle(pdf *fpdf.Fpdf, tr func(string) string, doc model.ResumeDocument) {
	pdf.SetFont(fontFamily, "BU", nameSize)
	pdf.CellFormat(0, 12, tr(doc.FullName), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", bodySize)
	pdf.CellFormat(0, 8, tr(doc.ContactInfo), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// writePhoto embeds the photo at the top-right corner. A missing, unreadable,
// or undecodable file leaves the rest of the document untouched.
func writePhoto(pdf *fpdf.Fpdf, path string) {
	if strings.TrimSpace(path) == "" {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		telemetry.Error("render.photo.skipped", map[string]any{
			"path": path,
			"err":  err.Error(),
		})
		return
	}
	defer f.Close()

	// Decode the header up front so a corrupt file never poisons the
	// renderer's sticky error state.
	_, format, err := image.DecodeConfig(f)
	if err != nil {
		telemetry.Error("render.photo.skipped", map[string]any{
			"path": path,
			"err":  err.Error(),
		})
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		telemetry.Error("render.photo.skipped", map[string]any{
			"path": path,
			"err":  err.Error(),
		})
		return
	}

	opts := fpdf.ImageOptions{ImageType: strings.ToUpper(format)}
	pdf.RegisterImageOptionsReader("resume-photo", opts, f)
	if !pdf.Err() {
		pdf.ImageOptions("resume-photo", photoX, photoY, photoWidthMM, 0, false, opts, 0, "")
	}
	if pdf.Err() {
		telemetry.Error("render.photo.skipped", map[string]any{
			"path": path,
			"err":  pdf.Error().Error(),
		})
		pdf.ClearError()
	}
}

func writeHeading(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(3)
	pdf.SetFont(fontFamily, "B", headingSize)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", bodySize)
}

func writeTextSection(pdf *fpdf.Fpdf, tr func(string) string, title, body string) {
	writeHeading(pdf, tr, title)
	pdf.MultiCell(0, lineHeight, tr(body), "", "L", false)
}

func writeProjects(pdf *fpdf.Fpdf, tr func(string) string, projects []model.Project) {
	if len(projects) == 0 {
		return
	}
	writeHeading(pdf, tr, headingProjects)
	for _, project := range projects {
		pdf.SetFont(fontFamily, "B", bodySize)
		pdf.CellFormat(0, lineHeight, tr(project.Title), "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", bodySize)
		if project.Description != "" {
			pdf.MultiCell(0, lineHeight, tr(project.Description), "", "L", false)
		}
		if project.Link != "" {
			writeHyperlink(pdf, tr, project.Link, project.Link)
		}
		pdf.Ln(2)
	}
}

func writeSocialLinks(pdf *fpdf.Fpdf, tr func(string) string, links []model.SocialLink) {
	if len(links) == 0 {
		return
	}
	writeHeading(pdf, tr, headingSocial)
	for _, link := range links {
		if link.URL == "" {
			pdf.CellFormat(0, lineHeight, tr(link.Label), "", 1, "L", false, 0, "")
			continue
		}
		writeHyperlink(pdf, tr, link.Label+": "+link.URL, link.URL)
	}
}

func writeAcademics(pdf *fpdf.Fpdf, tr func(string) string, entries []model.AcademicEntry) {
	if len(entries) == 0 {
		return
	}
	writeHeading(pdf, tr, headingAcademic)
	for _, entry := range entries {
		degree := orDefault(entry.Degree, degreeNA)
		institute := orDefault(entry.Institute, instituteNA)
		pdf.SetFont(fontFamily, "B", bodySize)
		pdf.CellFormat(0, lineHeight, tr(degree+" at "+institute), "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", bodySize)
		detail := fmt.Sprintf("Year: %s | Grade: %s",
			orDefault(entry.Year, notAvailable),
			orDefault(entry.Grade, notAvailable),
		)
		pdf.CellFormat(0, lineHeight, tr(detail), "", 1, "L", false, 0, "")
		pdf.Ln(1)
	}
}

func writeExperiences(pdf *fpdf.Fpdf, tr func(string) string, entries []model.Experience) {
	writeHeading(pdf, tr, headingExperience)
	if len(entries) == 0 {
		pdf.CellFormat(0, lineHeight, tr(noExperienceLine), "", 1, "L", false, 0, "")
		return
	}
	for _, entry := range entries {
		pdf.SetFont(fontFamily, "B", bodySize)
		pdf.CellFormat(0, lineHeight, tr(orDefault(entry.Company, companyNA)), "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", bodySize)
		pdf.CellFormat(0, lineHeight, tr("Duration: "+orDefault(entry.Duration, notAvailable)), "", 1, "L", false, 0, "")
		pdf.MultiCell(0, lineHeight, tr(orDefault(entry.Responsibilities, responsibilitiesNA)), "", "L", false)
		pdf.Ln(1)
	}
}

// writeHyperlink emits a clickable line in link color, restoring the default
// text color afterwards.
func writeHyperlink(pdf *fpdf.Fpdf, tr func(string) string, text, url string) {
	pdf.SetTextColor(0, 0, 238)
	pdf.CellFormat(0, lineHeight, tr(text), "", 1, "L", false, 0, url)
	pdf.SetTextColor(0, 0, 0)
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
