package main

// Render a sample resume PDF without the HTTP stack:
//   go run ./cmd/renderdemo -out ./out/resume_demo.pdf

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func main() {
	outPath := flag.String("out", "./out/resume_demo.pdf", "output path for the generated PDF")
	flag.Parse()

	doc := sampleDocument()

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create failed: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := render.WritePDF(doc, f); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func sampleDocument() model.ResumeDocument {
	return model.ResumeDocument{
		FullName:        "Jordan Lee",
		ContactInfo:     "jordan.lee@example.com | +1-555-0102 | Austin, TX",
		Bio:             "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		SoftSkills:      "Mentorship, incident command, written communication",
		TechnicalSkills: "Go, PostgreSQL, Redis, AWS, Docker, Kubernetes",
		Projects: []model.Project{
			{
				Title:       "Shipment Router",
				Description: "Routing service that reduced shipment latency by 18%.",
				Link:        "https://github.com/jordanlee/shipment-router",
			},
		},
		SocialLinks: []model.SocialLink{
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/jordanlee"},
			{Label: "GitHub", URL: "https://github.com/jordanlee"},
		},
		AcademicEntries: []model.AcademicEntry{
			{Institute: "University of Texas at Austin", Degree: "BSc Computer Science", Year: "2016", Grade: "3.8 GPA"},
		},
		Experiences: []model.Experience{
			{
				Company:          "Acme Logistics",
				Duration:         "2021 - Present",
				Responsibilities: "Designed a routing service and led observability adoption across the platform team.",
			},
			{
				Company:          "Blue Harbor Systems",
				Duration:         "2018 - 2021",
				Responsibilities: "Built event-driven ingestion pipelines for compliance data feeds.",
			},
		},
	}
}
