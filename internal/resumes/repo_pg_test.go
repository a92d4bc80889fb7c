package resumes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertExecutesInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			sqlmock.AnyArg(), "user-1", "Ada Lovelace", "ada@example.com",
			"First programmer.", "Persistence", "Analytical engines",
			"[]", "[]", "[]", "[]",
			nil, nil, nil, nil, nil, nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Upsert(context.Background(), Record{
		UserID:           "user-1",
		FullName:         "Ada Lovelace",
		ContactInfo:      "ada@example.com",
		Bio:              "First programmer.",
		SoftSkills:       "Persistence",
		TechnicalSkills:  "Analytical engines",
		PreviousProjects: "[]",
		SocialLinks:      "[]",
		JobExperiences:   "[]",
		AcademicEntries:  "[]",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByUserScansNullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	columns := []string{
		"id", "user_id", "full_name", "contact_info", "photo_path", "bio",
		"soft_skills", "technical_skills",
		"previous_projects", "social_links", "job_experiences", "academic_entries",
		"academic_institute", "academic_degree", "academic_year", "academic_grade",
		"company_name", "job_duration", "job_responsibilities",
		"created_at", "updated_at",
	}
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(columns).AddRow(
		"r1", "user-1", "Ada", nil, nil, nil,
		nil, nil,
		`[{"title":"Engine"}]`, nil, nil, nil,
		"MIT", nil, nil, nil,
		nil, nil, nil,
		created, nil,
	)

	mock.ExpectQuery(`SELECT[\s\S]+FROM resumes`).
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	rec, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.FullName != "Ada" {
		t.Fatalf("unexpected full name: %q", rec.FullName)
	}
	if rec.ContactInfo != "" || rec.PhotoPath != "" {
		t.Fatalf("expected empty strings for null columns")
	}
	if rec.PreviousProjects != `[{"title":"Engine"}]` {
		t.Fatalf("unexpected projects payload: %q", rec.PreviousProjects)
	}
	if rec.AcademicInstitute != "MIT" {
		t.Fatalf("unexpected institute: %q", rec.AcademicInstitute)
	}
	if rec.UpdatedAt.IsZero() {
		t.Fatalf("expected UpdatedAt fallback when column is null")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT[\s\S]+FROM resumes`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := &PGRepo{DB: db}
	_, err = repo.GetByUser(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdatePhotoUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(sqlmock.AnyArg(), "user-1", "user-1-123.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.UpdatePhoto(context.Background(), "user-1", "user-1-123.png"); err != nil {
		t.Fatalf("update photo: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
