package resumes

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	const query = `
INSERT INTO resumes (
  id, user_id, full_name, contact_info, bio, soft_skills, technical_skills,
  previous_projects, social_links, job_experiences, academic_entries,
  academic_institute, academic_degree, academic_year, academic_grade,
  company_name, job_duration, job_responsibilities,
  created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  full_name = EXCLUDED.full_name,
  contact_info = EXCLUDED.contact_info,
  bio = EXCLUDED.bio,
  soft_skills = EXCLUDED.soft_skills,
  technical_skills = EXCLUDED.technical_skills,
  previous_projects = EXCLUDED.previous_projects,
  social_links = EXCLUDED.social_links,
  job_experiences = EXCLUDED.job_experiences,
  academic_entries = EXCLUDED.academic_entries,
  academic_institute = EXCLUDED.academic_institute,
  academic_degree = EXCLUDED.academic_degree,
  academic_year = EXCLUDED.academic_year,
  academic_grade = EXCLUDED.academic_grade,
  company_name = EXCLUDED.company_name,
  job_duration = EXCLUDED.job_duration,
  job_responsibilities = EXCLUDED.job_responsibilities,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		nullableString(rec.FullName),
		nullableString(rec.ContactInfo),
		nullableString(rec.Bio),
		nullableString(rec.SoftSkills),
		nullableString(rec.TechnicalSkills),
		nullableString(rec.PreviousProjects),
		nullableString(rec.SocialLinks),
		nullableString(rec.JobExperiences),
		nullableString(rec.AcademicEntries),
		nullableString(rec.AcademicInstitute),
		nullableString(rec.AcademicDegree),
		nullableString(rec.AcademicYear),
		nullableString(rec.AcademicGrade),
		nullableString(rec.CompanyName),
		nullableString(rec.JobDuration),
		nullableString(rec.JobResponsibilities),
	)
	return err
}

func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Record, error) {
	const query = `
SELECT id, user_id, full_name, contact_info, photo_path, bio, soft_skills, technical_skills,
       previous_projects, social_links, job_experiences, academic_entries,
       academic_institute, academic_degree, academic_year, academic_grade,
       company_name, job_duration, job_responsibilities,
       created_at, updated_at
FROM resumes
WHERE user_id = $1
LIMIT 1`
	var rec Record
	var (
		fullName, contactInfo, photoPath, bio                       sql.NullString
		softSkills, technicalSkills                                 sql.NullString
		previousProjects, socialLinks, jobExperiences, academicList sql.NullString
		institute, degree, year, grade                              sql.NullString
		companyName, jobDuration, jobResponsibilities               sql.NullString
		updatedAt                                                   sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&rec.ID,
		&rec.UserID,
		&fullName,
		&contactInfo,
		&photoPath,
		&bio,
		&softSkills,
		&technicalSkills,
		&previousProjects,
		&socialLinks,
		&jobExperiences,
		&academicList,
		&institute,
		&degree,
		&year,
		&grade,
		&companyName,
		&jobDuration,
		&jobResponsibilities,
		&rec.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.FullName = fullName.String
	rec.ContactInfo = contactInfo.String
	rec.PhotoPath = photoPath.String
	rec.Bio = bio.String
	rec.SoftSkills = softSkills.String
	rec.TechnicalSkills = technicalSkills.String
	rec.PreviousProjects = previousProjects.String
	rec.SocialLinks = socialLinks.String
	rec.JobExperiences = jobExperiences.String
	rec.AcademicEntries = academicList.String
	rec.AcademicInstitute = institute.String
	rec.AcademicDegree = degree.String
	rec.AcademicYear = year.String
	rec.AcademicGrade = grade.String
	rec.CompanyName = companyName.String
	rec.JobDuration = jobDuration.String
	rec.JobResponsibilities = jobResponsibilities.String
	if updatedAt.Valid {
		rec.UpdatedAt = updatedAt.Time
	} else {
		rec.UpdatedAt = time.Now().UTC()
	}
	return rec, nil
}

func (r *PGRepo) UpdatePhoto(ctx context.Context, userID, photoPath string) error {
	const query = `
INSERT INTO resumes (id, user_id, photo_path, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  photo_path = EXCLUDED.photo_path,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query, uuid.NewString(), userID, nullableString(photoPath))
	return err
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
