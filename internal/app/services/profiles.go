package services

import (
	"context"
	"io"

	"github.com/mkaraca/careergate/internal/app/models"
	"github.com/mkaraca/careergate/internal/session"
	"github.com/mkaraca/careergate/internal/upstream"
)

// ProfileService is the passthrough for per-role profiles and dashboards.
// Updates to the caller's own profile are merged back into the session so the
// header keeps showing fresh display fields.
type ProfileService struct {
	students  *upstream.StudentClient
	companies *upstream.CompanyClient
	faculty   *upstream.FacultyClient
	sessions  *session.Service
}

// NewProfileService creates a ProfileService.
func NewProfileService(students *upstream.StudentClient, companies *upstream.CompanyClient, faculty *upstream.FacultyClient, sessions *session.Service) *ProfileService {
	return &ProfileService{
		students:  students,
		companies: companies,
		faculty:   faculty,
		sessions:  sessions,
	}
}

// StudentProfile fetches a student profile.
func (s *ProfileService) StudentProfile(ctx context.Context, studentID int64) (*models.StudentProfile, error) {
	return s.students.Profile(ctx, studentID)
}

// UpdateStudentProfile patches a student profile, merging display fields into
// the session when the student edits their own record.
func (s *ProfileService) UpdateStudentProfile(ctx context.Context, sess models.Session, studentID int64, patch models.StudentProfile) (*models.StudentProfile, error) {
	updated, err := s.students.UpdateProfile(ctx, studentID, patch)
	if err != nil {
		return nil, err
	}
	if sess.UserID == studentID {
		_ = s.sessions.MergeProfile(ctx, sess.SID, joinName(updated.FirstName, updated.LastName), updated.Email)
	}
	return updated, nil
}

// StudentDashboard fetches the student dashboard.
func (s *ProfileService) StudentDashboard(ctx context.Context, studentID int64) (*models.StudentDashboard, error) {
	return s.students.Dashboard(ctx, studentID)
}

// AppliedPositions lists the positions a student has applied to.
func (s *ProfileService) AppliedPositions(ctx context.Context, studentID int64) ([]models.Position, error) {
	return s.students.AppliedPositions(ctx, studentID)
}

// UploadResume forwards a resume upload, reporting progress to the callback.
func (s *ProfileService) UploadResume(ctx context.Context, studentID int64, filename string, resume io.Reader, progress upstream.ProgressFunc) error {
	return s.students.UploadResume(ctx, studentID, filename, resume, progress)
}

// CompanyProfile fetches a company profile.
func (s *ProfileService) CompanyProfile(ctx context.Context, companyID int64) (*models.CompanyProfile, error) {
	return s.companies.Profile(ctx, companyID)
}

// UpdateCompanyProfile patches a company profile.
func (s *ProfileService) UpdateCompanyProfile(ctx context.Context, sess models.Session, companyID int64, patch models.CompanyProfile) (*models.CompanyProfile, error) {
	updated, err := s.companies.UpdateProfile(ctx, companyID, patch)
	if err != nil {
		return nil, err
	}
	if sess.UserID == companyID {
		_ = s.sessions.MergeProfile(ctx, sess.SID, updated.Name, updated.Email)
	}
	return updated, nil
}

// CompanyDashboard fetches the company dashboard.
func (s *ProfileService) CompanyDashboard(ctx context.Context, companyID int64) (*models.CompanyDashboard, error) {
	return s.companies.Dashboard(ctx, companyID)
}

// CreatePosition posts a new position for the company.
func (s *ProfileService) CreatePosition(ctx context.Context, companyID int64, position models.Position) (*models.Position, error) {
	return s.companies.CreatePosition(ctx, companyID, position)
}

// UpdatePosition patches an existing company position.
func (s *ProfileService) UpdatePosition(ctx context.Context, companyID, positionID int64, position models.Position) (*models.Position, error) {
	return s.companies.UpdatePosition(ctx, companyID, positionID, position)
}

// FacultyProfile fetches a faculty profile.
func (s *ProfileService) FacultyProfile(ctx context.Context, facultyID int64) (*models.FacultyProfile, error) {
	return s.faculty.Profile(ctx, facultyID)
}

// UpdateFacultyProfile patches a faculty profile.
func (s *ProfileService) UpdateFacultyProfile(ctx context.Context, sess models.Session, facultyID int64, patch models.FacultyProfile) (*models.FacultyProfile, error) {
	updated, err := s.faculty.UpdateProfile(ctx, facultyID, patch)
	if err != nil {
		return nil, err
	}
	if sess.UserID == facultyID {
		_ = s.sessions.MergeProfile(ctx, sess.SID, joinName(updated.FirstName, updated.LastName), updated.Email)
	}
	return updated, nil
}

// FacultyDashboard fetches the faculty dashboard.
func (s *ProfileService) FacultyDashboard(ctx context.Context, facultyID int64) (*models.FacultyDashboard, error) {
	return s.faculty.Dashboard(ctx, facultyID)
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
