package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkaraca/careergate/internal/app/models"
)

// StudentClient talks to the student resource endpoints.
type StudentClient struct {
	core *Client
}

// Profile fetches a student profile.
func (s *StudentClient) Profile(ctx context.Context, studentID int64) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	path := fmt.Sprintf("/student/%d/profile", studentID)
	if err := s.core.do(ctx, http.MethodGet, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile patches a student profile and returns the updated record.
func (s *StudentClient) UpdateProfile(ctx context.Context, studentID int64, patch models.StudentProfile) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	path := fmt.Sprintf("/student/%d/profile", studentID)
	if err := s.core.do(ctx, http.MethodPatch, path, patch, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Dashboard fetches the student dashboard aggregate.
func (s *StudentClient) Dashboard(ctx context.Context, studentID int64) (*models.StudentDashboard, error) {
	var dashboard models.StudentDashboard
	path := fmt.Sprintf("/student/%d/dashboard", studentID)
	if err := s.core.do(ctx, http.MethodGet, path, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// AppliedPositions lists the positions the student has applied to.
func (s *StudentClient) AppliedPositions(ctx context.Context, studentID int64) ([]models.Position, error) {
	var positions []models.Position
	path := fmt.Sprintf("/student/%d/dashboard/appliedPositions", studentID)
	if err := s.core.do(ctx, http.MethodGet, path, nil, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}
