package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkaraca/careergate/internal/app/models"
)

// FacultyClient talks to the faculty resource endpoints.
type FacultyClient struct {
	core *Client
}

// Profile fetches a faculty profile.
func (f *FacultyClient) Profile(ctx context.Context, facultyID int64) (*models.FacultyProfile, error) {
	var profile models.FacultyProfile
	path := fmt.Sprintf("/faculty/%d/profile", facultyID)
	if err := f.core.do(ctx, http.MethodGet, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile patches a faculty profile and returns the updated record.
func (f *FacultyClient) UpdateProfile(ctx context.Context, facultyID int64, patch models.FacultyProfile) (*models.FacultyProfile, error) {
	var profile models.FacultyProfile
	path := fmt.Sprintf("/faculty/%d/profile", facultyID)
	if err := f.core.do(ctx, http.MethodPatch, path, patch, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Dashboard fetches the faculty dashboard aggregate.
func (f *FacultyClient) Dashboard(ctx context.Context, facultyID int64) (*models.FacultyDashboard, error) {
	var dashboard models.FacultyDashboard
	path := fmt.Sprintf("/faculty/%d/dashboard", facultyID)
	if err := f.core.do(ctx, http.MethodGet, path, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
