package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkaraca/careergate/internal/app/models"
)

// CompanyClient talks to the company resource endpoints.
type CompanyClient struct {
	core *Client
}

// Profile fetches a company profile.
func (c *CompanyClient) Profile(ctx context.Context, companyID int64) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	path := fmt.Sprintf("/company/%d/profile", companyID)
	if err := c.core.do(ctx, http.MethodGet, path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile patches a company profile and returns the updated record.
func (c *CompanyClient) UpdateProfile(ctx context.Context, companyID int64, patch models.CompanyProfile) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	path := fmt.Sprintf("/company/%d/profile", companyID)
	if err := c.core.do(ctx, http.MethodPatch, path, patch, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Dashboard fetches the company dashboard aggregate.
func (c *CompanyClient) Dashboard(ctx context.Context, companyID int64) (*models.CompanyDashboard, error) {
	var dashboard models.CompanyDashboard
	path := fmt.Sprintf("/company/%d/dashboard", companyID)
	if err := c.core.do(ctx, http.MethodGet, path, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// CreatePosition posts a new position owned by the company.
func (c *CompanyClient) CreatePosition(ctx context.Context, companyID int64, position models.Position) (*models.Position, error) {
	var created models.Position
	path := fmt.Sprintf("/company/%d/position", companyID)
	if err := c.core.do(ctx, http.MethodPost, path, position, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePosition patches an existing position owned by the company.
func (c *CompanyClient) UpdatePosition(ctx context.Context, companyID, positionID int64, position models.Position) (*models.Position, error) {
	var updated models.Position
	path := fmt.Sprintf("/company/%d/position/%d", companyID, positionID)
	if err := c.core.do(ctx, http.MethodPatch, path, position, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
