package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkaraca/careergate/internal/app/models"
)

// CareerFairClient talks to the career-fair endpoints.
type CareerFairClient struct {
	core *Client
}

// ListPositions lists every open position across fairs.
func (c *CareerFairClient) ListPositions(ctx context.Context) ([]models.Position, error) {
	var positions []models.Position
	if err := c.core.do(ctx, http.MethodGet, "/careerFair/position", nil, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// Register registers a user for a fair.
func (c *CareerFairClient) Register(ctx context.Context, fairID, userID int64) error {
	path := fmt.Sprintf("/careerFair/%d/register/", fairID)
	body := map[string]int64{"user_id": userID}
	return c.core.do(ctx, http.MethodPost, path, body, nil)
}

// Attend marks a registered user as attending a fair.
func (c *CareerFairClient) Attend(ctx context.Context, fairID, userID int64) error {
	path := fmt.Sprintf("/careerFair/%d/attend/", fairID)
	body := map[string]int64{"user_id": userID}
	return c.core.do(ctx, http.MethodPost, path, body, nil)
}

// CancelRegistration cancels a fair registration. Callers keep the fair in
// their registered list until this returns nil.
func (c *CareerFairClient) CancelRegistration(ctx context.Context, fairID, userID int64) error {
	path := fmt.Sprintf("/careerFair/%d/cancelRegister/", fairID)
	body := map[string]int64{"user_id": userID}
	return c.core.do(ctx, http.MethodDelete, path, body, nil)
}
