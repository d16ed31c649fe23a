package upstream

import (
	"context"
	"net/http"
)

// PositionClient talks to the position application endpoint.
type PositionClient struct {
	core *Client
}

// Apply submits a student's application to a position.
func (p *PositionClient) Apply(ctx context.Context, positionID, studentID int64) error {
	body := map[string]int64{
		"position_id": positionID,
		"user_id":     studentID,
	}
	return p.core.do(ctx, http.MethodPost, "/careerFair/position/apply/", body, nil)
}
