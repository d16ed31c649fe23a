package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkaraca/careergate/internal/app/models"
)

// AdminClient talks to the admin announcement endpoints.
type AdminClient struct {
	core *Client
}

// Announcements lists announcements in whatever order upstream returns them.
func (a *AdminClient) Announcements(ctx context.Context, adminID int64) ([]models.Announcement, error) {
	var announcements []models.Announcement
	path := fmt.Sprintf("/admin/%d/announcement", adminID)
	if err := a.core.do(ctx, http.MethodGet, path, nil, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// CreateAnnouncement posts a new announcement.
func (a *AdminClient) CreateAnnouncement(ctx context.Context, adminID int64, message string) (*models.Announcement, error) {
	var created models.Announcement
	path := fmt.Sprintf("/admin/%d/announcement", adminID)
	body := map[string]string{"message": message}
	if err := a.core.do(ctx, http.MethodPost, path, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAnnouncement patches an announcement's message.
func (a *AdminClient) UpdateAnnouncement(ctx context.Context, adminID, announcementID int64, message string) (*models.Announcement, error) {
	var updated models.Announcement
	path := fmt.Sprintf("/admin/%d/announcement/%d", adminID, announcementID)
	body := map[string]string{"message": message}
	if err := a.core.do(ctx, http.MethodPatch, path, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAnnouncement removes an announcement.
func (a *AdminClient) DeleteAnnouncement(ctx context.Context, adminID, announcementID int64) error {
	path := fmt.Sprintf("/admin/%d/announcement/%d", adminID, announcementID)
	return a.core.do(ctx, http.MethodDelete, path, nil, nil)
}
